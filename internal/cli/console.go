package cli

import (
	"context"
	"io"

	"github.com/arthur-debert/frece/internal/version"
	"github.com/arthur-debert/frece/pkg/console"
	"github.com/spf13/cobra"
)

// consoleHandler runs console commands through the same engine calls and
// renderer as the cobra commands.
type consoleHandler struct {
	a   *app
	out io.Writer
}

func (h consoleHandler) Scan(ctx context.Context, cmd console.ScanCmd) error {
	result, err := h.a.scanByExtension(ctx, cmd.Path, cmd.Extension)
	if err != nil {
		return err
	}
	return h.a.renderer.RenderResult(result)
}

func (h consoleHandler) Find(ctx context.Context, cmd console.FindCmd) error {
	result, err := h.a.findByName(ctx, cmd.Path, cmd.Name)
	if err != nil {
		return err
	}
	return h.a.renderer.RenderResult(result)
}

func (h consoleHandler) List(ctx context.Context, cmd console.ListCmd) error {
	summary, err := h.a.catalogDir(ctx, cmd.Path)
	if err != nil {
		return err
	}
	return h.a.renderer.RenderResult(summary)
}

// Recover renders the outcome; failed files are part of it, not an error.
func (h consoleHandler) Recover(ctx context.Context, cmd console.RecoverCmd) error {
	outcome, err := h.a.recoverFiles(ctx, recoverRequest{
		Source:      cmd.Source,
		Destination: cmd.Destination,
		Extension:   cmd.Extension,
		Options:     h.a.recoverOptions(),
	})
	if err != nil {
		return err
	}
	return h.a.renderer.RenderResult(outcome)
}

func (h consoleHandler) Man(cmd console.ManCmd) error {
	h.a.manuals.WriteManual(h.out, cmd.Topic)
	return nil
}

func (a *app) runConsole(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	c := console.New(consoleHandler{a: a, out: out}, version.String(),
		console.WithIO(cmd.InOrStdin(), out))
	return c.Run(cmd.Context())
}
