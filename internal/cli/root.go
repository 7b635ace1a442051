// Package cli implements the frece command surface on top of the scan and
// recovery engine.
package cli

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/arthur-debert/frece/internal/version"
	"github.com/arthur-debert/frece/pkg/cobrax/topics"
	"github.com/arthur-debert/frece/pkg/config"
	"github.com/arthur-debert/frece/pkg/errors"
	"github.com/arthur-debert/frece/pkg/logging"
	"github.com/arthur-debert/frece/pkg/paths"
	"github.com/arthur-debert/frece/pkg/recovery"
	"github.com/arthur-debert/frece/pkg/scanner"
	"github.com/arthur-debert/frece/pkg/tools"
	"github.com/arthur-debert/frece/pkg/ui"
	"github.com/arthur-debert/frece/pkg/ui/text"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

//go:embed manuals/*.md
var manualFiles embed.FS

// app holds the state shared by every command of one invocation.
type app struct {
	verbosity  int
	format     string
	configPath string

	cfg         *config.Config
	resolver    *paths.Resolver
	scanner     *scanner.Scanner
	copier      *recovery.Copier
	runner      *tools.Runner
	manuals     *topics.TopicManager
	renderer    ui.Renderer
	errRenderer ui.Renderer
	logger      zerolog.Logger
}

// setup runs before every command: logging, configuration, then the engine
// and renderers built from them.
func (a *app) setup(cmd *cobra.Command) error {
	logging.SetupLoggerWithOutput(a.verbosity, cmd.ErrOrStderr())
	a.logger = logging.GetLogger("cli")
	a.logger.Debug().Str("command", cmd.Name()).Msg("Command started")

	cfg, err := config.Load(config.LoadOptions{Path: a.configPath})
	if err != nil {
		return err
	}
	a.cfg = cfg

	formatName := cfg.Output.Format
	if cmd.Flags().Changed("format") {
		formatName = a.format
	}
	format, err := ui.ParseFormat(formatName)
	if err != nil {
		return err
	}
	if a.renderer, err = ui.NewRenderer(format, cmd.OutOrStdout()); err != nil {
		return errors.Wrap(err, errors.ErrInternal, MsgErrRenderer)
	}
	if a.errRenderer, err = ui.NewRenderer(format, cmd.ErrOrStderr()); err != nil {
		return errors.Wrap(err, errors.ErrInternal, MsgErrRenderer)
	}

	a.resolver, err = paths.New(paths.Options{DefaultDirName: cfg.Recovery.DefaultDirName})
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, MsgErrPaths)
	}
	a.scanner = scanner.New(nil)
	a.copier = recovery.New(nil)
	a.runner = tools.NewRunner(cfg.Tools.Known,
		tools.WithStreams(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr()))
	return nil
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{})
}

func newRootCmd(a *app) *cobra.Command {
	initTemplateFormatting()

	rootCmd := &cobra.Command{
		Use:     "frece",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return errors.Newf(errors.ErrInvalidInput, "unknown command %q for %q", args[0], cmd.CommandPath())
			}
			return nil
		},
		// Without a subcommand frece starts the interactive console.
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConsole(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}
	rootCmd.SetVersionTemplate("{{with .Version}}FRECE v{{.}}{{end}}\n")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError(err)
	})

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.format, "format", "auto", MsgFlagFormat)
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", MsgFlagConfig)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newScanCmd(a))
	rootCmd.AddCommand(newFindCmd(a))
	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newRecoverCmd(a))
	rootCmd.AddCommand(newAliasesCmd(a))
	rootCmd.AddCommand(newToolCmd(a))
	rootCmd.AddCommand(newManCmd(a))
	rootCmd.AddCommand(newConsoleCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	manuals, err := fs.Sub(manualFiles, "manuals")
	if err == nil {
		a.manuals, err = topics.InitializeWithOptions(rootCmd, manuals, topics.Options{
			Extensions: []string{".md"},
			Renderer:   topics.NewGlamourRenderer(),
		})
	}
	if err != nil {
		// Manuals are embedded; without them man reports every page missing.
		a.manuals = topics.New(nil)
	}
	for _, c := range rootCmd.Commands() {
		if c.Name() == "help" {
			c.GroupID = "misc"
		}
	}

	return rootCmd
}

// Execute runs the command line and returns the process exit code.
func Execute(ctx context.Context, args []string) int {
	a := &app{}
	rootCmd := newRootCmd(a)
	rootCmd.SetArgs(args)
	return run(ctx, a, rootCmd)
}

func run(ctx context.Context, a *app, rootCmd *cobra.Command) int {
	cmd, err := rootCmd.ExecuteContextC(ctx)
	if err == nil {
		return ExitOK
	}
	code := ExitCode(err)
	if isSilent(err) {
		return code
	}

	renderer := a.errorRenderer(rootCmd)
	if rerr := renderer.RenderError(err); rerr != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	}
	if code == ExitUsage && cmd != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Run '%s --help' for usage.\n", cmd.CommandPath())
	}
	return code
}

// errorRenderer returns the renderer built during setup, or plain text on
// stderr when setup never completed.
func (a *app) errorRenderer(rootCmd *cobra.Command) ui.Renderer {
	if a.errRenderer != nil {
		return a.errRenderer
	}
	r, _ := text.New(rootCmd.ErrOrStderr())
	return r
}
