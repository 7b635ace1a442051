// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/arthur-debert/frece/pkg/catalog"
	"github.com/arthur-debert/frece/pkg/errors"
	"github.com/arthur-debert/frece/pkg/types"
)

// Styler decorates s with the semantic style name. The plain renderer uses
// the identity.
type Styler func(style, s string) string

func plain(_, s string) string { return s }

// Renderer provides plain text output. The terminal renderer reuses its
// layout with a lipgloss Styler.
type Renderer struct {
	output io.Writer
	style  Styler
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return NewStyled(output, plain), nil
}

// NewStyled creates a renderer that passes every span through style.
func NewStyled(output io.Writer, style Styler) *Renderer {
	if style == nil {
		style = plain
	}
	return &Renderer{output: output, style: style}
}

// RenderResult renders any result type as text
func (r *Renderer) RenderResult(result interface{}) error {
	w := &lineWriter{w: r.output}
	switch v := result.(type) {
	case *types.ScanResult:
		r.scan(w, v)
	case *types.RecoveryOutcome:
		r.recovery(w, v)
	case types.CatalogSummary:
		r.catalog(w, &v)
	case *types.CatalogSummary:
		r.catalog(w, v)
	case []types.Alias:
		r.aliases(w, v)
	case *types.ToolRun:
		r.tool(w, v)
	default:
		// For unknown types, just print them
		w.printf("%+v\n", result)
	}
	return w.err
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	w := &lineWriter{w: r.output}
	w.printf("%s %s\n", r.style("Error", "Error:"), describe(err))
	return w.err
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

func (r *Renderer) scan(w *lineWriter, res *types.ScanResult) {
	w.printf("%s\n", r.style("Header", "Found files:"))
	for _, rec := range res.Records {
		w.printf("%s\n", r.style("FilePath", rec.Path))
	}
	r.warnings(w, res.Warnings)

	what := "files"
	switch {
	case !res.Name.IsZero():
		what = fmt.Sprintf("files named %s", res.Name.Name())
	case !res.Filter.IsZero():
		what = fmt.Sprintf("%s files", res.Filter.Extension())
	}
	w.printf("%s\n", r.style("Summary",
		fmt.Sprintf("%d %s found in %s (%d directories scanned)", len(res.Records), what, res.Root.Path, res.Directories)))
}

func (r *Renderer) recovery(w *lineWriter, o *types.RecoveryOutcome) {
	for _, f := range o.Files {
		switch f.Status {
		case types.StatusCopied:
			w.printf("%s %s -> %s\n", r.style("Success", "Recovered:"), f.Source, f.Destination)
		case types.StatusPlanned:
			w.printf("%s %s -> %s\n", r.style("Info", "Would recover:"), f.Source, f.Destination)
		case types.StatusSkipped:
			w.printf("%s %s (exists at %s)\n", r.style("Muted", "Skipped:"), f.Source, f.Destination)
		case types.StatusFailed:
			w.printf("%s %s: %s\n", r.style("Error", failLabel(f.Code)), f.Source, f.Err)
		}
	}
	if o.Cancelled {
		w.printf("%s\n", r.style("Warning", "Recovery cancelled before all files were processed."))
	}
	summary := fmt.Sprintf("%s into %s", o.Summary(), o.Destination)
	style := "Summary"
	if o.Failed > 0 {
		style = "Warning"
	}
	w.printf("%s\n", r.style(style, summary))
}

func failLabel(code errors.ErrorCode) string {
	if code == errors.ErrPermissionDenied {
		return "Permission denied:"
	}
	return "Error recovering"
}

func (r *Renderer) catalog(w *lineWriter, c *types.CatalogSummary) {
	w.printf("%s\n", r.style("Header", "Catalog of "+c.Root))
	w.printf("%s\n", r.style("Bold", "Extensions:"))
	for _, ec := range catalog.SortedExtensions(c.ExtensionCounts) {
		w.printf("  %s %s\n", r.style("Extension", padRight(ec.Extension, 12)), r.style("Count", fmt.Sprintf("%6d", ec.Count)))
	}
	w.printf("%s %d\n", r.style("Bold", "Directories:"), c.DirectoryCount)
	w.printf("%s\n", r.style("Bold", "Files:"))
	for _, f := range c.Files {
		w.printf("  %s %s\n", f.RelPath, r.style("Muted", "("+f.Extension+")"))
	}
	r.warnings(w, c.Warnings)
	w.printf("%s\n", r.style("Summary", fmt.Sprintf("%d files in %d directories", c.FileCount, c.DirectoryCount)))
}

func (r *Renderer) aliases(w *lineWriter, aliases []types.Alias) {
	width := 0
	for _, a := range aliases {
		if len(a.Name) > width {
			width = len(a.Name)
		}
	}
	for _, a := range aliases {
		w.printf("  %s  %s\n", r.style("Bold", padRight(a.Name, width)), r.style("FilePath", a.Target))
	}
}

func (r *Renderer) tool(w *lineWriter, run *types.ToolRun) {
	if run.Succeeded() {
		w.printf("%s %s finished in %s\n", r.style("Success", "Done:"), run.Name, run.Duration.Round(time.Millisecond))
		return
	}
	w.printf("%s %s exited with status %d\n", r.style("Error", "Failed:"), run.Name, run.ExitCode)
}

func (r *Renderer) warnings(w *lineWriter, warnings []types.ScanWarning) {
	for _, warn := range warnings {
		w.printf("%s %s: %s\n", r.style("Warning", "Warning:"), warn.Path, warn.Err)
	}
}

// describe appends the fallback path, when one was tried, to the message.
func describe(err error) string {
	var b strings.Builder
	b.WriteString(err.Error())
	if path, ok := errors.GetErrorDetails(err)["fallback_path"].(string); ok {
		fmt.Fprintf(&b, " (also tried %s)", path)
	}
	return b.String()
}

func padRight(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}

// lineWriter remembers the first write error so rendering code can stay linear.
type lineWriter struct {
	w   io.Writer
	err error
}

func (l *lineWriter) printf(format string, args ...interface{}) {
	if l.err != nil {
		return
	}
	_, l.err = fmt.Fprintf(l.w, format, args...)
}
