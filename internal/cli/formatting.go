package cli

import (
	"os"
	"strings"
	"text/template"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// styledHelp is false when help goes to a pipe or NO_COLOR is set.
func styledHelp() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func bold(s string) string {
	if !styledHelp() {
		return s
	}
	return pterm.Bold.Sprint(s)
}

var helpFuncs = template.FuncMap{
	"bold":      bold,
	"upper":     strings.ToUpper,
	"boldUpper": func(s string) string { return bold(strings.ToUpper(s)) },
}

func initTemplateFormatting() {
	cobra.AddTemplateFuncs(helpFuncs)
}
