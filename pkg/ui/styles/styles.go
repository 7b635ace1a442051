// Package styles defines the visual styling for frece's terminal output.
//
// Styles are looked up by semantic name ("Header", "FilePath", ...) and use
// adaptive colors so the same palette reads on light and dark terminals.
// Definitions live in the embedded styles.yaml.
package styles

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Names every theme is expected to define. A theme missing one of them
// renders that span unstyled.
var Names = []string{
	"Header", "Success", "Error", "Warning", "Info",
	"Bold", "Muted", "FilePath", "Extension", "Count", "Summary",
}

type paletteEntry struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

type styleDef struct {
	Bold       bool   `yaml:"bold"`
	Italic     bool   `yaml:"italic"`
	Foreground string `yaml:"foreground"`
	Width      int    `yaml:"width"`
	Align      string `yaml:"align"`
	MarginTop  int    `yaml:"marginTop"`
}

type document struct {
	Colors map[string]paletteEntry `yaml:"colors"`
	Styles map[string]styleDef     `yaml:"styles"`
}

// Theme is a parsed set of named styles.
type Theme struct {
	styles map[string]lipgloss.Style
}

//go:embed styles.yaml
var embedded []byte

var current = mustDefault()

func mustDefault() *Theme {
	theme, err := Parse(embedded)
	if err != nil {
		return Plain()
	}
	return theme
}

// Plain returns a theme where every name maps to an empty style.
func Plain() *Theme {
	t := &Theme{styles: make(map[string]lipgloss.Style, len(Names))}
	for _, name := range Names {
		t.styles[name] = lipgloss.NewStyle()
	}
	return t
}

// Parse builds a theme from YAML. A style whose foreground names an
// undefined color keeps its other attributes.
func Parse(data []byte) (*Theme, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse styles: %w", err)
	}

	t := &Theme{styles: make(map[string]lipgloss.Style, len(doc.Styles))}
	for name, s := range doc.Styles {
		st := lipgloss.NewStyle().Bold(s.Bold).Italic(s.Italic)
		if c, ok := doc.Colors[s.Foreground]; ok {
			st = st.Foreground(lipgloss.AdaptiveColor{Light: c.Light, Dark: c.Dark})
		}
		if s.Width > 0 {
			st = st.Width(s.Width)
		}
		switch s.Align {
		case "center":
			st = st.Align(lipgloss.Center)
		case "right":
			st = st.Align(lipgloss.Right)
		}
		if s.MarginTop > 0 {
			st = st.MarginTop(s.MarginTop)
		}
		t.styles[name] = st
	}
	return t, nil
}

// Get returns the named style, or an empty style for unknown names.
func (t *Theme) Get(name string) lipgloss.Style {
	if st, ok := t.styles[name]; ok {
		return st
	}
	return lipgloss.NewStyle()
}

// Has reports whether the theme defines name.
func (t *Theme) Has(name string) bool {
	_, ok := t.styles[name]
	return ok
}

// Render applies the named style to s.
func (t *Theme) Render(name, s string) string {
	return t.Get(name).Render(s)
}

// Default returns the theme loaded from the embedded styles.yaml.
func Default() *Theme {
	return current
}

// Render applies the named style of the default theme to s.
func Render(name, s string) string {
	return current.Render(name, s)
}
