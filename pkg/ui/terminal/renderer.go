// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"io"

	"github.com/arthur-debert/frece/pkg/ui/styles"
	"github.com/arthur-debert/frece/pkg/ui/text"
)

// Renderer lays output out like the text renderer, with lipgloss styles
// from the styles registry applied to every span.
type Renderer struct {
	*text.Renderer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{Renderer: text.NewStyled(w, styles.Render)}, nil
}
