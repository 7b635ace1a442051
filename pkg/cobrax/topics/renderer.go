package topics

import "strings"

// Renderer formats topic content for the terminal. format is the topic
// file's extension, such as ".md".
type Renderer interface {
	Render(content string, format string) string
}

// PlainRenderer prints topics as written, ending with exactly one newline.
type PlainRenderer struct{}

// Render returns content with its trailing whitespace normalized
func (r *PlainRenderer) Render(content string, format string) string {
	return strings.TrimRight(content, " \t\n") + "\n"
}
