// Package console implements the interactive FRECE> prompt. Input lines are
// parsed once into a closed set of command values and dispatched by type.
package console

import (
	"strings"

	"github.com/arthur-debert/frece/pkg/errors"
)

// Command is one parsed console line. The set of implementations is closed.
type Command interface {
	command()
}

// ScanCmd lists files under Path, optionally filtered by extension.
type ScanCmd struct {
	Path      string
	Extension string
}

// FindCmd lists files under Path whose base name equals Name.
type FindCmd struct {
	Path string
	Name string
}

// ListCmd catalogs the extensions and directories under Path.
type ListCmd struct {
	Path string
}

// RecoverCmd copies files from Source into Destination. An empty
// Destination selects the configured default.
type RecoverCmd struct {
	Source      string
	Destination string
	Extension   string
}

// ManCmd shows the manual page for Topic.
type ManCmd struct {
	Topic string
}

// HelpCmd prints the command overview.
type HelpCmd struct{}

// VersionCmd prints the version string.
type VersionCmd struct{}

// ExitCmd leaves the console.
type ExitCmd struct{}

func (ScanCmd) command()    {}
func (FindCmd) command()    {}
func (ListCmd) command()    {}
func (RecoverCmd) command() {}
func (ManCmd) command()     {}
func (HelpCmd) command()    {}
func (VersionCmd) command() {}
func (ExitCmd) command()    {}

func invalid(format string, args ...interface{}) error {
	return errors.Newf(errors.ErrInvalidCommand, format, args...)
}

// Parse turns one input line into a Command. A blank line returns nil and no
// error.
func Parse(line string) (Command, error) {
	words, err := tokenize(line)
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, nil
	}

	verb, args := strings.ToLower(words[0]), words[1:]
	switch verb {
	case "scan":
		if len(args) < 1 || len(args) > 2 {
			return nil, invalid("usage: scan <dir> [ext]")
		}
		cmd := ScanCmd{Path: args[0]}
		if len(args) == 2 {
			cmd.Extension = args[1]
		}
		return cmd, nil

	case "find":
		if len(args) != 2 {
			return nil, invalid("usage: find <dir> <name>")
		}
		return FindCmd{Path: args[0], Name: args[1]}, nil

	case "list":
		if len(args) != 1 {
			return nil, invalid("usage: list <dir>")
		}
		return ListCmd{Path: args[0]}, nil

	case "recover":
		return parseRecover(args)

	case "man":
		if len(args) == 0 {
			return nil, invalid("missing command name for 'man'")
		}
		if len(args) > 1 {
			return nil, invalid("usage: man <command>")
		}
		return ManCmd{Topic: args[0]}, nil

	case "--help", "-h", "help":
		return HelpCmd{}, nil

	case "--version", "version":
		return VersionCmd{}, nil

	case "exit", "quit":
		return ExitCmd{}, nil
	}
	return nil, invalid("invalid command: %s", words[0])
}

func parseRecover(args []string) (Command, error) {
	var cmd RecoverCmd
	var positional []string
	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == "--ext":
			if i+1 >= len(args) {
				return nil, invalid("--ext needs a value")
			}
			i++
			cmd.Extension = args[i]
		case strings.HasPrefix(args[i], "--ext="):
			cmd.Extension = strings.TrimPrefix(args[i], "--ext=")
		default:
			positional = append(positional, args[i])
		}
	}
	if len(positional) < 1 || len(positional) > 2 {
		return nil, invalid("usage: recover <source> [dest] [--ext E]")
	}
	cmd.Source = positional[0]
	if len(positional) == 2 {
		cmd.Destination = positional[1]
	}
	return cmd, nil
}

// tokenize splits a line on whitespace, honouring single quotes, double
// quotes and backslash escapes outside single quotes.
func tokenize(line string) ([]string, error) {
	var (
		words   []string
		current strings.Builder
		inWord  bool
		quote   rune
		escaped bool
	)

	for _, r := range line {
		switch {
		case escaped:
			current.WriteRune(r)
			escaped = false
		case r == '\\' && quote != '\'':
			escaped = true
			inWord = true
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
			inWord = true
		case r == ' ' || r == '\t':
			if inWord {
				words = append(words, current.String())
				current.Reset()
				inWord = false
			}
		default:
			current.WriteRune(r)
			inWord = true
		}
	}

	if quote != 0 {
		return nil, invalid("unterminated %c quote", quote)
	}
	if escaped {
		return nil, invalid("trailing backslash")
	}
	if inWord {
		words = append(words, current.String())
	}
	return words, nil
}
