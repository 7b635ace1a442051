package matchers

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/arthur-debert/frece/pkg/errors"
	"github.com/arthur-debert/frece/pkg/logging"
)

// ExtensionFilter matches files by their extension, case-insensitively.
// The zero value matches all files.
type ExtensionFilter struct {
	extension string
}

// NewExtensionFilter normalizes raw into a filter. "txt", ".txt" and ".TXT"
// all become ".txt". An empty (or blank) raw yields the match-all filter.
func NewExtensionFilter(raw string) (ExtensionFilter, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return ExtensionFilter{}, nil
	}

	if err := validateExtension(raw, value); err != nil {
		return ExtensionFilter{}, err
	}

	// Ensure extension starts with a dot
	if !strings.HasPrefix(value, ".") {
		value = "." + value
	}
	value = strings.ToLower(value)

	logger := logging.GetLogger("matchers.extension")
	logger.Trace().
		Str("raw", raw).
		Str("extension", value).
		Msg("created extension filter")

	return ExtensionFilter{extension: value}, nil
}

func validateExtension(raw, value string) error {
	invalid := func(reason string) error {
		return errors.Newf(errors.ErrInvalidExtensionFilter, "invalid extension filter %q: %s", raw, reason).
			WithDetail("filter", raw)
	}

	if strings.Trim(value, ".") == "" {
		return invalid("only dots")
	}
	if strings.ContainsAny(value, `/\`) || strings.ContainsRune(value, filepath.Separator) {
		return invalid("contains a path separator")
	}
	if strings.ContainsAny(value, "*?[") {
		return invalid("contains a glob character")
	}
	for _, r := range value {
		if unicode.IsSpace(r) {
			return invalid("contains whitespace")
		}
	}
	// An extension is everything after the last dot, so a filter with an inner
	// dot could never match anything.
	if strings.Contains(strings.TrimPrefix(value, "."), ".") {
		return invalid("contains more than one dot")
	}
	return nil
}

// Extension returns the normalized extension, or "" for the match-all filter.
func (f ExtensionFilter) Extension() string {
	return f.extension
}

// IsZero reports whether the filter matches every file.
func (f ExtensionFilter) IsZero() bool {
	return f.extension == ""
}

func (f ExtensionFilter) String() string {
	return f.extension
}

// Description returns a human-readable description of this filter
func (f ExtensionFilter) Description() string {
	if f.IsZero() {
		return "all files"
	}
	return fmt.Sprintf("files with extension '%s'", f.extension)
}

// Match checks if the given file name carries the filter's extension
func (f ExtensionFilter) Match(name string) bool {
	if f.IsZero() {
		return true
	}
	return ExtensionOf(name) == f.extension
}

// ExtensionOf returns the lower-cased extension of a file name, including the
// leading dot. Leading dots are part of the name, so ".bashrc" has no
// extension; neither does a name ending in a bare dot.
func ExtensionOf(name string) string {
	base := filepath.Base(name)
	ext := filepath.Ext(strings.TrimLeft(base, "."))
	if ext == "." {
		return ""
	}
	return strings.ToLower(ext)
}
