package matchers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/frece/pkg/errors"
)

// NameFilter matches files whose base name equals the pattern exactly.
// Matching is case-sensitive. The zero value matches all files.
type NameFilter struct {
	name string
}

// NewNameFilter builds a filter for the exact base name raw.
func NewNameFilter(raw string) (NameFilter, error) {
	if raw == "" {
		return NameFilter{}, nil
	}
	if strings.ContainsAny(raw, `/\`) || strings.ContainsRune(raw, filepath.Separator) {
		return NameFilter{}, errors.Newf(errors.ErrInvalidInput, "file name %q must not contain a path separator", raw).
			WithDetail("name", raw)
	}
	if raw == "." || raw == ".." {
		return NameFilter{}, errors.Newf(errors.ErrInvalidInput, "%q is not a file name", raw)
	}
	return NameFilter{name: raw}, nil
}

// Name returns the exact name matched, or "" for the match-all filter.
func (f NameFilter) Name() string {
	return f.name
}

// IsZero reports whether the filter matches every file.
func (f NameFilter) IsZero() bool {
	return f.name == ""
}

func (f NameFilter) String() string {
	return f.name
}

// Description returns a human-readable description of this filter
func (f NameFilter) Description() string {
	if f.IsZero() {
		return "all files"
	}
	return fmt.Sprintf("files named '%s'", f.name)
}

// Match checks if the base name of path equals the filter's name
func (f NameFilter) Match(path string) bool {
	if f.IsZero() {
		return true
	}
	return filepath.Base(path) == f.name
}
