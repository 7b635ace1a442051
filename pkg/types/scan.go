package types

import (
	"io/fs"
	"time"

	"github.com/arthur-debert/frece/pkg/errors"
	"github.com/arthur-debert/frece/pkg/matchers"
)

// NoExtension is reported as the extension of files that have none.
const NoExtension = "(none)"

// FileRecord describes one regular file found by a scan.
type FileRecord struct {
	Path      string      `json:"path"`
	RelPath   string      `json:"rel_path"`
	Name      string      `json:"name"`
	Extension string      `json:"extension"`
	Size      int64       `json:"size"`
	Mode      fs.FileMode `json:"mode"`
	ModTime   time.Time   `json:"mod_time"`
	IsSymlink bool        `json:"is_symlink,omitempty"`
}

// ScanWarning is a non-fatal failure to read part of the tree.
type ScanWarning struct {
	Path string           `json:"path"`
	Err  string           `json:"error"`
	Code errors.ErrorCode `json:"code"`
}

// ScanResult is the materialized output of a scan, records in traversal order.
type ScanResult struct {
	Root        ResolvedPath             `json:"root"`
	Filter      matchers.ExtensionFilter `json:"-"`
	Name        matchers.NameFilter      `json:"-"`
	Records     []FileRecord             `json:"records"`
	Directories int                      `json:"directories"`
	Warnings    []ScanWarning            `json:"warnings,omitempty"`
}

// Count returns the number of records.
func (r *ScanResult) Count() int {
	return len(r.Records)
}

// TotalSize sums the size of every record.
func (r *ScanResult) TotalSize() int64 {
	var total int64
	for _, rec := range r.Records {
		total += rec.Size
	}
	return total
}
