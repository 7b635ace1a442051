package scanner

import (
	"context"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/frece/pkg/errors"
	"github.com/arthur-debert/frece/pkg/matchers"
	"github.com/arthur-debert/frece/pkg/types"
	"github.com/rs/zerolog"
)

type frame struct {
	dir     types.DirReader
	path    string
	rel     string
	pending []fs.DirEntry
	eof     bool
}

// Iterator yields matching files one at a time. It is not safe for
// concurrent use.
type Iterator struct {
	ctx          context.Context
	fs           types.FS
	opts         Options
	selection    matchers.Selection
	excludeNames map[string]struct{}
	excludePaths map[string]struct{}
	logger       zerolog.Logger

	stack       []*frame
	directories int
	skipped     int
	warnings    []types.ScanWarning
	err         error
}

// Next returns the next matching record. It returns false when the walk is
// over, after which Err reports whether it was cut short.
func (it *Iterator) Next() (types.FileRecord, bool) {
	for it.err == nil && len(it.stack) > 0 {
		if err := it.ctx.Err(); err != nil {
			it.err = err
			it.closeAll()
			break
		}

		top := it.stack[len(it.stack)-1]
		if len(top.pending) == 0 {
			if top.eof {
				it.pop()
				continue
			}
			it.fill(top)
			continue
		}

		entry := top.pending[0]
		top.pending = top.pending[1:]
		if rec, ok := it.visit(top, entry); ok {
			return rec, true
		}
	}
	return types.FileRecord{}, false
}

// Err returns the context error that stopped the walk, if any.
func (it *Iterator) Err() error {
	return it.err
}

// Warnings returns the non-fatal failures seen so far.
func (it *Iterator) Warnings() []types.ScanWarning {
	return it.warnings
}

// Directories returns the number of directories entered below the root.
func (it *Iterator) Directories() int {
	return it.directories
}

// Skipped returns the number of entries passed over without being
// recorded: directory symlinks, special files and excluded directories.
func (it *Iterator) Skipped() int {
	return it.skipped
}

// Close releases every open directory handle. It is safe to call twice.
func (it *Iterator) Close() error {
	it.closeAll()
	return nil
}

func (it *Iterator) fill(f *frame) {
	entries, err := f.dir.ReadDir(it.opts.BatchSize)
	f.pending = entries
	if err == nil {
		if len(entries) == 0 {
			f.eof = true
		}
		return
	}
	f.eof = true
	if err != io.EOF {
		it.warn(f.path, err)
	}
}

func (it *Iterator) visit(parent *frame, entry fs.DirEntry) (types.FileRecord, bool) {
	name := entry.Name()
	path := filepath.Join(parent.path, name)
	rel := filepath.Join(parent.rel, name)

	if it.opts.SkipHidden && strings.HasPrefix(name, ".") {
		it.skipped++
		return types.FileRecord{}, false
	}

	mode := entry.Type()
	switch {
	case mode.IsDir():
		it.enter(path, rel, name)
		return types.FileRecord{}, false

	case mode&fs.ModeSymlink != 0:
		if !it.selection.Match(name) {
			return types.FileRecord{}, false
		}
		info, err := it.fs.Stat(path)
		if err != nil {
			it.warn(path, err)
			return types.FileRecord{}, false
		}
		if !info.Mode().IsRegular() {
			it.logger.Trace().Str("path", path).Msg("Not following symlink")
			it.skipped++
			return types.FileRecord{}, false
		}
		return newRecord(path, rel, name, info, true), true

	case mode.IsRegular():
		if !it.selection.Match(name) {
			return types.FileRecord{}, false
		}
		info, err := entry.Info()
		if err != nil {
			it.warn(path, err)
			return types.FileRecord{}, false
		}
		return newRecord(path, rel, name, info, false), true

	default:
		it.skipped++
		return types.FileRecord{}, false
	}
}

func (it *Iterator) enter(path, rel, name string) {
	if _, ok := it.excludeNames[name]; ok {
		it.logger.Debug().Str("path", path).Msg("Skipping excluded directory")
		it.skipped++
		return
	}
	if _, ok := it.excludePaths[path]; ok {
		it.logger.Debug().Str("path", path).Msg("Skipping excluded directory")
		it.skipped++
		return
	}

	dir, err := it.fs.OpenDir(path)
	if err != nil {
		it.warn(path, err)
		return
	}
	it.directories++
	it.stack = append(it.stack, &frame{dir: dir, path: path, rel: rel})
}

func (it *Iterator) pop() {
	top := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	if err := top.dir.Close(); err != nil {
		it.logger.Trace().Err(err).Str("path", top.path).Msg("Closing directory")
	}
}

func (it *Iterator) closeAll() {
	for len(it.stack) > 0 {
		it.pop()
	}
}

func (it *Iterator) warn(path string, err error) {
	code := errors.ClassifyOSError(err, errors.ErrFileAccess)
	it.logger.Warn().Err(err).Str("path", path).Str("code", string(code)).Msg("Skipping unreadable entry")
	it.warnings = append(it.warnings, types.ScanWarning{
		Path: path,
		Err:  err.Error(),
		Code: code,
	})
}

func newRecord(path, rel, name string, info fs.FileInfo, symlink bool) types.FileRecord {
	ext := matchers.ExtensionOf(name)
	if ext == "" {
		ext = types.NoExtension
	}
	return types.FileRecord{
		Path:      path,
		RelPath:   rel,
		Name:      name,
		Extension: ext,
		Size:      info.Size(),
		Mode:      info.Mode().Perm(),
		ModTime:   info.ModTime(),
		IsSymlink: symlink,
	}
}
