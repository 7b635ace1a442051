package types

import (
	"io"
	"io/fs"
	"time"
)

// FS is the filesystem surface the scanner and copier work through.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	OpenDir(name string) (DirReader, error)
	Open(name string) (io.ReadCloser, error)
	CreateTemp(dir, pattern string) (WriteFile, error)
	MkdirAll(path string, perm fs.FileMode) error
	Rename(oldpath, newpath string) error
	Remove(name string) error
	Chmod(name string, mode fs.FileMode) error
	Chtimes(name string, atime, mtime time.Time) error
}

// DirReader reads a directory in batches; see os.File.ReadDir.
type DirReader interface {
	ReadDir(n int) ([]fs.DirEntry, error)
	Close() error
}

// WriteFile is a file opened for writing by CreateTemp.
type WriteFile interface {
	io.Writer
	Name() string
	Sync() error
	Close() error
}
