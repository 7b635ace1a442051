// pkg/testutil/faultfs.go
// DEPENDENCIES: pkg/filesystem
// PURPOSE: Inject per-path failures into a real filesystem

package testutil

import (
	"io"
	"io/fs"
	"sync"
	"time"

	"github.com/arthur-debert/frece/pkg/filesystem"
	"github.com/arthur-debert/frece/pkg/types"
)

// Operations a FaultFS can fail.
const (
	OpStat       = "stat"
	OpOpen       = "open"
	OpOpenDir    = "opendir"
	OpRead       = "read"
	OpCreateTemp = "createtemp"
	OpMkdirAll   = "mkdirall"
	OpRename     = "rename"
)

// FaultFS wraps the OS filesystem and fails chosen operations on chosen
// paths. It is safe for concurrent use.
type FaultFS struct {
	inner types.FS

	mu     sync.Mutex
	faults map[string]error
	calls  map[string]int
}

// NewFaultFS creates a FaultFS over the OS filesystem.
func NewFaultFS() *FaultFS {
	return &FaultFS{
		inner:  filesystem.NewOS(),
		faults: make(map[string]error),
		calls:  make(map[string]int),
	}
}

// Fail makes op on path return err from now on.
func (f *FaultFS) Fail(op, path string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.faults[op+"\x00"+path] = err
}

// Calls returns how many times op was invoked on path.
func (f *FaultFS) Calls(op, path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op+"\x00"+path]
}

func (f *FaultFS) check(op, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := op + "\x00" + path
	f.calls[key]++
	return f.faults[key]
}

func (f *FaultFS) Stat(name string) (fs.FileInfo, error) {
	if err := f.check(OpStat, name); err != nil {
		return nil, err
	}
	return f.inner.Stat(name)
}

func (f *FaultFS) Lstat(name string) (fs.FileInfo, error) {
	if err := f.check(OpStat, name); err != nil {
		return nil, err
	}
	return f.inner.Lstat(name)
}

func (f *FaultFS) OpenDir(name string) (types.DirReader, error) {
	if err := f.check(OpOpenDir, name); err != nil {
		return nil, err
	}
	return f.inner.OpenDir(name)
}

func (f *FaultFS) Open(name string) (io.ReadCloser, error) {
	if err := f.check(OpOpen, name); err != nil {
		return nil, err
	}
	rc, err := f.inner.Open(name)
	if err != nil {
		return nil, err
	}
	if err := f.check(OpRead, name); err != nil {
		return &failingReader{ReadCloser: rc, err: err}, nil
	}
	return rc, nil
}

func (f *FaultFS) CreateTemp(dir, pattern string) (types.WriteFile, error) {
	if err := f.check(OpCreateTemp, dir); err != nil {
		return nil, err
	}
	return f.inner.CreateTemp(dir, pattern)
}

func (f *FaultFS) MkdirAll(path string, perm fs.FileMode) error {
	if err := f.check(OpMkdirAll, path); err != nil {
		return err
	}
	return f.inner.MkdirAll(path, perm)
}

func (f *FaultFS) Rename(oldpath, newpath string) error {
	if err := f.check(OpRename, newpath); err != nil {
		return err
	}
	return f.inner.Rename(oldpath, newpath)
}

func (f *FaultFS) Remove(name string) error {
	return f.inner.Remove(name)
}

func (f *FaultFS) Chmod(name string, mode fs.FileMode) error {
	return f.inner.Chmod(name, mode)
}

func (f *FaultFS) Chtimes(name string, atime, mtime time.Time) error {
	return f.inner.Chtimes(name, atime, mtime)
}

// failingReader returns err after the first successful read, which models
// a device error partway through a file.
type failingReader struct {
	io.ReadCloser
	err   error
	reads int
}

func (r *failingReader) Read(p []byte) (int, error) {
	r.reads++
	if r.reads > 1 {
		return 0, r.err
	}
	n, err := r.ReadCloser.Read(p)
	if err == io.EOF {
		return n, r.err
	}
	return n, err
}
