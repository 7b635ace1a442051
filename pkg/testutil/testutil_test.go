package testutil

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAndReadTree(t *testing.T) {
	root := t.TempDir()
	WriteTree(t, root, map[string]string{
		"a.txt":     "A",
		"sub/c.txt": "C",
		"empty/":    "",
	})

	assert.True(t, DirExists(t, filepath.Join(root, "empty")))
	assert.Equal(t, map[string]string{"a.txt": "A", "sub/c.txt": "C"}, ReadTree(t, root))
	assert.Equal(t, Checksum(t, filepath.Join(root, "a.txt")), Checksum(t, filepath.Join(root, "a.txt")))
}

func TestFaultFS(t *testing.T) {
	root := t.TempDir()
	path := CreateFile(t, root, "f.txt", "data")

	ffs := NewFaultFS()
	ffs.Fail(OpOpen, path, fs.ErrPermission)
	_, err := ffs.Open(path)
	assert.True(t, errors.Is(err, fs.ErrPermission))
	assert.Equal(t, 1, ffs.Calls(OpOpen, path))

	ffs = NewFaultFS()
	ioErr := errors.New("device error")
	ffs.Fail(OpRead, path, ioErr)
	rc, err := ffs.Open(path)
	require.NoError(t, err)
	_, err = io.ReadAll(rc)
	assert.ErrorIs(t, err, ioErr)
	require.NoError(t, rc.Close())
}

func TestIsolateHome(t *testing.T) {
	env := IsolateHome(t)

	assert.Equal(t, env.Home, os.Getenv("HOME"))
	assert.Equal(t, env.StateHome, xdg.StateHome)
	assert.Equal(t, env.DataHome, xdg.DataHome)
}
