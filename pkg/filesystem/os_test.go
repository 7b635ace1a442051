package filesystem

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSFSRoundTrip(t *testing.T) {
	fsys := NewOS()
	dir := t.TempDir()
	sub := filepath.Join(dir, "a", "b")

	require.NoError(t, fsys.MkdirAll(sub, 0755))

	tmp, err := fsys.CreateTemp(sub, ".part-*")
	require.NoError(t, err)
	_, err = tmp.Write([]byte("hello"))
	require.NoError(t, err)
	require.NoError(t, tmp.Sync())
	require.NoError(t, tmp.Close())

	final := filepath.Join(sub, "hello.txt")
	require.NoError(t, fsys.Rename(tmp.Name(), final))
	require.NoError(t, fsys.Chmod(final, 0600))

	info, err := fsys.Stat(final)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	rc, err := fsys.Open(final)
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "hello", string(data))

	d, err := fsys.OpenDir(sub)
	require.NoError(t, err)
	entries, err := d.ReadDir(-1)
	require.NoError(t, err)
	require.NoError(t, d.Close())
	require.Len(t, entries, 1)
	assert.Equal(t, "hello.txt", entries[0].Name())

	require.NoError(t, fsys.Remove(final))
	_, err = fsys.Lstat(final)
	assert.True(t, os.IsNotExist(err))
}
