package hashutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/frece/pkg/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecksum(t *testing.T) {
	// sha256("hello")
	const want = "sha256:2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"

	got, err := Checksum(strings.NewReader("hello"))
	require.NoError(t, err)
	assert.Equal(t, want, got)

	path := filepath.Join(t.TempDir(), "f")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0644))
	got, err = CalculateFileChecksum(filesystem.NewOS(), path)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = CalculateFileChecksum(filesystem.NewOS(), filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
