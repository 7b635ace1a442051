package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/frece/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestResolver builds a resolver rooted at a fresh temp home with the
// Desktop and Documents directories in place.
func newTestResolver(t *testing.T) (*Resolver, HomeDirs) {
	t.Helper()
	home := HomeDirsFor(t.TempDir())
	require.NoError(t, os.MkdirAll(home.Desktop, 0755))
	require.NoError(t, os.MkdirAll(home.Documents, 0755))

	r, err := New(Options{Home: &home, NoFallback: true, WorkingDir: home.Home})
	require.NoError(t, err)
	return r, home
}

func TestResolveAliasesIgnoreCase(t *testing.T) {
	r, home := newTestResolver(t)

	for _, input := range []string{"desktop", "Desktop", "DESKTOP", "  desktop "} {
		t.Run(input, func(t *testing.T) {
			rp, err := r.Resolve(input)
			require.NoError(t, err)
			assert.Equal(t, home.Desktop, rp.Path)
			assert.True(t, rp.FromAlias)
			assert.Equal(t, "desktop", rp.Alias)
			assert.False(t, rp.UsedFallback)
		})
	}

	docs, err := r.Resolve("Documents")
	require.NoError(t, err)
	assert.Equal(t, home.Documents, docs.Path)
}

func TestResolveMissingAliasNamesResolvedPath(t *testing.T) {
	r, home := newTestResolver(t)

	_, err := r.Resolve("trash")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDirectoryNotFound))
	assert.Contains(t, err.Error(), filepath.Join(home.Home, ".local", "share", "Trash", "files"))
	assert.NotContains(t, err.Error(), "trash:")
}

func TestResolveTilde(t *testing.T) {
	r, home := newTestResolver(t)

	rp, err := r.Resolve("~")
	require.NoError(t, err)
	assert.Equal(t, home.Home, rp.Path)
	assert.False(t, rp.FromAlias)

	rp, err = r.Resolve("~/Desktop/")
	require.NoError(t, err)
	assert.Equal(t, home.Desktop, rp.Path)
}

func TestResolveRelativeAndAbsolute(t *testing.T) {
	r, home := newTestResolver(t)

	rp, err := r.Resolve("Documents/../Desktop")
	require.NoError(t, err)
	assert.Equal(t, home.Desktop, rp.Path)

	rp, err = r.Resolve(home.Documents + "/./")
	require.NoError(t, err)
	assert.Equal(t, home.Documents, rp.Path)
	assert.True(t, filepath.IsAbs(rp.Path))
}

func TestResolveErrors(t *testing.T) {
	r, home := newTestResolver(t)

	_, err := r.Resolve("")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, err = r.Resolve("   ")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, err = r.Resolve(filepath.Join(home.Home, "nope"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrDirectoryNotFound))

	file := filepath.Join(home.Home, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
	_, err = r.Resolve(file)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDirectoryNotFound))

	_, err = r.Resolve("~no-such-user-frece-test/x")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestResolveFallback(t *testing.T) {
	primary := HomeDirsFor(t.TempDir())
	invoking := HomeDirsFor(t.TempDir())
	require.NoError(t, os.MkdirAll(invoking.Pictures, 0755))

	r, err := New(Options{Home: &primary, InvokingHome: &invoking, WorkingDir: primary.Home})
	require.NoError(t, err)
	require.True(t, r.HasFallback())

	rp, err := r.Resolve("pictures")
	require.NoError(t, err)
	assert.Equal(t, invoking.Pictures, rp.Path)
	assert.True(t, rp.UsedFallback)

	// Neither home has downloads: error names the first path, carries the second.
	_, err = r.Resolve("downloads")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDirectoryNotFound))
	assert.Contains(t, err.Error(), primary.Downloads)
	assert.Equal(t, invoking.Downloads, errors.GetErrorDetails(err)["fallback_path"])
}

func TestResolveDestination(t *testing.T) {
	r, home := newTestResolver(t)

	rp, err := r.ResolveDestination("~/not/yet/there")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home.Home, "not", "yet", "there"), rp.Path)

	rp, err = r.ResolveDestination("pictures")
	require.NoError(t, err)
	assert.Equal(t, home.Pictures, rp.Path)
	assert.True(t, rp.FromAlias)

	_, err = r.ResolveDestination("")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestResolveDestinationTrimsTilde(t *testing.T) {
	r, home := newTestResolver(t)

	rp, err := r.ResolveDestination("  ~/out ")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home.Home, "out"), rp.Path)
	assert.False(t, rp.FromAlias)

	rp, err = r.ResolveDestination(" desktop")
	require.NoError(t, err)
	assert.Equal(t, home.Desktop, rp.Path)
}

func TestDefaultRecoveryDir(t *testing.T) {
	home := HomeDirsFor(t.TempDir())
	r, err := New(Options{Home: &home, NoFallback: true, WorkingDir: home.Home})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home.Desktop, "recovered_files"), r.DefaultRecoveryDir().Path)

	r, err = New(Options{Home: &home, NoFallback: true, WorkingDir: home.Home, DefaultDirName: "rescued"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home.Desktop, "rescued"), r.DefaultRecoveryDir().Path)
}

func TestAliases(t *testing.T) {
	r, home := newTestResolver(t)

	aliases := r.Aliases()
	names := make([]string, 0, len(aliases))
	for _, a := range aliases {
		names = append(names, a.Name)
	}
	assert.Equal(t, []string{"desktop", "documents", "downloads", "pictures", "trash"}, names)
	assert.Equal(t, home.Trash, aliases[4].Target)
}

func TestAliasTableLookup(t *testing.T) {
	table := NewAliasTable(HomeDirs{Desktop: "/h/Desktop"})

	target, ok := table.Lookup("DeskTop")
	assert.True(t, ok)
	assert.Equal(t, "/h/Desktop", target)

	_, ok = table.Lookup("pictures")
	assert.False(t, ok, "empty targets are not aliases")

	_, ok = table.Lookup("music")
	assert.False(t, ok)
}

func TestExpandHome(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"~", "/h"},
		{"~/", "/h"},
		{"~/a/b", "/h/a/b"},
		{"/abs", "/abs"},
		{"rel", "rel"},
		{"a~b", "a~b"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := expandHome(tt.in, "/h")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
