package catalog

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/frece/pkg/errors"
	"github.com/arthur-debert/frece/pkg/matchers"
	"github.com/arthur-debert/frece/pkg/scanner"
	"github.com/arthur-debert/frece/pkg/testutil"
	"github.com/arthur-debert/frece/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	result := &types.ScanResult{
		Root:        types.ResolvedPath{Path: "/src"},
		Directories: 2,
		Records: []types.FileRecord{
			{Name: "a.txt", RelPath: "a.txt", Extension: ".txt"},
			{Name: "Makefile", RelPath: "Makefile", Extension: types.NoExtension},
			{Name: "c.txt", RelPath: "sub/c.txt", Extension: ".txt"},
			{Name: "d.jpg", RelPath: "sub/deeper/d.jpg", Extension: ".jpg"},
		},
	}

	summary := Summarize(result)

	assert.Equal(t, "/src", summary.Root)
	assert.Equal(t, 4, summary.FileCount)
	assert.Equal(t, 2, summary.DirectoryCount)
	assert.Equal(t, map[string]int{".txt": 2, ".jpg": 1, types.NoExtension: 1}, summary.ExtensionCounts)
	require.Len(t, summary.Files, 4)
	assert.Equal(t, "Makefile", summary.Files[1].Name)
	assert.Equal(t, "sub/c.txt", summary.Files[2].RelPath)
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(&types.ScanResult{})
	assert.Equal(t, 0, summary.FileCount)
	assert.Empty(t, summary.ExtensionCounts)
	assert.NotNil(t, summary.Files)

	assert.Equal(t, 0, Summarize(nil).FileCount)
}

func TestCatalogIgnoresFilters(t *testing.T) {
	root := t.TempDir()
	testutil.WriteTree(t, root, map[string]string{
		"a.txt":       "1",
		"b.TXT":       "2",
		"c.jpg":       "3",
		"sub/README":  "4",
		"sub/x/y.jpg": "5",
	})

	txt, err := matchers.NewExtensionFilter("txt")
	require.NoError(t, err)

	summary, err := Catalog(context.Background(), scanner.New(nil), types.ResolvedPath{Path: root}, scanner.Options{Extension: txt})
	require.NoError(t, err)

	assert.Equal(t, 5, summary.FileCount)
	assert.Equal(t, 2, summary.DirectoryCount)
	assert.Equal(t, map[string]int{".txt": 2, ".jpg": 2, types.NoExtension: 1}, summary.ExtensionCounts)

	rels := map[string]string{}
	for _, f := range summary.Files {
		rels[filepath.ToSlash(f.RelPath)] = f.Extension
	}
	assert.Equal(t, ".txt", rels["b.TXT"])
	assert.Equal(t, types.NoExtension, rels["sub/README"])
}

func TestCatalogMissingRoot(t *testing.T) {
	_, err := Catalog(context.Background(), scanner.New(nil), types.ResolvedPath{Path: filepath.Join(t.TempDir(), "nope")}, scanner.Options{})
	assert.True(t, errors.IsErrorCode(err, errors.ErrDirectoryNotFound))
}

func TestSortedExtensions(t *testing.T) {
	got := SortedExtensions(map[string]int{".txt": 2, ".jpg": 2, ".md": 5, types.NoExtension: 1})
	assert.Equal(t, []types.ExtensionCount{
		{Extension: ".md", Count: 5},
		{Extension: ".jpg", Count: 2},
		{Extension: ".txt", Count: 2},
		{Extension: types.NoExtension, Count: 1},
	}, got)
}
