// Package catalog aggregates scan results into extension counts and a file
// listing.
package catalog

import (
	"context"
	"sort"

	"github.com/arthur-debert/frece/pkg/logging"
	"github.com/arthur-debert/frece/pkg/matchers"
	"github.com/arthur-debert/frece/pkg/scanner"
	"github.com/arthur-debert/frece/pkg/types"
)

// Summarize aggregates result without touching the filesystem. Files keep
// traversal order.
func Summarize(result *types.ScanResult) types.CatalogSummary {
	summary := types.CatalogSummary{
		ExtensionCounts: make(map[string]int),
		Files:           []types.CatalogEntry{},
	}
	if result == nil {
		return summary
	}

	summary.Root = result.Root.Path
	summary.DirectoryCount = result.Directories
	summary.FileCount = len(result.Records)
	summary.Warnings = result.Warnings
	summary.Files = make([]types.CatalogEntry, 0, len(result.Records))

	for _, rec := range result.Records {
		ext := rec.Extension
		if ext == "" {
			ext = types.NoExtension
		}
		summary.ExtensionCounts[ext]++
		summary.Files = append(summary.Files, types.CatalogEntry{
			Name:      rec.Name,
			RelPath:   rec.RelPath,
			Extension: ext,
		})
	}
	return summary
}

// Catalog performs a fresh unfiltered scan of root and summarizes it.
func Catalog(ctx context.Context, s *scanner.Scanner, root types.ResolvedPath, opts scanner.Options) (types.CatalogSummary, error) {
	logger := logging.GetLogger("catalog")

	// A catalog always covers every file.
	opts.Extension = matchers.ExtensionFilter{}
	opts.Name = matchers.NameFilter{}

	result, err := s.Scan(ctx, root, opts)
	if err != nil {
		return types.CatalogSummary{}, err
	}

	summary := Summarize(result)
	logger.Debug().
		Str("root", summary.Root).
		Int("files", summary.FileCount).
		Int("extensions", len(summary.ExtensionCounts)).
		Msg("Catalog built")
	return summary, nil
}

// SortedExtensions returns the counts ordered by descending count, then by
// extension name.
func SortedExtensions(counts map[string]int) []types.ExtensionCount {
	out := make([]types.ExtensionCount, 0, len(counts))
	for ext, n := range counts {
		out = append(out, types.ExtensionCount{Extension: ext, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Extension < out[j].Extension
	})
	return out
}
