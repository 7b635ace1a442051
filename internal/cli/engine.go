package cli

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/frece/pkg/catalog"
	"github.com/arthur-debert/frece/pkg/errors"
	"github.com/arthur-debert/frece/pkg/logging"
	"github.com/arthur-debert/frece/pkg/matchers"
	"github.com/arthur-debert/frece/pkg/recovery"
	"github.com/arthur-debert/frece/pkg/scanner"
	"github.com/arthur-debert/frece/pkg/types"
)

func (a *app) scanOptions() scanner.Options {
	return scanner.Options{
		ExcludeDirs: a.cfg.Scan.ExcludeDirs,
		SkipHidden:  a.cfg.Scan.SkipHidden,
	}
}

// scanByExtension resolves path and lists its files, filtered by ext when set.
func (a *app) scanByExtension(ctx context.Context, path, ext string) (*types.ScanResult, error) {
	filter, err := matchers.NewExtensionFilter(ext)
	if err != nil {
		return nil, err
	}
	root, err := a.resolver.Resolve(path)
	if err != nil {
		return nil, err
	}

	opts := a.scanOptions()
	opts.Extension = filter
	return a.scanner.Scan(ctx, root, opts)
}

// findByName resolves path and lists the files named exactly name.
func (a *app) findByName(ctx context.Context, path, name string) (*types.ScanResult, error) {
	if name == "" {
		return nil, errors.New(errors.ErrInvalidInput, "a file name is required")
	}
	filter, err := matchers.NewNameFilter(name)
	if err != nil {
		return nil, err
	}
	root, err := a.resolver.Resolve(path)
	if err != nil {
		return nil, err
	}

	opts := a.scanOptions()
	opts.Name = filter
	return a.scanner.Scan(ctx, root, opts)
}

// catalogDir resolves path and summarizes everything below it.
func (a *app) catalogDir(ctx context.Context, path string) (types.CatalogSummary, error) {
	root, err := a.resolver.Resolve(path)
	if err != nil {
		return types.CatalogSummary{}, err
	}
	return catalog.Catalog(ctx, a.scanner, root, a.scanOptions())
}

// recoverRequest is one recover invocation after flag and config merging.
type recoverRequest struct {
	Source      string
	Destination string
	Extension   string
	Name        string
	Options     recovery.Options
}

// recoverOptions returns the configured recovery defaults.
func (a *app) recoverOptions() recovery.Options {
	return recovery.Options{
		Policy:        a.cfg.CollisionPolicy(),
		Workers:       a.cfg.Recovery.Workers,
		Verify:        a.cfg.Recovery.Verify,
		PreserveTimes: a.cfg.Recovery.PreserveTimes,
	}
}

// recoverFiles resolves both ends, scans the source and copies the result.
// Per-file failures are data in the outcome, not an error.
func (a *app) recoverFiles(ctx context.Context, req recoverRequest) (*types.RecoveryOutcome, error) {
	logger := logging.GetLogger("cli")
	done := logging.LogOperationStart(logger, "recover")
	defer done()

	ext, err := matchers.NewExtensionFilter(req.Extension)
	if err != nil {
		return nil, err
	}
	name, err := matchers.NewNameFilter(req.Name)
	if err != nil {
		return nil, err
	}

	src, err := a.resolver.Resolve(req.Source)
	if err != nil {
		return nil, err
	}

	var dest types.ResolvedPath
	if strings.TrimSpace(req.Destination) == "" {
		dest = a.resolver.DefaultRecoveryDir()
	} else if dest, err = a.resolver.ResolveDestination(req.Destination); err != nil {
		return nil, err
	}
	if dest.Path == src.Path {
		return nil, errors.Newf(errors.ErrInvalidInput, "destination %s is the source directory", dest.Path)
	}

	opts := a.scanOptions()
	opts.Extension = ext
	opts.Name = name
	if isWithin(dest.Path, src.Path) {
		// Do not copy earlier recoveries back into themselves.
		opts.ExcludePaths = append(opts.ExcludePaths, dest.Path)
	}

	result, err := a.scanner.Scan(ctx, src, opts)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("source", src.Path).
		Str("destination", dest.Path).
		Int("files", result.Count()).
		Msg("Recovering files")
	return a.copier.Recover(ctx, result, dest, req.Options)
}

func isWithin(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != "." && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
