package scanner

import (
	"context"
	"path/filepath"

	"github.com/arthur-debert/frece/pkg/errors"
	"github.com/arthur-debert/frece/pkg/filesystem"
	"github.com/arthur-debert/frece/pkg/logging"
	"github.com/arthur-debert/frece/pkg/matchers"
	"github.com/arthur-debert/frece/pkg/types"
	"github.com/rs/zerolog"
)

// DefaultBatchSize is the number of directory entries read per call.
const DefaultBatchSize = 128

// Options selects which files a walk yields and which directories it enters.
type Options struct {
	Extension matchers.ExtensionFilter
	Name      matchers.NameFilter
	// ExcludeDirs are directory base names never entered.
	ExcludeDirs []string
	// ExcludePaths are absolute directories never entered.
	ExcludePaths []string
	// SkipHidden drops files and directories whose name starts with a dot.
	SkipHidden bool
	BatchSize  int
}

// Scanner walks directory trees through a types.FS.
type Scanner struct {
	fs     types.FS
	logger zerolog.Logger
}

// New creates a scanner. A nil fsys uses the OS filesystem.
func New(fsys types.FS) *Scanner {
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	return &Scanner{fs: fsys, logger: logging.GetLogger("scanner")}
}

// Walk starts a fresh traversal of root. Failure to access root is fatal;
// everything below it is reported through Iterator.Warnings.
func (s *Scanner) Walk(ctx context.Context, root types.ResolvedPath, opts Options) (*Iterator, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := s.fs.Stat(root.Path)
	if err != nil {
		return nil, rootError(err, root.Path)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrDirectoryNotFound, "not a directory: %s", root.Path).
			WithDetail("path", root.Path)
	}

	dir, err := s.fs.OpenDir(root.Path)
	if err != nil {
		return nil, rootError(err, root.Path)
	}

	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultBatchSize
	}

	it := &Iterator{
		ctx:          ctx,
		fs:           s.fs,
		opts:         opts,
		selection:    matchers.Selection{Extension: opts.Extension, Name: opts.Name},
		excludeNames: make(map[string]struct{}, len(opts.ExcludeDirs)),
		excludePaths: make(map[string]struct{}, len(opts.ExcludePaths)),
		logger:       s.logger.With().Str("root", root.Path).Logger(),
	}
	for _, name := range opts.ExcludeDirs {
		it.excludeNames[name] = struct{}{}
	}
	for _, p := range opts.ExcludePaths {
		it.excludePaths[filepath.Clean(p)] = struct{}{}
	}
	it.stack = append(it.stack, &frame{dir: dir, path: root.Path})

	it.logger.Debug().
		Str("extension", opts.Extension.Extension()).
		Str("name", opts.Name.Name()).
		Msg("Starting walk")
	return it, nil
}

// Scan walks root to completion and returns every matching record in
// traversal order. On cancellation it returns ctx.Err().
func (s *Scanner) Scan(ctx context.Context, root types.ResolvedPath, opts Options) (*types.ScanResult, error) {
	done := logging.LogOperationStart(s.logger, "scan")
	defer done()

	it, err := s.Walk(ctx, root, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = it.Close()
	}()

	result := &types.ScanResult{
		Root:    root,
		Filter:  opts.Extension,
		Name:    opts.Name,
		Records: []types.FileRecord{},
	}
	for {
		rec, ok := it.Next()
		if !ok {
			break
		}
		result.Records = append(result.Records, rec)
	}
	if err := it.Err(); err != nil {
		return nil, err
	}

	result.Directories = it.Directories()
	result.Warnings = it.Warnings()

	s.logger.Info().
		Str("root", root.Path).
		Int("files", len(result.Records)).
		Int("directories", result.Directories).
		Int("warnings", len(result.Warnings)).
		Msg("Scan complete")
	return result, nil
}

func rootError(err error, path string) error {
	if errors.ClassifyOSError(err, errors.ErrDirectoryNotFound) == errors.ErrPermissionDenied {
		return errors.Wrapf(err, errors.ErrPermissionDenied, "permission denied: %s", path).
			WithDetail("path", path)
	}
	return errors.Wrapf(err, errors.ErrDirectoryNotFound, "directory not found: %s", path).
		WithDetail("path", path)
}
