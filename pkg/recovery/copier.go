package recovery

import (
	"context"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/arthur-debert/frece/pkg/errors"
	"github.com/arthur-debert/frece/pkg/filesystem"
	"github.com/arthur-debert/frece/pkg/logging"
	"github.com/arthur-debert/frece/pkg/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Options controls one recovery run.
type Options struct {
	Policy        types.CollisionPolicy
	Workers       int
	Verify        bool
	DryRun        bool
	PreserveTimes bool
}

// Copier copies scan results into destination trees.
type Copier struct {
	fs       types.FS
	logger   zerolog.Logger
	lockDir  string
	readable func(path string) error
}

// Option configures a Copier.
type Option func(*Copier)

// WithLockDir stores destination locks in dir. An empty dir disables locking.
func WithLockDir(dir string) Option {
	return func(c *Copier) {
		c.lockDir = dir
	}
}

// WithReadableCheck replaces the pre-copy readability check. nil disables it.
func WithReadableCheck(fn func(path string) error) Option {
	return func(c *Copier) {
		c.readable = fn
	}
}

// New creates a Copier. A nil fsys uses the OS filesystem.
func New(fsys types.FS, opts ...Option) *Copier {
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	c := &Copier{
		fs:       fsys,
		logger:   logging.GetLogger("recovery"),
		lockDir:  DefaultLockDir(),
		readable: checkReadable,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Recover copies every record of result to dest/RelPath. The returned error
// is reserved for problems with the run as a whole (bad input, destination
// cannot be created, destination locked); individual file failures are
// recorded in the outcome. On cancellation the files not yet started are
// left out and Cancelled is set.
func (c *Copier) Recover(ctx context.Context, result *types.ScanResult, dest types.ResolvedPath, opts Options) (*types.RecoveryOutcome, error) {
	if result == nil {
		return nil, errors.New(errors.ErrInvalidInput, "nothing to recover: no scan result")
	}
	if !filepath.IsAbs(dest.Path) {
		return nil, errors.Newf(errors.ErrInvalidInput, "destination must be an absolute path: %q", dest.Path)
	}
	policy, err := types.ParseCollisionPolicy(string(opts.Policy))
	if err != nil {
		return nil, err
	}
	opts.Policy = policy
	if opts.Workers < 1 {
		opts.Workers = 1
	}

	logger := c.logger.With().
		Str("source", result.Root.Path).
		Str("destination", dest.Path).
		Logger()
	done := logging.LogOperationStart(logger, "recover")
	defer done()

	outcome := &types.RecoveryOutcome{
		RunID:       uuid.NewString(),
		Source:      result.Root.Path,
		Destination: dest.Path,
		Policy:      opts.Policy,
		DryRun:      opts.DryRun,
		StartedAt:   time.Now(),
	}

	if !opts.DryRun {
		if err := c.fs.MkdirAll(dest.Path, 0755); err != nil {
			return nil, errors.Wrapf(err, errors.ErrDirCreate, "cannot create destination %s", dest.Path).
				WithDetail("path", dest.Path)
		}
		if c.lockDir != "" {
			lock, err := acquireLock(c.lockDir, dest.Path)
			if err != nil {
				return nil, err
			}
			defer func() {
				if err := lock.Unlock(); err != nil {
					logger.Warn().Err(err).Msg("Failed to release destination lock")
				}
			}()
		}
	}

	logger.Info().
		Str("run", outcome.RunID).
		Int("files", len(result.Records)).
		Str("policy", string(opts.Policy)).
		Int("workers", opts.Workers).
		Bool("dry_run", opts.DryRun).
		Msg("Starting recovery")

	slots := make([]types.FileOutcome, len(result.Records))
	claims := newClaims(c.fs)

	g := new(errgroup.Group)
	g.SetLimit(opts.Workers)
	for i, rec := range result.Records {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			// Cancellation is honoured between files, never mid-file.
			if ctx.Err() != nil {
				return nil
			}
			slots[i] = c.recoverOne(rec, dest.Path, opts, claims, logger)
			return nil
		})
	}
	_ = g.Wait()

	outcome.Files = make([]types.FileOutcome, 0, len(slots))
	for _, slot := range slots {
		if slot.Status != "" {
			outcome.Files = append(outcome.Files, slot)
		}
	}
	outcome.Cancelled = len(outcome.Files) < len(slots) && ctx.Err() != nil
	outcome.Tally()
	outcome.Duration = time.Since(outcome.StartedAt)

	event := logger.Info()
	if outcome.Failed > 0 || outcome.Cancelled {
		event = logger.Warn()
	}
	event.
		Str("run", outcome.RunID).
		Int("attempted", outcome.Attempted).
		Int("succeeded", outcome.Succeeded).
		Int("skipped", outcome.Skipped).
		Int("failed", outcome.Failed).
		Bool("cancelled", outcome.Cancelled).
		Msg("Recovery finished")

	return outcome, nil
}

// claims tracks destination names chosen during one run so that concurrent
// renames never pick the same numbered name.
type claims struct {
	fs    types.FS
	mu    sync.Mutex
	taken map[string]struct{}
}

func newClaims(fsys types.FS) *claims {
	return &claims{fs: fsys, taken: make(map[string]struct{})}
}

// resolve picks the final destination for target under policy. skip is
// true when the record must not be copied.
func (c *claims) resolve(target string, policy types.CollisionPolicy) (final string, skip bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.occupied(target) {
		c.taken[target] = struct{}{}
		return target, false
	}

	switch policy {
	case types.CollisionSkip:
		return target, true
	case types.CollisionRename:
		for n := 1; ; n++ {
			candidate := numberedName(target, n)
			if !c.occupied(candidate) {
				c.taken[candidate] = struct{}{}
				return candidate, false
			}
		}
	default:
		c.taken[target] = struct{}{}
		return target, false
	}
}

func (c *claims) occupied(path string) bool {
	if _, ok := c.taken[path]; ok {
		return true
	}
	_, err := c.fs.Lstat(path)
	return err == nil
}

// numberedName turns "dir/name.ext" into "dir/name (n).ext".
func numberedName(path string, n int) string {
	dir, base := filepath.Split(path)
	ext := filepath.Ext(base)
	stem := base[:len(base)-len(ext)]
	if stem == "" {
		// ".bashrc" has no stem to number
		stem, ext = base, ""
	}
	return filepath.Join(dir, stem+" ("+strconv.Itoa(n)+")"+ext)
}
