package paths

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/frece/pkg/errors"
	"github.com/arthur-debert/frece/pkg/filesystem"
	"github.com/arthur-debert/frece/pkg/logging"
	"github.com/arthur-debert/frece/pkg/types"
	"github.com/rs/zerolog"
)

// DefaultRecoveryDirName is used when no directory name is configured.
const DefaultRecoveryDirName = "recovered_files"

// Options configures a Resolver. Zero values select the process defaults.
type Options struct {
	// Home overrides the directories the primary alias table is built from.
	Home *HomeDirs
	// InvokingHome overrides the fallback directories. When nil the fallback
	// is detected with InvokingUserHome.
	InvokingHome *HomeDirs
	// NoFallback disables the privilege fallback entirely.
	NoFallback bool
	// WorkingDir anchors relative paths; defaults to os.Getwd.
	WorkingDir string
	// DefaultDirName is the directory created on the Desktop when no
	// destination is given.
	DefaultDirName string
	FS             types.FS
}

type homeView struct {
	dirs    HomeDirs
	aliases AliasTable
}

// Resolver converts user input into absolute directory paths.
type Resolver struct {
	primary        homeView
	fallback       *homeView
	workDir        string
	defaultDirName string
	fs             types.FS
	logger         zerolog.Logger
}

// New builds a Resolver. The alias tables are computed once here.
func New(opts Options) (*Resolver, error) {
	logger := logging.GetLogger("paths")

	home := DefaultHomeDirs()
	if opts.Home != nil {
		home = *opts.Home
	}

	r := &Resolver{
		primary:        homeView{dirs: home, aliases: NewAliasTable(home)},
		workDir:        opts.WorkingDir,
		defaultDirName: opts.DefaultDirName,
		fs:             opts.FS,
		logger:         logger,
	}
	if r.fs == nil {
		r.fs = filesystem.NewOS()
	}
	if r.defaultDirName == "" {
		r.defaultDirName = DefaultRecoveryDirName
	}
	if r.workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "cannot determine working directory")
		}
		r.workDir = wd
	}

	if !opts.NoFallback {
		var fallback *HomeDirs
		if opts.InvokingHome != nil {
			fallback = opts.InvokingHome
		} else if h, ok := InvokingUserHome(); ok {
			dirs := HomeDirsFor(h)
			fallback = &dirs
		}
		if fallback != nil && fallback.Home != home.Home {
			r.fallback = &homeView{dirs: *fallback, aliases: NewAliasTable(*fallback)}
			logger.Debug().
				Str("home", home.Home).
				Str("invoking_home", fallback.Home).
				Msg("Privilege fallback enabled")
		}
	}

	return r, nil
}

// Aliases returns the primary alias table.
func (r *Resolver) Aliases() []types.Alias {
	return r.primary.aliases.Entries()
}

// HasFallback reports whether a second home is tried on failure.
func (r *Resolver) HasFallback() bool {
	return r.fallback != nil
}

// Resolve turns input into an existing directory.
func (r *Resolver) Resolve(input string) (types.ResolvedPath, error) {
	rp, err := r.resolveIn(r.primary, input)
	if err != nil {
		return types.ResolvedPath{}, err
	}

	firstErr := r.checkDir(rp.Path)
	if firstErr == nil {
		r.logger.Debug().Str("input", input).Str("path", rp.Path).Msg("Resolved path")
		return rp, nil
	}
	if r.fallback == nil {
		return types.ResolvedPath{}, firstErr
	}

	fp, err := r.resolveIn(*r.fallback, input)
	if err != nil || fp.Path == rp.Path {
		return types.ResolvedPath{}, firstErr
	}
	if fallbackErr := r.checkDir(fp.Path); fallbackErr != nil {
		return types.ResolvedPath{}, firstErr.WithDetail("fallback_path", fp.Path)
	}

	fp.UsedFallback = true
	r.logger.Info().
		Str("input", input).
		Str("tried", rp.Path).
		Str("path", fp.Path).
		Msg("Using invoking user's directory")
	return fp, nil
}

// ResolveDestination resolves input without requiring it to exist. An alias
// prefers the invoking user's directory when only that one exists.
func (r *Resolver) ResolveDestination(input string) (types.ResolvedPath, error) {
	rp, err := r.resolveIn(r.primary, input)
	if err != nil {
		return types.ResolvedPath{}, err
	}
	if !rp.FromAlias || r.fallback == nil || r.exists(rp.Path) {
		return rp, nil
	}

	fp, err := r.resolveIn(*r.fallback, input)
	if err == nil && r.exists(fp.Path) {
		fp.UsedFallback = true
		r.logger.Info().Str("input", input).Str("path", fp.Path).Msg("Using invoking user's directory")
		return fp, nil
	}
	return rp, nil
}

// DefaultRecoveryDir is the destination used when none is supplied:
// the configured directory name on the Desktop.
func (r *Resolver) DefaultRecoveryDir() types.ResolvedPath {
	view := r.primary
	if r.fallback != nil && !r.exists(r.primary.dirs.Desktop) && r.exists(r.fallback.dirs.Desktop) {
		view = *r.fallback
	}
	return types.ResolvedPath{
		Path:         filepath.Clean(filepath.Join(view.dirs.Desktop, r.defaultDirName)),
		UsedFallback: view.dirs.Home != r.primary.dirs.Home,
	}
}

func (r *Resolver) resolveIn(view homeView, input string) (types.ResolvedPath, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return types.ResolvedPath{}, errors.New(errors.ErrInvalidInput, "path must not be empty")
	}

	if target, ok := view.aliases.Lookup(trimmed); ok {
		return types.ResolvedPath{
			Path:      filepath.Clean(target),
			FromAlias: true,
			Alias:     strings.ToLower(trimmed),
		}, nil
	}

	expanded, err := expandHome(trimmed, view.dirs.Home)
	if err != nil {
		return types.ResolvedPath{}, err
	}
	if !filepath.IsAbs(expanded) {
		expanded = filepath.Join(r.workDir, expanded)
	}
	return types.ResolvedPath{Path: filepath.Clean(expanded)}, nil
}

// checkDir returns nil when path is an accessible directory.
func (r *Resolver) checkDir(path string) *errors.FreceError {
	info, err := r.fs.Stat(path)
	if err != nil {
		if errors.ClassifyOSError(err, errors.ErrDirectoryNotFound) == errors.ErrPermissionDenied {
			return errors.Wrapf(err, errors.ErrPermissionDenied, "permission denied: %s", path).
				WithDetail("path", path)
		}
		return errors.Newf(errors.ErrDirectoryNotFound, "directory not found: %s", path).
			WithDetail("path", path)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrDirectoryNotFound, "not a directory: %s", path).
			WithDetail("path", path)
	}
	return nil
}

func (r *Resolver) exists(path string) bool {
	info, err := r.fs.Stat(path)
	return err == nil && info.IsDir()
}

// expandHome expands "~", "~/..." against home and "~user/..." against that
// user's home directory.
func expandHome(path, home string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}

	rest := path[1:]
	name := rest
	tail := ""
	if i := strings.IndexAny(rest, `/`+string(filepath.Separator)); i >= 0 {
		name, tail = rest[:i], rest[i+1:]
	}

	if name == "" {
		if home == "" {
			return "", errors.New(errors.ErrInvalidInput, "cannot expand ~: home directory unknown")
		}
		return filepath.Join(home, tail), nil
	}

	u, err := user.Lookup(name)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "cannot expand ~%s: unknown user", name).
			WithDetail("user", name)
	}
	return filepath.Join(u.HomeDir, tail), nil
}
