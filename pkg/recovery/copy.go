package recovery

import (
	"io"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/frece/pkg/errors"
	"github.com/arthur-debert/frece/pkg/internal/hashutil"
	"github.com/arthur-debert/frece/pkg/types"
	"github.com/rs/zerolog"
)

// tempPattern names the in-progress copy. It does not embed the target
// name, so any name the filesystem accepts can be recovered.
const tempPattern = ".frece-*.tmp"

// recoverOne copies a single record and reports what happened. It never
// panics on I/O failure and never touches another record's slot.
func (c *Copier) recoverOne(rec types.FileRecord, destRoot string, opts Options, claims *claims, logger zerolog.Logger) types.FileOutcome {
	out := types.FileOutcome{RelPath: rec.RelPath, Source: rec.Path}
	target := filepath.Join(destRoot, rec.RelPath)

	if c.readable != nil {
		if err := c.readable(rec.Path); err != nil {
			return c.fail(out, errors.FromOSError(err, rec.Path, errors.ErrPermissionDenied), logger)
		}
	}

	if !opts.DryRun {
		dir := filepath.Dir(target)
		if err := c.fs.MkdirAll(dir, 0755); err != nil {
			return c.fail(out, errors.FromOSError(err, dir, errors.ErrDirCreate), logger)
		}
	}

	final, skip := claims.resolve(target, opts.Policy)
	out.Destination = final
	if skip {
		out.Status = types.StatusSkipped
		logger.Debug().Str("file", rec.RelPath).Msg("Destination exists, skipping")
		return out
	}

	if opts.DryRun {
		out.Status = types.StatusPlanned
		out.Bytes = rec.Size
		return out
	}

	n, err := c.copyFile(rec.Path, final, rec.Mode, opts.Verify)
	if err != nil {
		return c.fail(out, err, logger)
	}

	if opts.PreserveTimes && !rec.ModTime.IsZero() {
		if err := c.fs.Chtimes(final, rec.ModTime, rec.ModTime); err != nil {
			logger.Debug().Err(err).Str("file", final).Msg("Cannot preserve modification time")
		}
	}

	out.Status = types.StatusCopied
	out.Bytes = n
	logger.Debug().Str("file", rec.RelPath).Str("to", final).Int64("bytes", n).Msg("Recovered file")
	return out
}

func (c *Copier) fail(out types.FileOutcome, err *errors.FreceError, logger zerolog.Logger) types.FileOutcome {
	out.Status = types.StatusFailed
	out.Err = err.Error()
	out.Code = err.Code
	logger.Warn().Str("file", out.Source).Str("code", string(out.Code)).Err(err).Msg("Failed to recover file")
	return out
}

// copyFile writes src to dst through a temporary file in dst's directory
// that is renamed into place once complete.
func (c *Copier) copyFile(src, dst string, mode fs.FileMode, verify bool) (int64, *errors.FreceError) {
	in, err := c.fs.Open(src)
	if err != nil {
		return 0, errors.FromOSError(err, src, errors.ErrCopyFailed)
	}
	defer func() {
		_ = in.Close()
	}()

	tmp, err := c.fs.CreateTemp(filepath.Dir(dst), tempPattern)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrCopyFailed, "cannot create temporary file for %s", dst).
			WithDetail("path", dst)
	}
	tmpName := tmp.Name()
	closed, renamed := false, false
	defer func() {
		if !closed {
			_ = tmp.Close()
		}
		if !renamed {
			_ = c.fs.Remove(tmpName)
		}
	}()

	var reader io.Reader = in
	hash := hashutil.New()
	if verify {
		reader = io.TeeReader(in, hash)
	}

	n, err := io.Copy(tmp, reader)
	if err != nil {
		return n, errors.Wrapf(err, errors.ClassifyOSError(err, errors.ErrCopyFailed), "copy %s", src).
			WithDetail("path", src)
	}
	if err := tmp.Sync(); err != nil {
		return n, errors.Wrapf(err, errors.ErrCopyFailed, "sync %s", dst).WithDetail("path", dst)
	}
	closed = true
	if err := tmp.Close(); err != nil {
		return n, errors.Wrapf(err, errors.ErrCopyFailed, "close %s", dst).WithDetail("path", dst)
	}

	if verify {
		want := hashutil.Format(hash.Sum(nil))
		got, err := hashutil.CalculateFileChecksum(c.fs, tmpName)
		if err != nil {
			return n, errors.Wrapf(err, errors.ErrVerifyFailed, "cannot re-read copy of %s", src).
				WithDetail("path", src)
		}
		if got != want {
			return n, errors.Newf(errors.ErrVerifyFailed, "checksum mismatch for %s", src).
				WithDetails(map[string]interface{}{"path": src, "expected": want, "actual": got})
		}
	}

	if mode != 0 {
		if err := c.fs.Chmod(tmpName, mode.Perm()); err != nil {
			return n, errors.Wrapf(err, errors.ErrCopyFailed, "chmod %s", dst).WithDetail("path", dst)
		}
	}

	if err := c.fs.Rename(tmpName, dst); err != nil {
		return n, errors.Wrapf(err, errors.ErrCopyFailed, "cannot move copy into place at %s", dst).
			WithDetail("path", dst)
	}
	renamed = true
	return n, nil
}
