package recovery

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/frece/pkg/errors"
	"github.com/gofrs/flock"
)

// DefaultLockDir is where destination locks live.
func DefaultLockDir() string {
	return filepath.Join(xdg.StateHome, "frece", "locks")
}

// destLock is an exclusive advisory lock on one destination directory.
type destLock struct {
	flock *flock.Flock
	path  string
}

// lockPath maps a destination to its lock file name.
func lockPath(lockDir, dest string) string {
	sum := sha256.Sum256([]byte(filepath.Clean(dest)))
	return filepath.Join(lockDir, fmt.Sprintf("%x.lock", sum[:8]))
}

// acquireLock takes the lock for dest without blocking.
func acquireLock(lockDir, dest string) (*destLock, error) {
	if err := os.MkdirAll(lockDir, 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirCreate, "failed to create lock directory %s", lockDir)
	}

	path := lockPath(lockDir, dest)
	fl := flock.New(path)
	acquired, err := fl.TryLock()
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrLocked, "failed to try lock on %s", path).
			WithDetail("destination", dest)
	}
	if !acquired {
		return nil, errors.Newf(errors.ErrLocked, "another recovery into %s is in progress", dest).
			WithDetail("destination", dest).
			WithDetail("lock", path)
	}
	return &destLock{flock: fl, path: path}, nil
}

// Unlock releases the lock.
func (l *destLock) Unlock() error {
	if err := l.flock.Unlock(); err != nil {
		return fmt.Errorf("failed to release lock on %s: %w", l.path, err)
	}
	return nil
}
