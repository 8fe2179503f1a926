package fileutils

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/ActiveState/pylink/internal/constants"
	"github.com/ActiveState/pylink/internal/errs"
	"github.com/ActiveState/pylink/internal/logging"
	"github.com/ActiveState/pylink/internal/rtutils"
)

// FileMode is the mode used for created files
const FileMode = 0644

// DirMode is the mode used for created dirs
const DirMode = os.ModePerm

// LockSuffix is appended to a file path to derive the path of its lock file
const LockSuffix = ".lock"

// FileExists checks if the given file (not folder) exists
func FileExists(path string) bool {
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}

	mode := fi.Mode()
	return mode.IsRegular()
}

// DirExists checks if the given directory exists
func DirExists(path string) bool {
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}

	mode := fi.Mode()
	return mode.IsDir()
}

// MkdirUnlessExists will make the directory structure if it doesn't already exists
func MkdirUnlessExists(path string) error {
	if DirExists(path) {
		return nil
	}
	if err := os.MkdirAll(path, DirMode); err != nil {
		return errs.Wrap(err, "Could not create directory %s", path)
	}
	return nil
}

// ReadFile reads the content of a file
func ReadFile(filePath string) ([]byte, error) {
	b, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errs.Wrap(err, "os.ReadFile %s failed", filePath)
	}
	return b, nil
}

// WriteFile writes data to a file, if it exists it is overwritten, if it doesn't exist it is created and data is written.
// The data is first written to a sibling temp file which is then renamed over the target.
func WriteFile(filePath string, data []byte) (rerr error) {
	if err := MkdirUnlessExists(filepath.Dir(filePath)); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(filePath), filepath.Base(filePath)+".*.tmp")
	if err != nil {
		return errs.Wrap(err, "Could not create temp file next to %s", filePath)
	}
	defer func() {
		if rerr != nil {
			os.Remove(tmp.Name())
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errs.Wrap(err, "Could not write to %s", tmp.Name())
	}
	if err := tmp.Close(); err != nil {
		return errs.Wrap(err, "Could not close %s", tmp.Name())
	}
	if err := os.Chmod(tmp.Name(), FileMode); err != nil {
		return errs.Wrap(err, "Could not set permissions on %s", tmp.Name())
	}
	if err := os.Rename(tmp.Name(), filePath); err != nil {
		return errs.Wrap(err, "Could not move %s to %s", tmp.Name(), filePath)
	}
	return nil
}

// WithLock runs f while holding an exclusive lock on the given path. The lock lives in a sibling file so the
// target itself can be replaced while locked. Blocks until the lock is acquired or ctx is done.
func WithLock(ctx context.Context, path string, f func() error) (rerr error) {
	if err := MkdirUnlessExists(filepath.Dir(path)); err != nil {
		return err
	}

	lockPath := path + LockSuffix
	lock := flock.New(lockPath)
	locked, err := lock.TryLockContext(ctx, constants.LockRetryDelay)
	if err != nil && ctx.Err() != nil {
		return errs.WrapUserFacing(err,
			fmt.Sprintf("%s is locked by another process.", path),
			errs.SetTips(fmt.Sprintf("Wait for the other process to finish, or remove %s if no other process is running.", lockPath)))
	}
	if err != nil {
		return errs.Wrap(err, "Could not acquire lock on %s", lockPath)
	}
	if !locked {
		return errs.New("Could not acquire lock on %s", lockPath)
	}
	logging.Debug("Acquired lock on %s", lockPath)
	defer rtutils.Closer(lock.Unlock, &rerr)

	return f()
}
