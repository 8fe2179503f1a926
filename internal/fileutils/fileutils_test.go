package fileutils

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofrs/flock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ActiveState/pylink/internal/errs"
)

func TestExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), FileMode))

	assert.True(t, DirExists(dir))
	assert.False(t, DirExists(file))
	assert.True(t, FileExists(file))
	assert.False(t, FileExists(dir))
	assert.False(t, FileExists(filepath.Join(dir, "missing")))
}

func TestWriteFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "env.yaml")

	require.NoError(t, WriteFile(target, []byte("first")))
	b, err := ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "first", string(b))

	require.NoError(t, WriteFile(target, []byte("second")))
	b, err = ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "second", string(b))

	entries, err := os.ReadDir(filepath.Dir(target))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files should not be left behind")
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestWithLock(t *testing.T) {
	target := filepath.Join(t.TempDir(), "env.yaml")

	called := false
	err := WithLock(context.Background(), target, func() error {
		called = true
		assert.True(t, FileExists(target+LockSuffix))
		return nil
	})
	require.NoError(t, err)
	assert.True(t, called)

	wantErr := errors.New("inner")
	err = WithLock(context.Background(), target, func() error { return wantErr })
	assert.Equal(t, wantErr, err)
}

func TestWithLockTimesOut(t *testing.T) {
	target := filepath.Join(t.TempDir(), "env.yaml")

	held := flock.New(target + LockSuffix)
	require.NoError(t, held.Lock())
	defer held.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	err := WithLock(ctx, target, func() error {
		t.Fatal("should not run while the lock is held")
		return nil
	})
	require.Error(t, err)
	assert.True(t, errs.IsUserFacing(err))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}
