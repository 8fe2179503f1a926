//go:build !windows
// +build !windows

package interpreter

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ActiveState/pylink/internal/locale"
)

func fakePython(t *testing.T, body string) string {
	exe := filepath.Join(t.TempDir(), "python")
	require.NoError(t, os.WriteFile(exe, []byte("#!/bin/sh\n"+body+"\n"), 0755))
	return exe
}

func TestDetect(t *testing.T) {
	exe := fakePython(t, `printf '3.11.4\n/opt/python\n'`)

	info, err := Detect(context.Background(), "pylink-no-such-python", exe)
	require.NoError(t, err)
	assert.Equal(t, &Info{Executable: exe, Version: "3.11.4", Prefix: "/opt/python"}, info)
}

func TestDetectSkipsBrokenCandidates(t *testing.T) {
	broken := fakePython(t, `echo boom 1>&2; exit 1`)
	working := fakePython(t, `printf '2.3.5\n/usr\n'`)

	info, err := Detect(context.Background(), broken, working)
	require.NoError(t, err)
	assert.Equal(t, working, info.Executable)
	assert.Equal(t, "2.3.5", info.Version)
}

func TestDetectDistributionBuild(t *testing.T) {
	exe := fakePython(t, `printf '2.7.15+\n/usr\n'`)

	info, err := Detect(context.Background(), exe)
	require.NoError(t, err)
	assert.Equal(t, "2.7.15+", info.Version)

	i, err := info.Interpreter()
	require.NoError(t, err)
	assert.Equal(t, "2.7", i.Version)
}

func TestDetectAllBroken(t *testing.T) {
	broken := fakePython(t, `echo nonsense`)

	_, err := Detect(context.Background(), broken)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestDetectNotFound(t *testing.T) {
	_, err := Detect(context.Background(), "pylink-no-such-python")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, locale.IsInputError(err))
}

func TestDetectHonorsContext(t *testing.T) {
	slow := fakePython(t, `exec sleep 5`)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := Detect(ctx, slow)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}
