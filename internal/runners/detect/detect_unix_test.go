//go:build !windows
// +build !windows

package detect

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ActiveState/pylink/internal/config"
	"github.com/ActiveState/pylink/internal/constants"
	"github.com/ActiveState/pylink/internal/locale"
	"github.com/ActiveState/pylink/internal/output"
	"github.com/ActiveState/pylink/internal/primer"
	"github.com/ActiveState/pylink/internal/testhelpers/outputhelper"
)

func fakePython(t *testing.T) string {
	exe := filepath.Join(t.TempDir(), "python")
	require.NoError(t, os.WriteFile(exe, []byte("#!/bin/sh\nprintf '3.11.4\\n/opt/python\\n'\n"), 0755))
	return exe
}

func TestDetect(t *testing.T) {
	exe := fakePython(t)
	cfg, err := config.NewCustom(t.TempDir())
	require.NoError(t, err)

	catcher := outputhelper.NewFormatCatcher(output.JSONFormatName)
	require.NoError(t, New(primer.New(catcher.Outputer, cfg)).Run(context.Background(), &Params{Python: exe}))

	var result Result
	require.NoError(t, json.Unmarshal([]byte(catcher.Output()), &result))
	assert.Equal(t, exe, result.Executable)
	assert.Equal(t, "3.11.4", result.Version)
	assert.Equal(t, "3.11", result.LinkVersion)
	assert.Equal(t, "/opt/python", result.Prefix)
	assert.NotEmpty(t, result.Platform)

	assert.Empty(t, cfg.Python, "config must not change without --save")
}

func TestDetectSave(t *testing.T) {
	exe := fakePython(t)
	dir := t.TempDir()
	cfg, err := config.NewCustom(dir)
	require.NoError(t, err)

	catcher := outputhelper.NewCatcher()
	require.NoError(t, New(primer.New(catcher.Outputer, cfg)).Run(context.Background(), &Params{Python: exe, Save: true}))

	reloaded, err := config.NewCustom(dir)
	require.NoError(t, err)
	assert.Equal(t, exe, reloaded.Python)
	assert.Equal(t, "3.11", reloaded.Version)
	assert.Equal(t, "/opt/python", reloaded.Prefix)
	assert.Contains(t, catcher.ErrorOutput(), "Saved to")
}

func TestDetectNotFound(t *testing.T) {
	cfg, err := config.NewCustom(t.TempDir())
	require.NoError(t, err)

	err = New(primer.New(outputhelper.NewCatcher().Outputer, cfg)).Run(context.Background(), &Params{Python: "pylink-no-such-python"})
	assert.Error(t, err)
}

func TestDetectAll(t *testing.T) {
	dir := t.TempDir()
	py39 := filepath.Join(dir, "python3.9")
	py312 := filepath.Join(dir, "python3.12")
	require.NoError(t, os.WriteFile(py39, []byte("#!/bin/sh\nprintf '3.9.18\\n/opt/py39\\n'\n"), 0755))
	require.NoError(t, os.WriteFile(py312, []byte("#!/bin/sh\nprintf '3.12.1\\n/opt/py312\\n'\n"), 0755))
	t.Setenv("PATH", dir)

	cfg, err := config.NewCustom(t.TempDir())
	require.NoError(t, err)

	catcher := outputhelper.NewCatcher()
	require.NoError(t, New(primer.New(catcher.Outputer, cfg)).Run(context.Background(), &Params{All: true}))
	assert.Equal(t,
		"3.12.1     "+py312+" (/opt/py312)\n3.9.18     "+py39+" (/opt/py39)",
		strings.TrimSpace(catcher.Output()))
}

func TestDetectAllNone(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	cfg, err := config.NewCustom(t.TempDir())
	require.NoError(t, err)

	err = New(primer.New(outputhelper.NewCatcher().Outputer, cfg)).Run(context.Background(), &Params{All: true})
	require.Error(t, err)
	assert.True(t, locale.IsInputError(err))
}

func TestDetectAllRejectsSave(t *testing.T) {
	cfg, err := config.NewCustom(t.TempDir())
	require.NoError(t, err)

	err = New(primer.New(outputhelper.NewCatcher().Outputer, cfg)).Run(context.Background(), &Params{All: true, Save: true})
	require.Error(t, err)
	assert.True(t, locale.IsInputError(err))
}

func TestDetectSaveKeepsEnvOverridesOut(t *testing.T) {
	exe := fakePython(t)
	dir := t.TempDir()
	t.Setenv(constants.PlatformEnvVarName, "cygwin")

	cfg, err := config.NewCustom(dir)
	require.NoError(t, err)
	require.Equal(t, "cygwin", cfg.Platform)

	require.NoError(t, New(primer.New(outputhelper.NewCatcher().Outputer, cfg)).Run(context.Background(), &Params{Python: exe, Save: true}))

	data, err := os.ReadFile(cfg.ConfigPath())
	require.NoError(t, err)
	assert.NotContains(t, string(data), "cygwin")
	assert.Contains(t, string(data), "prefix: /opt/python")
}
