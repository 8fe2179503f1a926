package runbits

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ActiveState/pylink/internal/config"
	"github.com/ActiveState/pylink/internal/interpreter"
	"github.com/ActiveState/pylink/internal/locale"
	"github.com/ActiveState/pylink/pkg/buildenv"
	"github.com/ActiveState/pylink/pkg/pylink"
	"github.com/ActiveState/pylink/pkg/sysinfo"
)

func stubDetector(t *testing.T, info *interpreter.Info, err error) *int {
	calls := 0
	orig := detector
	detector = func(ctx context.Context, candidates ...string) (*interpreter.Info, error) {
		calls++
		return info, err
	}
	t.Cleanup(func() { detector = orig })
	return &calls
}

func TestResolvePrecedence(t *testing.T) {
	detected := &interpreter.Info{Executable: "/usr/bin/python3", Version: "3.11.4", Prefix: "/usr"}

	tests := []struct {
		name       string
		cfg        config.Instance
		params     ResolveParams
		want       Resolution
		wantDetect bool
	}{
		{
			"flags win",
			config.Instance{Version: "3.9", Prefix: "/cfg", Platform: "cygwin"},
			ResolveParams{Platform: "win32", Version: "2.3.5", Prefix: "/flag"},
			Resolution{Platform: "win32", Interpreter: pylink.Interpreter{Version: "2.3", Prefix: "/flag"}},
			false,
		},
		{
			"config fills in",
			config.Instance{Version: "3.9.1", Prefix: "/cfg", Platform: "irix"},
			ResolveParams{},
			Resolution{Platform: "irix", Interpreter: pylink.Interpreter{Version: "3.9", Prefix: "/cfg"}},
			false,
		},
		{
			"detection fills in",
			config.Instance{Platform: "posix"},
			ResolveParams{},
			Resolution{Platform: "posix", Interpreter: pylink.Interpreter{Version: "3.11", Prefix: "/usr"}},
			true,
		},
		{
			"detection only fills missing values",
			config.Instance{Platform: "posix"},
			ResolveParams{Version: "2.7"},
			Resolution{Platform: "posix", Interpreter: pylink.Interpreter{Version: "2.7", Prefix: "/usr"}},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := stubDetector(t, detected, nil)
			cfg := tt.cfg
			res, err := Resolve(context.Background(), &cfg, tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *res)
			assert.Equal(t, tt.wantDetect, *calls > 0)
		})
	}
}

func TestResolveHostPlatform(t *testing.T) {
	sysinfo.SetGOOSOverride("windows")
	defer sysinfo.SetGOOSOverride("")

	res, err := Resolve(context.Background(), &config.Instance{}, ResolveParams{Version: "2.3", Prefix: "/usr"})
	require.NoError(t, err)
	assert.Equal(t, sysinfo.Win32, res.Platform)
}

func TestResolveDetectionFails(t *testing.T) {
	stubDetector(t, nil, interpreter.ErrNotFound)

	_, err := Resolve(context.Background(), &config.Instance{}, ResolveParams{Platform: "posix"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, interpreter.ErrNotFound))
	assert.NotEmpty(t, locale.ErrorTips(err))
}

func TestResolveInvalidVersion(t *testing.T) {
	_, err := Resolve(context.Background(), &config.Instance{}, ResolveParams{Platform: "posix", Version: "x", Prefix: "/usr"})
	require.Error(t, err)
	assert.True(t, locale.IsInputError(err))
}

func TestDetectInterpreterCandidates(t *testing.T) {
	var got []string
	var hasDeadline bool
	orig := detector
	detector = func(ctx context.Context, candidates ...string) (*interpreter.Info, error) {
		got = candidates
		_, hasDeadline = ctx.Deadline()
		return &interpreter.Info{Version: "3.11.4", Prefix: "/usr"}, nil
	}
	defer func() { detector = orig }()

	_, err := DetectInterpreter(context.Background(), &config.Instance{Python: "/opt/bin/python", ProbeTimeout: time.Second})
	require.NoError(t, err)
	assert.Equal(t, []string{"/opt/bin/python"}, got)
	assert.True(t, hasDeadline)

	_, err = DetectInterpreter(context.Background(), &config.Instance{})
	require.NoError(t, err)
	assert.Equal(t, []string{"python3", "python"}, got)
	assert.False(t, hasDeadline)
}

func TestEnvironment(t *testing.T) {
	res := &Resolution{Platform: "posix", Interpreter: pylink.Interpreter{Version: "2.3", Prefix: "/usr"}}

	env, err := Environment(res)
	require.NoError(t, err)
	assert.Equal(t, []string{"libpython2.3", "util"}, env.List(buildenv.KeyLibs))

	_, err = Environment(res, "qt")
	require.Error(t, err)
	assert.True(t, locale.IsInputError(err))
	assert.True(t, errors.Is(err, buildenv.ErrUnknownExtension))
}
