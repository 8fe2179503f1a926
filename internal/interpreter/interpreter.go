// Package interpreter finds a Python installation on the host and asks it for the facts the linkage resolver
// needs.
package interpreter

import (
	"context"
	"errors"
	"strings"

	"github.com/ActiveState/pylink/internal/errs"
	"github.com/ActiveState/pylink/internal/exeutils"
	"github.com/ActiveState/pylink/internal/locale"
	"github.com/ActiveState/pylink/internal/logging"
	"github.com/ActiveState/pylink/pkg/pylink"
)

// ErrNotFound is returned when none of the candidate executables exist
var ErrNotFound = errors.New("no python interpreter found")

// probeScript prints the version and the installation prefix on separate lines. It has to run on python 2 as well.
const probeScript = `import sys; sys.stdout.write(sys.version.split()[0] + "\n" + sys.prefix + "\n")`

// Info describes a detected interpreter
type Info struct {
	Executable string `json:"executable" locale:"interpreter_executable,Executable"`
	Version    string `json:"version" locale:"interpreter_version,Version"`
	Prefix     string `json:"prefix" locale:"interpreter_prefix,Prefix"`
}

// Interpreter converts the detected info into the resolver's input
func (i *Info) Interpreter() (*pylink.Interpreter, error) {
	return pylink.NewInterpreter(i.Version, i.Prefix)
}

// Detect probes the given candidates in order and returns the first that answers
func Detect(ctx context.Context, candidates ...string) (*Info, error) {
	var rerr error
	found := false
	for _, candidate := range candidates {
		exe := exeutils.Which(candidate)
		if exe == "" {
			continue
		}
		found = true

		info, err := Probe(ctx, exe)
		if err == nil {
			return info, nil
		}
		if ctx.Err() != nil {
			return nil, err
		}

		logging.Debug("Probing %s failed: %v", exe, err)
		if rerr == nil {
			rerr = err
		}
	}

	if !found {
		return nil, locale.WrapInputError(ErrNotFound, "err_interpreter_not_found",
			"Could not find a Python interpreter, tried: {{.V0}}.", strings.Join(candidates, ", "))
	}
	return nil, rerr
}

// Probe runs the given executable and reads its version and prefix
func Probe(ctx context.Context, exe string) (*Info, error) {
	stdout, stderr, err := exeutils.ExecSimpleContext(ctx, exe, "-c", probeScript)
	if err != nil {
		return nil, errs.Wrap(err, "Could not probe %s, stderr: %s", exe, strings.TrimSpace(stderr))
	}

	info, err := parseProbeOutput(stdout)
	if err != nil {
		return nil, errs.Wrap(err, "Unexpected output from %s", exe)
	}
	info.Executable = exe
	return info, nil
}

func parseProbeOutput(out string) (*Info, error) {
	lines := strings.Split(strings.TrimSpace(strings.ReplaceAll(out, "\r\n", "\n")), "\n")
	if len(lines) != 2 {
		return nil, errs.New("Expected 2 lines, got %d: %q", len(lines), out)
	}

	ver := strings.TrimSpace(lines[0])
	prefix := strings.TrimSpace(lines[1])
	if prefix == "" {
		return nil, errs.New("Empty prefix")
	}
	if _, err := pylink.MajorMinor(ver); err != nil {
		return nil, err
	}

	return &Info{Version: ver, Prefix: prefix}, nil
}
