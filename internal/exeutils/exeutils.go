package exeutils

import (
	"bytes"
	"context"
	"os/exec"

	"github.com/ActiveState/pylink/internal/errs"
	"github.com/ActiveState/pylink/internal/logging"
)

// ExecSimple runs the given executable and returns its stdout and stderr
func ExecSimple(bin string, args ...string) (string, string, error) {
	return ExecSimpleContext(context.Background(), bin, args...)
}

// ExecSimpleContext is like ExecSimple but kills the process when the context is done
func ExecSimpleContext(ctx context.Context, bin string, args ...string) (string, string, error) {
	logging.Debug("Executing command: %s, %v", bin, args)

	c := exec.CommandContext(ctx, bin, args...)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	if err := c.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return stdout.String(), stderr.String(), errs.Wrap(ctxErr, "Exec of %s interrupted", bin)
		}
		return stdout.String(), stderr.String(), errs.Wrap(err, "Exec failed")
	}

	return stdout.String(), stderr.String(), nil
}

// Which returns the full path of the given executable as found on PATH, or an empty string
func Which(bin string) string {
	p, err := exec.LookPath(bin)
	if err != nil {
		logging.Debug("Could not find %s on PATH: %v", bin, err)
		return ""
	}
	return p
}
