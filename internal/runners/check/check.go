package check

import (
	"context"
	"fmt"
	"strings"

	"github.com/ActiveState/pylink/internal/config"
	"github.com/ActiveState/pylink/internal/errs"
	"github.com/ActiveState/pylink/internal/fileutils"
	"github.com/ActiveState/pylink/internal/locale"
	"github.com/ActiveState/pylink/internal/output"
	"github.com/ActiveState/pylink/internal/primer"
	"github.com/ActiveState/pylink/internal/runbits"
	"github.com/ActiveState/pylink/pkg/buildenv"
)

type primeable interface {
	primer.Outputer
	primer.Configurer
}

type Params struct {
	runbits.ResolveParams
}

// PathResult is the outcome of verifying a single resolved path
type PathResult struct {
	Key    string `json:"key"`
	Path   string `json:"path"`
	Exists bool   `json:"exists"`
}

type results []PathResult

func (r results) MarshalOutput(f output.Format) interface{} {
	if f == output.JSONFormatName {
		return []PathResult(r)
	}

	lines := make([]string, 0, len(r))
	for _, res := range r {
		status := locale.Tl("check_ok", "ok")
		if !res.Exists {
			status = locale.Tl("check_missing", "missing")
		}
		lines = append(lines, fmt.Sprintf("%-8s %-8s %s", res.Key, status, res.Path))
	}
	return strings.Join(lines, "\n")
}

type Check struct {
	out output.Outputer
	cfg *config.Instance
}

func New(p primeable) *Check {
	return &Check{
		out: p.Output(),
		cfg: p.Config(),
	}
}

// Run resolves the linkage for the target and verifies that the include and library directories exist
func (c *Check) Run(ctx context.Context, params *Params) error {
	res, err := runbits.Resolve(ctx, c.cfg, params.ResolveParams)
	if err != nil {
		return err
	}

	env, err := runbits.Environment(res)
	if err != nil {
		return err
	}

	checked := Verify(env)
	if len(checked) == 0 {
		c.out.Notice(locale.Tl("check_nothing", "Nothing to verify for platform {{.V0}}.", res.Platform))
		c.out.Print(checked)
		return nil
	}

	c.out.Print(checked)

	missing := 0
	for _, r := range checked {
		if !r.Exists {
			missing++
		}
	}
	if missing == 0 {
		return nil
	}

	missingErr := locale.NewError("err_check_missing", "{{.V0}} of {{.V1}} resolved paths do not exist.",
		fmt.Sprintf("%d", missing), fmt.Sprintf("%d", len(checked)))
	missingErr.AddTips(locale.Tl("tip_check_prefix", "Make sure the interpreter's development files are installed, or pass the right --prefix."))

	// Structured output already carries the status of every path
	if c.out.Type() != output.JSONFormatName {
		c.out.Error(missingErr)
	}
	return errs.Silence(errs.WrapExitCode(missingErr, 1))
}

// Verify checks every CPPPATH and LIBPATH entry of the environment for existence
func Verify(env *buildenv.Environment) results {
	checked := results{}
	for _, key := range []string{buildenv.KeyCPPPath, buildenv.KeyLibPath} {
		for _, p := range env.List(key) {
			checked = append(checked, PathResult{Key: key, Path: p, Exists: fileutils.DirExists(p)})
		}
	}
	return checked
}
