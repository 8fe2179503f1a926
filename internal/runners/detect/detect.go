package detect

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ActiveState/pylink/internal/config"
	"github.com/ActiveState/pylink/internal/errs"
	"github.com/ActiveState/pylink/internal/interpreter"
	"github.com/ActiveState/pylink/internal/locale"
	"github.com/ActiveState/pylink/internal/logging"
	"github.com/ActiveState/pylink/internal/output"
	"github.com/ActiveState/pylink/internal/primer"
	"github.com/ActiveState/pylink/internal/runbits"
	"github.com/ActiveState/pylink/pkg/pylink"
	"github.com/ActiveState/pylink/pkg/sysinfo"
)

type primeable interface {
	primer.Outputer
	primer.Configurer
}

type Params struct {
	Python string
	// Save stores the detected version and prefix in the config file
	Save bool
	// All lists every interpreter found on PATH instead of picking one
	All bool
}

// Result is what detect reports about the host
type Result struct {
	Executable   string `json:"executable" locale:"detect_executable,Executable"`
	Version      string `json:"version" locale:"detect_version,Version"`
	Prefix       string `json:"prefix" locale:"detect_prefix,Prefix"`
	LinkVersion  string `json:"link_version" locale:"detect_link_version,Link Version"`
	Platform     string `json:"platform" locale:"detect_platform,Platform"`
	Architecture string `json:"architecture" locale:"detect_architecture,Architecture"`
	OSVersion    string `json:"os_version,omitempty" locale:"detect_os_version,OS Version"`
}

type listing []*interpreter.Info

func (l listing) MarshalOutput(f output.Format) interface{} {
	if f == output.JSONFormatName {
		return []*interpreter.Info(l)
	}

	lines := make([]string, 0, len(l))
	for _, info := range l {
		lines = append(lines, fmt.Sprintf("%-10s %s (%s)", info.Version, info.Executable, info.Prefix))
	}
	return strings.Join(lines, "\n")
}

type Detect struct {
	out output.Outputer
	cfg *config.Instance
}

func New(p primeable) *Detect {
	return &Detect{
		out: p.Output(),
		cfg: p.Config(),
	}
}

func (d *Detect) Run(ctx context.Context, params *Params) error {
	if params.All {
		if params.Save {
			return locale.NewInputError("err_detect_all_save", "The --all and --save flags cannot be used together.")
		}
		return d.runAll(ctx)
	}

	cfg := *d.cfg
	if params.Python != "" {
		cfg.Python = params.Python
	}

	info, err := runbits.DetectInterpreter(ctx, &cfg)
	if err != nil {
		return locale.WrapError(err, "err_detect", "Could not detect a Python interpreter.")
	}

	linkVersion, err := pylink.MajorMinor(info.Version)
	if err != nil {
		return err
	}

	result := Result{
		Executable:   info.Executable,
		Version:      info.Version,
		Prefix:       info.Prefix,
		LinkVersion:  linkVersion,
		Platform:     sysinfo.PlatformTag(),
		Architecture: sysinfo.Architecture(),
	}
	if osv, err := sysinfo.OSVersion(); err == nil {
		result.OSVersion = osv.Version
	} else {
		logging.Debug("Could not determine OS version: %v", err)
	}

	d.out.Print(result)

	if params.Save {
		if err := d.save(info, linkVersion); err != nil {
			return locale.WrapError(err, "err_detect_save", "Could not save the detected interpreter to {{.V0}}.", d.cfg.ConfigPath())
		}
		d.out.Notice(locale.Tl("detect_saved", "Saved to {{.V0}}", d.cfg.ConfigPath()))
	}

	return nil
}

func (d *Detect) save(info *interpreter.Info, linkVersion string) error {
	values := []struct {
		key   string
		value string
	}{
		{config.KeyPython, info.Executable},
		{config.KeyVersion, linkVersion},
		{config.KeyPrefix, info.Prefix},
	}
	for _, v := range values {
		if err := d.cfg.Set(v.key, v.value); err != nil {
			return err
		}
	}
	return d.cfg.Save()
}

func (d *Detect) runAll(ctx context.Context) error {
	dirs := filepath.SplitList(os.Getenv("PATH"))
	exes := interpreter.Discover(dirs)
	logging.Debug("Found %d interpreter candidates on PATH", len(exes))

	infos := interpreter.ProbeAll(ctx, exes)
	if ctx.Err() != nil {
		return errs.Wrap(ctx.Err(), "Detection interrupted")
	}
	if len(infos) == 0 {
		return locale.WrapInputError(interpreter.ErrNotFound, "err_detect_all_none", "No working Python interpreter was found on PATH.")
	}

	d.out.Print(listing(infos))
	return nil
}
