package runbits

import (
	"context"
	"errors"
	"strings"

	"github.com/ActiveState/pylink/internal/config"
	"github.com/ActiveState/pylink/internal/constants"
	"github.com/ActiveState/pylink/internal/errs"
	"github.com/ActiveState/pylink/internal/interpreter"
	"github.com/ActiveState/pylink/internal/locale"
	"github.com/ActiveState/pylink/internal/logging"
	"github.com/ActiveState/pylink/pkg/buildenv"
	"github.com/ActiveState/pylink/pkg/pylink"
	"github.com/ActiveState/pylink/pkg/sysinfo"
)

// ResolveParams are the target values given on the command line, empty values are filled in from config or
// detection
type ResolveParams struct {
	Platform string
	Version  string
	Prefix   string
}

// Resolution is the fully resolved linkage target
type Resolution struct {
	Platform    string             `json:"platform" locale:"resolution_platform,Platform"`
	Interpreter pylink.Interpreter `json:"interpreter" locale:"resolution_interpreter,Interpreter"`
}

// detector is swapped out in tests
var detector = interpreter.Detect

// Resolve fills in whatever params are missing. Flags take precedence over config, config over detection.
func Resolve(ctx context.Context, cfg *config.Instance, params ResolveParams) (*Resolution, error) {
	platform := firstOf(params.Platform, cfg.Platform)
	if platform == "" {
		platform = sysinfo.PlatformTag()
		logging.Debug("Using host platform tag: %s", platform)
	}

	ver := firstOf(params.Version, cfg.Version)
	prefix := firstOf(params.Prefix, cfg.Prefix)
	if ver == "" || prefix == "" {
		info, err := DetectInterpreter(ctx, cfg)
		if err != nil {
			rerr := locale.WrapError(err, "err_resolve_detect", "Could not determine the interpreter version and prefix.")
			rerr.AddTips(locale.Tl("tip_resolve_flags", "Pass --version and --prefix, or set them in your config file."))
			return nil, rerr
		}
		ver = firstOf(ver, info.Version)
		prefix = firstOf(prefix, info.Prefix)
	}

	i, err := pylink.NewInterpreter(ver, prefix)
	if err != nil {
		return nil, err
	}

	return &Resolution{Platform: platform, Interpreter: *i}, nil
}

// DetectInterpreter runs interpreter detection bounded by the configured probe timeout
func DetectInterpreter(ctx context.Context, cfg *config.Instance) (*interpreter.Info, error) {
	candidates := constants.DefaultPythonCandidates
	if cfg.Python != "" {
		candidates = []string{cfg.Python}
	}

	if cfg.ProbeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ProbeTimeout)
		defer cancel()
	}

	info, err := detector(ctx, candidates...)
	if err != nil {
		return nil, errs.Wrap(err, "Interpreter detection failed")
	}
	logging.Debug("Detected interpreter %s %s at %s", info.Executable, info.Version, info.Prefix)
	return info, nil
}

// NewRegistry returns the extension registry used for the given resolution
func NewRegistry(res *Resolution) (*buildenv.Registry, error) {
	reg := buildenv.NewRegistry()
	if err := reg.Register(pylink.New(res.Interpreter)); err != nil {
		return nil, errs.Wrap(err, "Could not register python extension")
	}
	return reg, nil
}

// Environment returns a fresh environment for the resolved platform with the given extensions applied
func Environment(res *Resolution, extensions ...string) (*buildenv.Environment, error) {
	reg, err := NewRegistry(res)
	if err != nil {
		return nil, err
	}
	if len(extensions) == 0 {
		extensions = []string{pylink.ExtensionName}
	}

	env := buildenv.NewWithPlatform(res.Platform)
	if _, err := reg.Generate(env, extensions...); err != nil {
		return nil, RationalizeExtensionError(err, reg)
	}
	return env, nil
}

// RationalizeExtensionError turns unknown extension errors into input errors
func RationalizeExtensionError(err error, reg *buildenv.Registry) error {
	if errors.Is(err, buildenv.ErrUnknownExtension) {
		return locale.WrapInputError(err, "err_unknown_extension",
			"Unknown extension. Known extensions are: {{.V0}}.", strings.Join(reg.Names(), ", "))
	}
	return err
}

func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
