package generate

import (
	"context"

	"github.com/ActiveState/pylink/internal/config"
	"github.com/ActiveState/pylink/internal/errs"
	"github.com/ActiveState/pylink/internal/fileutils"
	"github.com/ActiveState/pylink/internal/locale"
	"github.com/ActiveState/pylink/internal/logging"
	"github.com/ActiveState/pylink/internal/output"
	"github.com/ActiveState/pylink/internal/primer"
	"github.com/ActiveState/pylink/internal/runbits"
	"github.com/ActiveState/pylink/pkg/buildenv"
	"github.com/ActiveState/pylink/pkg/pylink"
)

type primeable interface {
	primer.Outputer
	primer.Configurer
}

type Params struct {
	runbits.ResolveParams
	// File is an environment file to update in place, when empty a fresh environment is printed
	File       string
	Extensions []string
}

func NewParams() *Params {
	return &Params{Extensions: []string{pylink.ExtensionName}}
}

type Generate struct {
	out output.Outputer
	cfg *config.Instance
}

func New(p primeable) *Generate {
	return &Generate{
		out: p.Output(),
		cfg: p.Config(),
	}
}

func (g *Generate) Run(ctx context.Context, params *Params) error {
	res, err := runbits.Resolve(ctx, g.cfg, params.ResolveParams)
	if err != nil {
		return err
	}

	if params.File == "" {
		env, err := runbits.Environment(res, params.Extensions...)
		if err != nil {
			return err
		}
		g.out.Print(env)
		return nil
	}

	var env *buildenv.Environment
	err = fileutils.WithLock(ctx, params.File, func() error {
		var err error
		env, err = g.update(res, params)
		return err
	})
	if err != nil {
		return locale.WrapError(err, "err_generate_file", "Could not update environment file {{.V0}}.", params.File)
	}

	g.out.Print(env)
	return nil
}

// update applies the extensions to the environment file, must be called with the file locked
func (g *Generate) update(res *runbits.Resolution, params *Params) (*buildenv.Environment, error) {
	env := buildenv.New()
	if fileutils.FileExists(params.File) {
		var err error
		env, err = buildenv.Load(params.File)
		if err != nil {
			return nil, err
		}
		logging.Debug("Loaded environment from %s", params.File)
	}

	// The file's own PLATFORM wins unless one was passed explicitly
	if params.Platform != "" || !env.Has(buildenv.KeyPlatform) {
		env.Set(buildenv.KeyPlatform, res.Platform)
	}

	reg, err := runbits.NewRegistry(res)
	if err != nil {
		return nil, err
	}
	applied, err := reg.Generate(env, params.Extensions...)
	if err != nil {
		return nil, runbits.RationalizeExtensionError(err, reg)
	}
	logging.Debug("Applied extensions: %v", applied)

	if err := env.Save(params.File); err != nil {
		return nil, errs.Wrap(err, "Could not save environment")
	}
	return env, nil
}
