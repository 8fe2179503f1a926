package cgo

import (
	"context"

	"github.com/ActiveState/pylink/internal/config"
	"github.com/ActiveState/pylink/internal/output"
	"github.com/ActiveState/pylink/internal/primer"
	"github.com/ActiveState/pylink/internal/runbits"
)

type primeable interface {
	primer.Outputer
	primer.Configurer
}

type Params struct {
	runbits.ResolveParams
}

type Cgo struct {
	out output.Outputer
	cfg *config.Instance
}

func New(p primeable) *Cgo {
	return &Cgo{
		out: p.Output(),
		cfg: p.Config(),
	}
}

// Run prints the CGO_CFLAGS and CGO_LDFLAGS needed to link against the resolved interpreter
func (c *Cgo) Run(ctx context.Context, params *Params) error {
	res, err := runbits.Resolve(ctx, c.cfg, params.ResolveParams)
	if err != nil {
		return err
	}

	env, err := runbits.Environment(res)
	if err != nil {
		return err
	}

	c.out.Print(env.CgoFlags())
	return nil
}
