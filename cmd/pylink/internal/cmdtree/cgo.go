package cmdtree

import (
	"context"

	"github.com/ActiveState/pylink/internal/captain"
	"github.com/ActiveState/pylink/internal/locale"
	"github.com/ActiveState/pylink/internal/primer"
	"github.com/ActiveState/pylink/internal/runners/cgo"
)

func newCgoCommand(ctx context.Context, prime *primer.Values) *captain.Command {
	runner := cgo.New(prime)

	params := &cgo.Params{}

	return captain.NewCommand(
		"cgo",
		locale.Tl("cgo_description", "Print CGO_CFLAGS and CGO_LDFLAGS for linking against the interpreter."),
		resolveFlags(&params.ResolveParams),
		[]*captain.Argument{},
		func(_ *captain.Command, _ []string) error {
			return runner.Run(ctx, params)
		},
	)
}
