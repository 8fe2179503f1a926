package cmdtree

import (
	"context"

	"github.com/ActiveState/pylink/internal/captain"
	"github.com/ActiveState/pylink/internal/locale"
	"github.com/ActiveState/pylink/internal/primer"
	"github.com/ActiveState/pylink/internal/runners/check"
)

func newCheckCommand(ctx context.Context, prime *primer.Values) *captain.Command {
	runner := check.New(prime)

	params := &check.Params{}

	return captain.NewCommand(
		"check",
		locale.Tl("check_description", "Verify that the resolved include and library directories exist."),
		resolveFlags(&params.ResolveParams),
		[]*captain.Argument{},
		func(_ *captain.Command, _ []string) error {
			return runner.Run(ctx, params)
		},
	)
}
