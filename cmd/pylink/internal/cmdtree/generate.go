package cmdtree

import (
	"context"

	"github.com/ActiveState/pylink/internal/captain"
	"github.com/ActiveState/pylink/internal/locale"
	"github.com/ActiveState/pylink/internal/primer"
	"github.com/ActiveState/pylink/internal/runners/generate"
)

func newGenerateCommand(ctx context.Context, prime *primer.Values) *captain.Command {
	runner := generate.New(prime)

	params := generate.NewParams()

	flags := append(resolveFlags(&params.ResolveParams),
		&captain.Flag{
			Name:        "file",
			Shorthand:   "f",
			Description: locale.Tl("flag_generate_file_description", "Environment file to update in place, it is created when missing"),
			Value:       &params.File,
		},
	)

	return captain.NewCommand(
		"generate",
		locale.Tl("generate_description", "Append the interpreter's include paths, library paths and libraries to a build environment."),
		flags,
		[]*captain.Argument{},
		func(_ *captain.Command, _ []string) error {
			return runner.Run(ctx, params)
		},
	)
}
