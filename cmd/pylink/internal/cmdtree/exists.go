package cmdtree

import (
	"github.com/ActiveState/pylink/internal/captain"
	"github.com/ActiveState/pylink/internal/locale"
	"github.com/ActiveState/pylink/internal/primer"
	"github.com/ActiveState/pylink/internal/runners/exists"
)

func newExistsCommand(prime *primer.Values) *captain.Command {
	runner := exists.New(prime)

	return captain.NewCommand(
		"exists",
		locale.Tl("exists_description", "Report whether the python extension is available to the build tool."),
		[]*captain.Flag{},
		[]*captain.Argument{},
		func(_ *captain.Command, _ []string) error {
			return runner.Run()
		},
	)
}
