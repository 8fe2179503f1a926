package cmdtree

import (
	"context"

	"github.com/ActiveState/pylink/internal/captain"
	"github.com/ActiveState/pylink/internal/locale"
	"github.com/ActiveState/pylink/internal/primer"
	"github.com/ActiveState/pylink/internal/runners/detect"
)

func newDetectCommand(ctx context.Context, prime *primer.Values) *captain.Command {
	runner := detect.New(prime)

	params := &detect.Params{}

	return captain.NewCommand(
		"detect",
		locale.Tl("detect_description", "Detect the Python interpreter on this machine and report its version and prefix."),
		[]*captain.Flag{
			{
				Name:        "python",
				Description: locale.Tl("flag_detect_python_description", "Interpreter executable to probe instead of python3 and python"),
				Value:       &params.Python,
			},
			{
				Name:        "save",
				Description: locale.Tl("flag_detect_save_description", "Store the detected interpreter in the config file"),
				Value:       &params.Save,
			},
			{
				Name:        "all",
				Shorthand:   "a",
				Description: locale.Tl("flag_detect_all_description", "List every Python interpreter found on PATH"),
				Value:       &params.All,
			},
		},
		[]*captain.Argument{},
		func(_ *captain.Command, _ []string) error {
			return runner.Run(ctx, params)
		},
	)
}
