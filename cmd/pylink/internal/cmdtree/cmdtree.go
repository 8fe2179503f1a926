package cmdtree

import (
	"context"

	"github.com/ActiveState/pylink/internal/captain"
	"github.com/ActiveState/pylink/internal/constants"
	"github.com/ActiveState/pylink/internal/locale"
	"github.com/ActiveState/pylink/internal/logging"
	"github.com/ActiveState/pylink/internal/primer"
	"github.com/ActiveState/pylink/internal/runbits"
)

// CmdTree manages a tree of captain.Command instances.
type CmdTree struct {
	cmd *captain.Command
}

// New prepares a CmdTree.
func New(ctx context.Context, prime *primer.Values, version string) *CmdTree {
	globals := newGlobalOptions()

	pylinkCmd := newPylinkCommand(globals)
	pylinkCmd.SetVersion(version)
	pylinkCmd.AddChildren(
		newGenerateCommand(ctx, prime),
		newExistsCommand(prime),
		newCheckCommand(ctx, prime),
		newDetectCommand(ctx, prime),
		newCgoCommand(ctx, prime),
	)

	return &CmdTree{
		cmd: pylinkCmd,
	}
}

type globalOptions struct {
	Verbose bool
	Output  string
	Mono    bool
}

func newGlobalOptions() *globalOptions {
	return &globalOptions{}
}

func newPylinkCommand(globals *globalOptions) *captain.Command {
	return captain.NewCommand(
		constants.CommandName,
		locale.Tl("pylink_description", "Resolve the compiler and linker settings needed to link against a Python interpreter."),
		[]*captain.Flag{
			{
				Name:        "verbose",
				Shorthand:   "v",
				Description: locale.Tl("flag_verbose_description", "Verbose output"),
				Persist:     true,
				OnUse: func() {
					logging.CurrentHandler().SetVerbose(true)
				},
				Value: &globals.Verbose,
			},
			{
				Name:        "output", // Name and Shorthand should be kept in sync with cmd/pylink/output.go
				Shorthand:   "o",
				Description: locale.Tl("flag_output_description", "Output format: plain or json"),
				Persist:     true,
				Value:       &globals.Output,
			},
			{
				Name:        "mono", // Name should be kept in sync with cmd/pylink/output.go
				Description: locale.Tl("flag_mono_description", "Disable colored output"),
				Persist:     true,
				Value:       &globals.Mono,
			},
		},
		[]*captain.Argument{},
		func(ccmd *captain.Command, args []string) error {
			return ccmd.Usage()
		},
	)
}

// resolveFlags are shared by every command that resolves a linkage target
func resolveFlags(params *runbits.ResolveParams) []*captain.Flag {
	return []*captain.Flag{
		{
			Name:        "platform",
			Description: locale.Tl("flag_platform_description", "Target platform tag, eg. win32, cygwin, irix or posix. Defaults to the host platform."),
			Value:       &params.Platform,
		},
		{
			Name:        "version",
			Description: locale.Tl("flag_version_description", "Interpreter version, eg. 2.3 or 3.11.4. Detected when omitted."),
			Value:       &params.Version,
		},
		{
			Name:        "prefix",
			Description: locale.Tl("flag_prefix_description", "Interpreter installation prefix, eg. /usr. Detected when omitted."),
			Value:       &params.Prefix,
		},
	}
}

// Execute runs the CmdTree using the provided CLI arguments.
func (ct *CmdTree) Execute(args []string) error {
	return ct.cmd.Execute(args)
}

// Command returns the root command of the CmdTree
func (ct *CmdTree) Command() *captain.Command {
	return ct.cmd
}
