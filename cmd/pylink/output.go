package main

import (
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/ActiveState/pylink/internal/logging"
)

type outputFlags struct {
	Output string
	Mono   bool
}

// parseOutputFlags reads the output related flags before the command tree is built, as the outputer has to exist
// before any command runs. Name and Shorthand should be kept in sync with the root command.
func parseOutputFlags(args []string) outputFlags {
	var flags outputFlags

	set := pflag.NewFlagSet("output", pflag.ContinueOnError)
	set.ParseErrorsWhitelist.UnknownFlags = true
	set.Usage = func() {}
	set.SetOutput(io.Discard)
	set.StringVarP(&flags.Output, "output", "o", "", "")
	set.BoolVar(&flags.Mono, "mono", os.Getenv("NO_COLOR") != "", "")

	if len(args) > 1 {
		if err := set.Parse(args[1:]); err != nil {
			logging.Debug("Could not parse output flags: %v", err)
		}
	}

	return flags
}
