package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"

	"golang.org/x/term"

	"github.com/ActiveState/pylink/cmd/pylink/internal/cmdtree"
	"github.com/ActiveState/pylink/internal/config"
	"github.com/ActiveState/pylink/internal/constants"
	"github.com/ActiveState/pylink/internal/errs"
	"github.com/ActiveState/pylink/internal/locale"
	"github.com/ActiveState/pylink/internal/logging"
	"github.com/ActiveState/pylink/internal/output"
	"github.com/ActiveState/pylink/internal/primer"
)

func main() {
	var exitCode int
	defer func() {
		// Handle panics gracefully, and ensure that we exit with non-zero code
		if r := recover(); r != nil {
			logging.Critical("Panic: %v\n%s", r, string(debug.Stack()))
			fmt.Fprintf(os.Stderr, "An unexpected error occurred: %v\n", r)
			exitCode = 1
		}
		logging.Close()
		os.Exit(exitCode)
	}()

	setupLogging(os.Args)

	cfg, err := config.New()
	if err != nil {
		logging.Critical("Could not initialize config: %v", errs.JoinMessage(err))
		fmt.Fprintf(os.Stderr, "Could not load config: %s\n", errs.JoinMessage(err))
		exitCode = 1
		return
	}
	logging.Debug("ConfigPath: %s", cfg.ConfigPath())

	// Set up our output formatter/writer
	outFlags := parseOutputFlags(os.Args)
	out, err := initOutput(outFlags, cfg)
	if err != nil {
		logging.Critical("Could not initialize outputer: %s", errs.JoinMessage(err))
		fmt.Fprintln(os.Stderr, locale.JoinedErrorMessage(err))
		exitCode = 1
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	err = run(ctx, os.Args, cfg, out)
	if err != nil {
		exitCode, err = unwrapError(err)
		if err != nil {
			out.Error(err)
		}
	}
}

func run(ctx context.Context, args []string, cfg *config.Instance, out output.Outputer) error {
	cmds := cmdtree.New(ctx, primer.New(out, cfg), constants.Version)
	return cmds.Execute(args[1:])
}

func setupLogging(args []string) {
	if strings.EqualFold(os.Getenv(constants.LogFormatEnvVarName), "json") {
		logging.SetHandler(logging.NewJSONHandler(os.Stderr))
	}
	logging.CurrentHandler().SetVerbose(os.Getenv(constants.VerboseEnvVarName) != "" || argsHaveVerbose(args))

	if level := os.Getenv(constants.LogLevelEnvVarName); level != "" {
		if err := logging.SetMinimalLevelByName(level); err != nil {
			fmt.Fprintf(os.Stderr, "Ignoring %s: %v\n", constants.LogLevelEnvVarName, err)
		}
	}
}

func argsHaveVerbose(args []string) bool {
	for _, arg := range args {
		if arg == "--" {
			return false
		}
		if arg == "--verbose" || arg == "-v" {
			return true
		}
	}
	return false
}

func initOutput(flags outputFlags, cfg *config.Instance) (output.Outputer, error) {
	format := flags.Output
	if format == "" {
		format = cfg.Output
	}

	return output.New(format, &output.Config{
		OutWriter:   os.Stdout,
		ErrWriter:   os.Stderr,
		Colored:     !flags.Mono && term.IsTerminal(int(os.Stdout.Fd())),
		Interactive: term.IsTerminal(int(os.Stdin.Fd())),
	})
}
