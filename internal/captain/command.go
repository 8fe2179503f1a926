package captain

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ActiveState/pylink/internal/errs"
	"github.com/ActiveState/pylink/internal/locale"
	"github.com/ActiveState/pylink/internal/logging"
)

type Executor func(cmd *Command, args []string) error

type Command struct {
	cobra *cobra.Command

	flags     []*Flag
	arguments []*Argument

	execute Executor
}

func NewCommand(name, description string, flags []*Flag, args []*Argument, executor Executor) *Command {
	// Validate args
	for idx, arg := range args {
		if idx > 0 && arg.Required && !args[idx-1].Required {
			msg := fmt.Sprintf(
				"Cannot have a non-required argument followed by a required argument.\n\n%v\n\n%v",
				arg, args[len(args)-1],
			)
			panic(msg)
		}
	}

	cmd := &Command{
		execute:   executor,
		arguments: args,
		flags:     flags,
	}

	short := description
	if idx := strings.IndexByte(description, '.'); idx > 0 {
		short = description[0:idx]
	}

	cmd.cobra = &cobra.Command{
		Use:              name,
		Short:            short,
		Long:             description,
		PersistentPreRun: cmd.persistRunner,
		RunE:             cmd.runner,
		Args:             cmd.argValidator,

		// Silence errors and usage, we handle that ourselves
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	commandsByCobra[cmd.cobra] = cmd
	if err := cmd.setFlags(flags); err != nil {
		panic(err)
	}

	return cmd
}

func (c *Command) Name() string {
	return c.cobra.Name()
}

func (c *Command) Description() string {
	return c.cobra.Short
}

func (c *Command) Usage() error {
	return c.cobra.Usage()
}

func (c *Command) UsageText() string {
	return c.cobra.UsageString()
}

func (c *Command) Help() string {
	return fmt.Sprintf("%s\n\n%s", c.cobra.Short, c.UsageText())
}

func (c *Command) Execute(args []string) error {
	c.cobra.SetArgs(args)
	err := c.cobra.Execute()
	c.cobra.SetArgs(nil)
	return setupSensibleErrors(err)
}

func (c *Command) SetAliases(aliases ...string) {
	c.cobra.Aliases = aliases
}

func (c *Command) SetHidden(value bool) {
	c.cobra.Hidden = value
}

func (c *Command) SetVersion(version string) {
	c.cobra.Version = version
}

func (c *Command) Arguments() []*Argument {
	return c.arguments
}

func (c *Command) Flags() []*Flag {
	return c.flags
}

func (c *Command) AddChildren(children ...*Command) {
	// Let cobra report unknown sub commands rather than surplus arguments
	c.cobra.Args = nil
	for _, child := range children {
		c.cobra.AddCommand(child.cobra)
	}
}

func (c *Command) Children() []*Command {
	var children []*Command
	for _, child := range c.cobra.Commands() {
		if cmd, ok := commandsByCobra[child]; ok {
			children = append(children, cmd)
		}
	}
	return children
}

func (c *Command) flagByName(name string, persistOnly bool) *Flag {
	for _, flag := range c.flags {
		if flag.Name == name && (!persistOnly || flag.Persist) {
			return flag
		}
	}
	return nil
}

func (c *Command) persistRunner(cobraCmd *cobra.Command, args []string) {
	// Persistent flags live on the root, run their OnUse functions from there
	root := c
	if rc, ok := commandsByCobra[cobraCmd.Root()]; ok {
		root = rc
	}
	root.runFlags(cobraCmd, true)
}

func (c *Command) runner(cobraCmd *cobra.Command, args []string) error {
	// Run OnUse functions for non-persistent flags
	c.runFlags(cobraCmd, false)

	for idx, arg := range c.arguments {
		if arg.Required && idx > len(args)-1 {
			return locale.NewInputError("err_arg_required",
				"The following argument is required:\n  Name: {{.V0}}\n  Description: {{.V1}}",
				arg.Name, arg.Description)
		}

		if idx >= len(args) {
			break
		}

		switch v := arg.Value.(type) {
		case *string:
			*v = args[idx]
		case ArgMarshaler:
			if err := v.Set(args[idx]); err != nil {
				return locale.WrapInputError(err, "err_arg_invalid", "Invalid value for argument {{.V0}}.", arg.Name)
			}
		default:
			return errs.New("arg: %s must be *string, or ArgMarshaler", arg.Name)
		}
	}

	logging.Debug("Running command: %s", cobraCmd.CommandPath())
	return c.execute(c, args)
}

func (c *Command) runFlags(cobraCmd *cobra.Command, persistOnly bool) {
	if cobraCmd.DisableFlagParsing {
		return
	}

	cobraCmd.Flags().VisitAll(func(cobraFlag *pflag.Flag) {
		if !cobraFlag.Changed {
			return
		}

		flag := c.flagByName(cobraFlag.Name, persistOnly)
		if flag == nil || flag.OnUse == nil {
			return
		}

		flag.OnUse()
	})
}

func (c *Command) argValidator(cobraCmd *cobra.Command, args []string) error {
	if len(args) > len(c.arguments) {
		return locale.NewInputError("err_too_many_args",
			"Too many arguments for {{.V0}}, expected at most {{.V1}}.",
			cobraCmd.CommandPath(), fmt.Sprintf("%d", len(c.arguments)))
	}
	return nil
}

// setupSensibleErrors inspects an error value for certain errors and returns a
// wrapped error that can be checked and that is localized.
func setupSensibleErrors(err error) error {
	if err == nil {
		return nil
	}

	errMsg := err.Error()

	// pflag: flag.go: output being parsed:
	// fmt.Errorf("invalid argument %q for %q flag: %v", value, flagName, err)
	invalidArg := "invalid argument "
	if strings.Contains(errMsg, invalidArg) {
		segments := strings.SplitN(errMsg, ": ", 2)

		flagText := "{unknown flag}"
		msg := "unknown error"

		if len(segments) > 0 {
			subsegs := strings.SplitN(segments[0], "for ", 2)
			if len(subsegs) > 1 {
				flagText = strings.TrimSuffix(subsegs[1], " flag")
			}
		}

		if len(segments) > 1 {
			msg = segments[1]
		}

		return locale.WrapInputError(err, "command_flag_invalid_value",
			"Invalid value for {{.V0}} flag: {{.V1}}", flagText, msg)
	}

	// pflag: flag.go: output being parsed:
	// fmt.Errorf("unknown flag: --%s", name)
	// fmt.Errorf("unknown shorthand flag: %q in -%s", c, shorthands)
	for _, noSuch := range []string{"unknown flag: ", "unknown shorthand flag: "} {
		if strings.HasPrefix(errMsg, noSuch) {
			flagText := strings.TrimPrefix(errMsg, noSuch)
			return locale.WrapInputError(err, "command_flag_no_such_flag", "No such flag: {{.V0}}", flagText)
		}
	}

	// cobra: command.go: output being parsed:
	// fmt.Errorf("unknown command %q for %q%s", args[0], cmd.CommandPath(), cmd.findSuggestions(args[0]))
	if strings.HasPrefix(errMsg, "unknown command ") {
		return locale.WrapInputError(err, "command_unknown", "{{.V0}}", errMsg)
	}

	return err
}
