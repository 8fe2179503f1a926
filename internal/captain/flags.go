package captain

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ActiveState/pylink/internal/errs"
)

// FlagMarshaler is a custom flag type, it is a pflag.Value
type FlagMarshaler pflag.Value

// ArgMarshaler is a custom argument type
type ArgMarshaler interface {
	Set(string) error
}

// Flag describes a command line flag. Value must be one of *string, *bool, *int, *time.Duration or a FlagMarshaler,
// whatever it points to at construction is the flag's default.
type Flag struct {
	Name        string
	Shorthand   string
	Description string
	Persist     bool
	Hidden      bool
	OnUse       func()

	Value interface{}
}

// Argument describes a positional argument. Value must be a *string or an ArgMarshaler.
type Argument struct {
	Name        string
	Description string
	Required    bool
	Value       interface{}
}

func (a *Argument) String() string {
	return fmt.Sprintf("%s (required: %v): %s", a.Name, a.Required, a.Description)
}

var commandsByCobra = map[*cobra.Command]*Command{}

func (c *Command) setFlags(flags []*Flag) error {
	for _, flag := range flags {
		flagSetter := c.cobra.Flags
		if flag.Persist {
			flagSetter = c.cobra.PersistentFlags
		}

		switch v := flag.Value.(type) {
		case *string:
			flagSetter().StringVarP(v, flag.Name, flag.Shorthand, *v, flag.Description)
		case *bool:
			flagSetter().BoolVarP(v, flag.Name, flag.Shorthand, *v, flag.Description)
		case *int:
			flagSetter().IntVarP(v, flag.Name, flag.Shorthand, *v, flag.Description)
		case *time.Duration:
			flagSetter().DurationVarP(v, flag.Name, flag.Shorthand, *v, flag.Description)
		case FlagMarshaler:
			flagSetter().VarP(v, flag.Name, flag.Shorthand, flag.Description)
		default:
			return errs.New("Unknown type for flag %s: %T", flag.Name, v)
		}

		if flag.Hidden {
			if err := flagSetter().MarkHidden(flag.Name); err != nil {
				return errs.Wrap(err, "Could not hide flag %s", flag.Name)
			}
		}
	}

	return nil
}
