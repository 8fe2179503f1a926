package output

import (
	"io"

	"github.com/ActiveState/pylink/internal/locale"
	"github.com/ActiveState/pylink/internal/logging"
)

type Format string

// FormatName constants are tokens representing supported output formats.
const (
	PlainFormatName Format = "plain" // human readable
	JSONFormatName  Format = "json"  // plain json
)

// Outputer is the initialized formatter
type Outputer interface {
	Print(value interface{})
	Error(value interface{})
	Notice(value interface{})
	Type() Format
	Config() *Config
}

// Config is the thing we pass to Outputer constructors
type Config struct {
	OutWriter   io.Writer
	ErrWriter   io.Writer
	Colored     bool
	Interactive bool
}

// New constructs a new Outputer according to the given format name
func New(formatName string, config *Config) (Outputer, error) {
	logging.Debug("Requested outputer for %s", formatName)

	format := Format(formatName)
	switch format {
	case "", PlainFormatName:
		return &Mediator{NewPlain(config), PlainFormatName}, nil
	case JSONFormatName:
		return &Mediator{NewJSON(config), JSONFormatName}, nil
	}

	return nil, locale.NewInputError("err_unknown_format", "Unknown output format: {{.V0}}", formatName)
}
