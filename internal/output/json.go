package output

import (
	"encoding/json"
	"fmt"

	"github.com/ActiveState/pylink/internal/locale"
	"github.com/ActiveState/pylink/internal/logging"
)

// JSON is our JSON outputer, there's not much going on here, just forwards it to the JSON marshaller and provides
// a basic structure for errors
type JSON struct {
	cfg *Config
}

// NewJSON constructs a new JSON struct
func NewJSON(config *Config) *JSON {
	return &JSON{config}
}

// Type tells callers what type of outputer we are
func (f *JSON) Type() Format {
	return JSONFormatName
}

// Print will marshal and print the given value to the output writer
func (f *JSON) Print(value interface{}) {
	b, err := json.Marshal(value)
	if err != nil {
		logging.Error("Could not marshal value, error: %v", err)
		f.Error(locale.Tl("err_could_not_marshal_print", "Could not marshal the value being printed, please check the log for more information."))
		return
	}
	fmt.Fprintln(f.cfg.OutWriter, string(b))
}

type jsonError struct {
	Error string   `json:"error"`
	Tips  []string `json:"tips,omitempty"`
}

// Error will marshal and print the given value to the error writer
func (f *JSON) Error(value interface{}) {
	errStruct := jsonError{}
	switch v := value.(type) {
	case error:
		errStruct.Error = locale.JoinedErrorMessage(v)
		errStruct.Tips = locale.ErrorTips(v)
	default:
		errStruct.Error = fmt.Sprintf("%v", v)
	}

	b, err := json.Marshal(errStruct)
	if err != nil {
		logging.Error("Could not marshal value, error: %v", err)
		b = []byte(locale.Tl("err_could_not_marshal_print", "Could not marshal the value being printed, please check the log for more information."))
	}
	fmt.Fprintln(f.cfg.ErrWriter, string(b))
}

// Notice is ignored by JSON, as they are considered as non-critical output and there's currently no reliable way to
// reliably combine this data into the eventual output
func (f *JSON) Notice(value interface{}) {
	logging.Info("Notice: %v", value)
}

// Config returns the Config struct for the active instance
func (f *JSON) Config() *Config {
	return f.cfg
}
