package output

import (
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/fatih/color"

	"github.com/ActiveState/pylink/internal/locale"
	"github.com/ActiveState/pylink/internal/logging"
)

// Plain is our plain outputer, it uses reflect to marshal the data.
// Semantic highlighting is applied to errors and notices when the output is colored.
type Plain struct {
	cfg    *Config
	red    *color.Color
	yellow *color.Color
}

// NewPlain constructs a new Plain struct
func NewPlain(config *Config) *Plain {
	red := color.New(color.FgRed)
	yellow := color.New(color.FgYellow)
	if config.Colored {
		red.EnableColor()
		yellow.EnableColor()
	} else {
		red.DisableColor()
		yellow.DisableColor()
	}
	return &Plain{config, red, yellow}
}

// Type tells callers what type of outputer we are
func (f *Plain) Type() Format {
	return PlainFormatName
}

// Print will marshal and print the given value to the output writer
func (f *Plain) Print(value interface{}) {
	f.write(f.cfg.OutWriter, value, nil)
}

// Error will marshal and print the given value to the error writer
func (f *Plain) Error(value interface{}) {
	if err, ok := value.(error); ok {
		value = sprintError(err)
	}
	f.write(f.cfg.ErrWriter, value, f.red)
}

// Notice will marshal and print the given value to the error writer
func (f *Plain) Notice(value interface{}) {
	f.write(f.cfg.ErrWriter, value, f.yellow)
}

// Config returns the Config struct for the active instance
func (f *Plain) Config() *Config {
	return f.cfg
}

func (f *Plain) write(writer io.Writer, value interface{}, c *color.Color) {
	v, err := sprint(value)
	if err != nil {
		logging.Error("Could not sprint value: %v, error: %v", value, err)
		f.red.Fprintln(f.cfg.ErrWriter, locale.Tl("err_sprint", "Could not format output: {{.V0}}", err.Error()))
		return
	}

	if c == nil {
		fmt.Fprintln(writer, v)
		return
	}
	c.Fprintln(writer, v)
}

func sprintError(err error) string {
	msg := locale.JoinedErrorMessage(err)
	tips := locale.ErrorTips(err)
	if len(tips) == 0 {
		return msg
	}
	return msg + "\n" + locale.Tl("err_tips", "Tips:") + "\n - " + strings.Join(tips, "\n - ")
}

func sprint(value interface{}) (string, error) {
	if value == nil {
		return "", nil
	}

	switch v := value.(type) {
	case fmt.Stringer:
		return v.String(), nil
	case error:
		return v.Error(), nil
	}

	valueRfl := reflect.ValueOf(value)
	switch valueRfl.Kind() {
	case reflect.Ptr:
		if valueRfl.IsNil() {
			return "", nil
		}
		return sprint(valueRfl.Elem().Interface())
	case reflect.Struct:
		return sprintStruct(value)
	case reflect.Slice:
		return sprintSlice(valueRfl)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return fmt.Sprintf("%d", value), nil
	case reflect.Float32, reflect.Float64:
		return fmt.Sprintf("%.2f", valueRfl.Float()), nil
	case reflect.Bool:
		return fmt.Sprintf("%t", valueRfl.Bool()), nil
	case reflect.String:
		return valueRfl.String(), nil
	}

	return "", fmt.Errorf("unknown type: %s", valueRfl.Type().String())
}

func sprintStruct(value interface{}) (string, error) {
	meta, err := parseStructMeta(value)
	if err != nil {
		return "", err
	}

	result := []string{}
	for i, value := range meta.values {
		stringValue, err := sprint(value)
		if err != nil {
			return "", err
		}
		if reflect.ValueOf(value).Kind() == reflect.Slice && stringValue != "" {
			stringValue = "\n" + stringValue
		}
		result = append(result, fmt.Sprintf("%s: %s", meta.localizedFields[i], stringValue))
	}
	return strings.Join(result, "\n"), nil
}

func sprintSlice(valueRfl reflect.Value) (string, error) {
	result := []string{}
	for i := 0; i < valueRfl.Len(); i++ {
		stringValue, err := sprint(valueRfl.Index(i).Interface())
		if err != nil {
			return "", err
		}
		result = append(result, " - "+stringValue)
	}
	return strings.Join(result, "\n"), nil
}
