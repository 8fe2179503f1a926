package outputhelper

import (
	"bytes"
	"fmt"

	"github.com/ActiveState/pylink/internal/output"
)

type Catcher struct {
	Outputer  output.Outputer
	outWriter *bytes.Buffer
	errWriter *bytes.Buffer
}

// NewCatcher returns a plain outputer that writes to buffers
func NewCatcher() *Catcher {
	return NewFormatCatcher(output.PlainFormatName)
}

// NewFormatCatcher is like NewCatcher but for the given format
func NewFormatCatcher(format output.Format) *Catcher {
	catch := &Catcher{}

	catch.outWriter = &bytes.Buffer{}
	catch.errWriter = &bytes.Buffer{}

	outputer, err := output.New(string(format), &output.Config{
		OutWriter:   catch.outWriter,
		ErrWriter:   catch.errWriter,
		Colored:     false,
		Interactive: false,
	})
	if err != nil {
		panic(fmt.Sprintf("Could not create %s outputer: %s", format, err.Error()))
	}

	catch.Outputer = outputer

	return catch
}

func (c *Catcher) Output() string {
	return c.outWriter.String()
}

func (c *Catcher) ErrorOutput() string {
	return c.errWriter.String()
}

func (c *Catcher) CombinedOutput() string {
	return c.Output() + "\n" + c.ErrorOutput()
}

type TypedCatcher struct {
	Prints  []interface{}
	Errors  []interface{}
	Notices []interface{}
}

func (t *TypedCatcher) Type() output.Format {
	return output.PlainFormatName
}

func (t *TypedCatcher) Print(value interface{}) {
	t.Prints = append(t.Prints, value)
}

func (t *TypedCatcher) Error(value interface{}) {
	t.Errors = append(t.Errors, value)
}

func (t *TypedCatcher) Notice(value interface{}) {
	t.Notices = append(t.Notices, value)
}

func (t *TypedCatcher) Config() *output.Config {
	return &output.Config{}
}
