package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ActiveState/pylink/internal/errs"
)

func TestJSON_Print(t *testing.T) {
	tests := []struct {
		name        string
		value       interface{}
		expectedOut string
	}{
		{
			"string",
			"hello",
			`"hello"` + "\n",
		},
		{
			"slice",
			[]string{"-I/usr/include/python2.3"},
			`["-I/usr/include/python2.3"]` + "\n",
		},
		{
			"struct",
			struct {
				Available bool `json:"available"`
			}{true},
			`{"available":true}` + "\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outWriter := &bytes.Buffer{}
			f := NewJSON(&Config{OutWriter: outWriter, ErrWriter: &bytes.Buffer{}})
			f.Print(tt.value)
			assert.Equal(t, tt.expectedOut, outWriter.String())
		})
	}
}

func TestJSON_Error(t *testing.T) {
	errWriter := &bytes.Buffer{}
	f := NewJSON(&Config{OutWriter: &bytes.Buffer{}, ErrWriter: errWriter})

	f.Error(errs.New("boom"))
	assert.Equal(t, `{"error":"boom"}`+"\n", errWriter.String())

	errWriter.Reset()
	f.Error("plain message")
	assert.Equal(t, `{"error":"plain message"}`+"\n", errWriter.String())
}
