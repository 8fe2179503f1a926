package cgo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ActiveState/pylink/internal/config"
	"github.com/ActiveState/pylink/internal/output"
	"github.com/ActiveState/pylink/internal/primer"
	"github.com/ActiveState/pylink/internal/runbits"
	"github.com/ActiveState/pylink/internal/testhelpers/outputhelper"
)

func TestCgo(t *testing.T) {
	tests := []struct {
		name     string
		platform string
		format   output.Format
		want     string
	}{
		{
			"posix plain",
			"posix",
			output.PlainFormatName,
			"CGO_CFLAGS=\"-I/usr/include/python2.3\"\nCGO_LDFLAGS=\"-L/usr/lib/python2.3/config -lpython2.3 -lutil\"\n",
		},
		{
			"cygwin json",
			"cygwin",
			output.JSONFormatName,
			`{"CGO_CFLAGS":["-I/usr/include/python2.3"],"CGO_LDFLAGS":["-L/usr/lib/python2.3/config","-lpython2.3"]}` + "\n",
		},
		{
			"win32 plain",
			"win32",
			output.PlainFormatName,
			"CGO_CFLAGS=\"\"\nCGO_LDFLAGS=\"-lpython23\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catcher := outputhelper.NewFormatCatcher(tt.format)
			err := New(primer.New(catcher.Outputer, &config.Instance{})).Run(context.Background(), &Params{
				runbits.ResolveParams{Platform: tt.platform, Version: "2.3.5", Prefix: "/usr"},
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, catcher.Output())
		})
	}
}
