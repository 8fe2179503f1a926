package interpreter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProbeOutput(t *testing.T) {
	tests := []struct {
		name    string
		out     string
		want    *Info
		wantErr bool
	}{
		{"python3", "3.11.4\n/usr\n", &Info{Version: "3.11.4", Prefix: "/usr"}, false},
		{"python2", "2.3.5\n/opt/python\n", &Info{Version: "2.3.5", Prefix: "/opt/python"}, false},
		{"windows line endings", "3.10.0\r\nC:\\Python310\r\n", &Info{Version: "3.10.0", Prefix: `C:\Python310`}, false},
		{"prerelease", "3.13.0rc1\n/usr/local\n", &Info{Version: "3.13.0rc1", Prefix: "/usr/local"}, false},
		{"distribution build", "2.7.15+\n/usr\n", &Info{Version: "2.7.15+", Prefix: "/usr"}, false},
		{"empty", "", nil, true},
		{"missing prefix", "3.11.4\n", nil, true},
		{"garbage version", "hello\n/usr\n", nil, true},
		{"extra lines", "3.11.4\n/usr\nmore\n", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseProbeOutput(tt.out)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInfoInterpreter(t *testing.T) {
	info := &Info{Executable: "/usr/bin/python3", Version: "3.11.4", Prefix: "/usr"}
	i, err := info.Interpreter()
	require.NoError(t, err)
	assert.Equal(t, "3.11", i.Version)
	assert.Equal(t, "/usr", i.Prefix)
}
