package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/ActiveState/pylink/internal/constants"
)

type ConfigTestSuite struct {
	suite.Suite

	dir string
}

func (suite *ConfigTestSuite) SetupTest() {
	suite.dir = suite.T().TempDir()
	for _, name := range []string{
		constants.PythonEnvVarName,
		constants.VersionEnvVarName,
		constants.PrefixEnvVarName,
		constants.PlatformEnvVarName,
		constants.ProbeTimeoutEnvVarName,
	} {
		suite.T().Setenv(name, "")
	}
}

func (suite *ConfigTestSuite) writeConfig(contents string) {
	err := os.WriteFile(filepath.Join(suite.dir, constants.ConfigFileName), []byte(contents), 0644)
	suite.Require().NoError(err)
}

func (suite *ConfigTestSuite) TestDefaults() {
	cfg, err := NewCustom(suite.dir)
	suite.Require().NoError(err)

	suite.Equal("plain", cfg.Output)
	suite.Equal(constants.DefaultProbeTimeout, cfg.ProbeTimeout)
	suite.Empty(cfg.Version)
	suite.Equal(filepath.Join(suite.dir, constants.ConfigFileName), cfg.ConfigPath())
}

func (suite *ConfigTestSuite) TestFileValues() {
	suite.writeConfig("version: \"3.11\"\nprefix: /opt/python\noutput: json\nprobe_timeout: 2s\n")

	cfg, err := NewCustom(suite.dir)
	suite.Require().NoError(err)

	suite.Equal("3.11", cfg.Version)
	suite.Equal("/opt/python", cfg.Prefix)
	suite.Equal("json", cfg.Output)
	suite.Equal(2*time.Second, cfg.ProbeTimeout)
}

func (suite *ConfigTestSuite) TestEnvOverridesFile() {
	suite.writeConfig("version: \"3.11\"\nplatform: posix\n")
	suite.T().Setenv(constants.VersionEnvVarName, "2.7")
	suite.T().Setenv(constants.ProbeTimeoutEnvVarName, "500ms")

	cfg, err := NewCustom(suite.dir)
	suite.Require().NoError(err)

	suite.Equal("2.7", cfg.Version)
	suite.Equal("posix", cfg.Platform)
	suite.Equal(500*time.Millisecond, cfg.ProbeTimeout)
}

func (suite *ConfigTestSuite) TestInvalidTimeout() {
	suite.T().Setenv(constants.ProbeTimeoutEnvVarName, "soon")

	_, err := NewCustom(suite.dir)
	suite.Error(err)
}

func (suite *ConfigTestSuite) TestInvalidFile() {
	suite.writeConfig("version: [unterminated")

	_, err := NewCustom(suite.dir)
	suite.Error(err)
}

func (suite *ConfigTestSuite) TestSaveRoundTrip() {
	cfg, err := NewCustom(suite.dir)
	suite.Require().NoError(err)

	suite.Require().NoError(cfg.Set(KeyPython, "/usr/bin/python3"))
	suite.Require().NoError(cfg.Set(KeyVersion, "3.12"))
	suite.Equal("/usr/bin/python3", cfg.Python)
	suite.Require().NoError(cfg.Save())

	reloaded, err := NewCustom(suite.dir)
	suite.Require().NoError(err)
	suite.Equal("/usr/bin/python3", reloaded.Python)
	suite.Equal("3.12", reloaded.Version)
	suite.Equal(constants.DefaultProbeTimeout, reloaded.ProbeTimeout)
}

func (suite *ConfigTestSuite) TestSaveSkipsEnvOverridesAndDefaults() {
	suite.writeConfig("platform: posix\nprefix: /opt/python\n")
	suite.T().Setenv(constants.PlatformEnvVarName, "cygwin")
	suite.T().Setenv(constants.PrefixEnvVarName, "/tmp/prefix")

	cfg, err := NewCustom(suite.dir)
	suite.Require().NoError(err)
	suite.Equal("cygwin", cfg.Platform)

	suite.Require().NoError(cfg.Set(KeyPython, "/usr/bin/python3"))
	suite.Require().NoError(cfg.Save())

	data, err := os.ReadFile(cfg.ConfigPath())
	suite.Require().NoError(err)
	suite.NotContains(string(data), "cygwin")
	suite.NotContains(string(data), "/tmp/prefix")
	suite.NotContains(string(data), "output")
	suite.NotContains(string(data), "probe_timeout")

	suite.T().Setenv(constants.PlatformEnvVarName, "")
	suite.T().Setenv(constants.PrefixEnvVarName, "")
	reloaded, err := NewCustom(suite.dir)
	suite.Require().NoError(err)
	suite.Equal("posix", reloaded.Platform)
	suite.Equal("/opt/python", reloaded.Prefix)
	suite.Equal("/usr/bin/python3", reloaded.Python)
}

func (suite *ConfigTestSuite) TestSetCoercesValues() {
	cfg, err := NewCustom(suite.dir)
	suite.Require().NoError(err)

	suite.Require().NoError(cfg.Set(KeyProbeTimeout, "3s"))
	suite.Equal(3*time.Second, cfg.ProbeTimeout)
	suite.Error(cfg.Set(KeyProbeTimeout, "soon"))
	suite.Error(cfg.Set("color", "blue"))
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func TestConfigDirEnvOverride(t *testing.T) {
	t.Setenv(constants.ConfigEnvVarName, "/custom/dir")
	dir, err := ConfigDir()
	require.NoError(t, err)
	assert.Equal(t, "/custom/dir", dir)
}
