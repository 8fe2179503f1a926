package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/imdario/mergo"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"

	"github.com/ActiveState/pylink/internal/constants"
	"github.com/ActiveState/pylink/internal/errs"
	"github.com/ActiveState/pylink/internal/fileutils"
	"github.com/ActiveState/pylink/internal/logging"
)

// Instance holds the user configuration, resolved from defaults, the config file and the environment (in increasing
// order of precedence)
type Instance struct {
	Python       string        `yaml:"python,omitempty"`
	Version      string        `yaml:"version,omitempty"`
	Prefix       string        `yaml:"prefix,omitempty"`
	Platform     string        `yaml:"platform,omitempty"`
	Output       string        `yaml:"output,omitempty"`
	ProbeTimeout time.Duration `yaml:"probe_timeout,omitempty"`

	configPath string
	// stored holds only what the config file contains plus keys changed through Set, it is what Save writes
	stored *Instance
}

// Keys accepted by Set
const (
	KeyPython       = "python"
	KeyVersion      = "version"
	KeyPrefix       = "prefix"
	KeyPlatform     = "platform"
	KeyOutput       = "output"
	KeyProbeTimeout = "probe_timeout"
)

func defaults() Instance {
	return Instance{
		Output:       "plain",
		ProbeTimeout: constants.DefaultProbeTimeout,
	}
}

// New loads the configuration from the default config dir
func New() (*Instance, error) {
	dir, err := ConfigDir()
	if err != nil {
		return nil, errs.Wrap(err, "Could not detect config dir")
	}
	return NewCustom(dir)
}

// NewCustom loads the configuration from the given directory. A missing config file is not an error.
func NewCustom(dir string) (*Instance, error) {
	configPath := filepath.Join(dir, constants.ConfigFileName)
	stored := &Instance{}

	if fileutils.FileExists(configPath) {
		data, err := fileutils.ReadFile(configPath)
		if err != nil {
			return nil, errs.Wrap(err, "Could not read config file")
		}
		if err := yaml.Unmarshal(data, stored); err != nil {
			return nil, errs.Wrap(err, "Could not parse config file: %s", configPath)
		}
		logging.Debug("Loaded config from %s", configPath)
	}

	i := &Instance{}
	*i = *stored
	i.configPath = configPath

	if err := mergo.Merge(i, defaults()); err != nil {
		return nil, errs.Wrap(err, "Could not apply config defaults")
	}

	if err := i.applyEnv(); err != nil {
		return nil, err
	}
	i.stored = stored

	return i, nil
}

func (i *Instance) applyEnv() error {
	overrides := map[string]*string{
		constants.PythonEnvVarName:   &i.Python,
		constants.VersionEnvVarName:  &i.Version,
		constants.PrefixEnvVarName:   &i.Prefix,
		constants.PlatformEnvVarName: &i.Platform,
	}
	for name, target := range overrides {
		if v, ok := os.LookupEnv(name); ok && v != "" {
			logging.Debug("Config override from %s", name)
			*target = v
		}
	}

	if v, ok := os.LookupEnv(constants.ProbeTimeoutEnvVarName); ok && v != "" {
		d, err := cast.ToDurationE(v)
		if err != nil {
			return errs.Wrap(err, "Invalid value for %s: %s", constants.ProbeTimeoutEnvVarName, v)
		}
		i.ProbeTimeout = d
	}

	return nil
}

// ConfigPath returns the path of the config file, whether or not it exists
func (i *Instance) ConfigPath() string {
	return i.configPath
}

// Set changes a value for this instance and marks it to be written by Save
func (i *Instance) Set(key string, value interface{}) error {
	if err := i.set(key, value); err != nil {
		return err
	}
	if i.stored == nil {
		i.stored = &Instance{}
	}
	return i.stored.set(key, value)
}

func (i *Instance) set(key string, value interface{}) error {
	var err error
	switch key {
	case KeyPython:
		i.Python, err = cast.ToStringE(value)
	case KeyVersion:
		i.Version, err = cast.ToStringE(value)
	case KeyPrefix:
		i.Prefix, err = cast.ToStringE(value)
	case KeyPlatform:
		i.Platform, err = cast.ToStringE(value)
	case KeyOutput:
		i.Output, err = cast.ToStringE(value)
	case KeyProbeTimeout:
		i.ProbeTimeout, err = cast.ToDurationE(value)
	default:
		return errs.New("Unknown config key: %s", key)
	}
	if err != nil {
		return errs.Wrap(err, "Invalid value for %s: %v", key, value)
	}
	return nil
}

// Save writes the config file contents and the keys changed through Set back to the config file. Defaults and
// environment overrides are not written.
func (i *Instance) Save() error {
	stored := i.stored
	if stored == nil {
		stored = &Instance{}
	}
	data, err := yaml.Marshal(stored)
	if err != nil {
		return errs.Wrap(err, "Could not marshal config")
	}
	return fileutils.WriteFile(i.configPath, data)
}

// ConfigDir returns the directory holding the config file
func ConfigDir() (string, error) {
	if dir := os.Getenv(constants.ConfigEnvVarName); dir != "" {
		return dir, nil
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return "", errs.Wrap(err, "Could not determine user config dir")
	}
	return filepath.Join(base, constants.ConfigNamespace), nil
}
