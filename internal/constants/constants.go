package constants

import "time"

// LibraryName contains the main name of this library
const LibraryName = "pylink"

// LibraryOwner contains the name of the owner of this library
const LibraryOwner = "ActiveState"

// CommandName holds the name of our command
const CommandName = "pylink"

// ConfigNamespace holds the appdata folder name under which we store our config
const ConfigNamespace = "pylink"

// ConfigFileName is the name of the user configuration file
const ConfigFileName = "config.yaml"

// ConfigEnvVarName is the env var used to override the config dir
const ConfigEnvVarName = "PYLINK_CONFIGDIR"

// PythonEnvVarName overrides the interpreter executable used for detection
const PythonEnvVarName = "PYLINK_PYTHON"

// VersionEnvVarName overrides the interpreter version
const VersionEnvVarName = "PYLINK_VERSION"

// PrefixEnvVarName overrides the interpreter installation prefix
const PrefixEnvVarName = "PYLINK_PREFIX"

// PlatformEnvVarName overrides the target platform tag
const PlatformEnvVarName = "PYLINK_PLATFORM"

// ProbeTimeoutEnvVarName overrides how long interpreter detection may take
const ProbeTimeoutEnvVarName = "PYLINK_PROBE_TIMEOUT"

// VerboseEnvVarName enables verbose logging
const VerboseEnvVarName = "VERBOSE"

// LogLevelEnvVarName sets the minimal log level by name
const LogLevelEnvVarName = "PYLINK_LOGLEVEL"

// LogFormatEnvVarName selects the log encoding, set to "json" for structured output
const LogFormatEnvVarName = "PYLINK_LOGFORMAT"

// DefaultProbeTimeout bounds how long interpreter detection may take
const DefaultProbeTimeout = 10 * time.Second

// DefaultPythonCandidates are the executables tried, in order, when detecting the interpreter
var DefaultPythonCandidates = []string{"python3", "python"}

// LockRetryDelay is how long to wait between attempts to acquire an environment file lock
const LockRetryDelay = 100 * time.Millisecond

// Version is set at build time with -ldflags "-X github.com/ActiveState/pylink/internal/constants.Version=..."
var Version = "dev"
