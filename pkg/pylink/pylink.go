// Package pylink resolves the include paths, library paths and library names needed to link a compilation unit
// against the Python runtime, and appends them to a build environment.
package pylink

import (
	"path"
	"regexp"
	"strconv"
	"strings"

	"github.com/hashicorp/go-version"
	"github.com/thoas/go-funk"

	"github.com/ActiveState/pylink/internal/locale"
	"github.com/ActiveState/pylink/pkg/buildenv"
	"github.com/ActiveState/pylink/pkg/sysinfo"
)

// ExtensionName is the name the resolver registers under
const ExtensionName = "python"

// UtilLibrary supplies the pseudo-terminal functions the interpreter library depends on for most posix-like
// platforms
const UtilLibrary = "util"

// platforms that link against the interpreter without the util library
var noUtilPlatforms = []string{sysinfo.Cygwin, sysinfo.Irix}

// Interpreter describes the Python installation to link against
type Interpreter struct {
	// Version is the major.minor version, eg. "2.3"
	Version string `json:"version" locale:"interpreter_version,Version"`
	// Prefix is the installation prefix, eg. "/usr"
	Prefix string `json:"prefix" locale:"interpreter_prefix,Prefix"`
}

// NewInterpreter builds an Interpreter from a full or partial version string, eg. "2.3.5" or "3.11"
func NewInterpreter(ver, prefix string) (*Interpreter, error) {
	mm, err := MajorMinor(ver)
	if err != nil {
		return nil, err
	}
	return &Interpreter{Version: mm, Prefix: prefix}, nil
}

// leadingRelease matches the release at the start of a version string go-version rejects, eg. "2.7.15+" from a
// distribution build
var leadingRelease = regexp.MustCompile(`^v?(\d+)\.(\d+)`)

// MajorMinor normalizes a version string to "major.minor". Trailing build information such as "3.11.4 (main, ...)",
// "3.13.0rc1" or "2.7.15+" is tolerated.
func MajorMinor(ver string) (string, error) {
	fields := strings.Fields(ver)
	if len(fields) == 0 {
		return "", locale.NewInputError("err_version_empty", "No interpreter version was given.")
	}
	raw := fields[0]

	v, err := version.NewVersion(strings.TrimRight(raw, "+"))
	if err != nil {
		m := leadingRelease.FindStringSubmatch(raw)
		if m == nil {
			return "", locale.WrapInputError(err, "err_version_invalid", "Invalid interpreter version: {{.V0}}", ver)
		}
		return m[1] + "." + m[2], nil
	}

	// go-version pads missing segments with zeros, "3" must not pass as "3.0"
	segments := v.Segments()
	if len(segments) < 2 || !strings.Contains(raw, ".") {
		return "", locale.NewInputError("err_version_invalid", "Invalid interpreter version: {{.V0}}", ver)
	}

	return strings.Join([]string{strconv.Itoa(segments[0]), strconv.Itoa(segments[1])}, "."), nil
}

// PyBase is the token used to derive path and library names, eg. "python2.3"
func (i *Interpreter) PyBase() string {
	return "python" + i.Version
}

// IncludePath is where the interpreter's headers live on posix-like platforms
func (i *Interpreter) IncludePath() string {
	return path.Join(i.Prefix, "include", i.PyBase())
}

// LibPath is where the interpreter's link library lives on posix-like platforms
func (i *Interpreter) LibPath() string {
	return path.Join(i.Prefix, "lib", i.PyBase(), "config")
}

// WindowsLibrary is the import library name used on win32, eg. "python23.lib"
func (i *Interpreter) WindowsLibrary() string {
	return "python" + strings.Replace(i.Version, ".", "", 1) + ".lib"
}

// Resolver is the build tool extension that links against an Interpreter
type Resolver struct {
	interpreter Interpreter
}

var _ buildenv.Extension = &Resolver{}

// New returns a Resolver for the given interpreter
func New(interpreter Interpreter) *Resolver {
	return &Resolver{interpreter}
}

// Name implements buildenv.Extension
func (r *Resolver) Name() string {
	return ExtensionName
}

// Interpreter returns the interpreter this resolver links against
func (r *Resolver) Interpreter() Interpreter {
	return r.interpreter
}

// IsAvailable implements buildenv.Extension. The resolver is always available; whether the interpreter's headers
// and libraries are actually installed only surfaces when compiling, or through Verify.
func (r *Resolver) IsAvailable(env *buildenv.Environment) bool {
	return true
}

// Apply implements buildenv.Extension. It reads PLATFORM and appends to LIBS, and on anything but win32 also to
// CPPPATH and LIBPATH. Applying twice appends everything twice.
func (r *Resolver) Apply(env *buildenv.Environment) {
	platform := env.Platform()
	if platform == sysinfo.Win32 {
		env.Append(buildenv.KeyLibs, r.interpreter.WindowsLibrary())
		return
	}

	env.Append(buildenv.KeyCPPPath, r.interpreter.IncludePath())
	env.Append(buildenv.KeyLibPath, r.interpreter.LibPath())
	env.Append(buildenv.KeyLibs, "lib"+r.interpreter.PyBase())

	if !funk.ContainsString(noUtilPlatforms, platform) {
		env.Append(buildenv.KeyLibs, UtilLibrary)
	}
}
