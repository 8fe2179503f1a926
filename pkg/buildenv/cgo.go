package buildenv

import (
	"strings"

	"github.com/ActiveState/pylink/internal/osutils"
	"github.com/ActiveState/pylink/internal/output"
)

// CgoFlags holds the compiler and linker flags derived from an environment, in the form cgo expects them
type CgoFlags struct {
	CFlags  []string `json:"CGO_CFLAGS"`
	LDFlags []string `json:"CGO_LDFLAGS"`
}

// CgoFlags translates CPPPATH, LIBPATH and LIBS into -I, -L and -l flags, keeping their order
func (e *Environment) CgoFlags() CgoFlags {
	flags := CgoFlags{CFlags: []string{}, LDFlags: []string{}}
	for _, p := range e.List(KeyCPPPath) {
		flags.CFlags = append(flags.CFlags, "-I"+p)
	}
	for _, p := range e.List(KeyLibPath) {
		flags.LDFlags = append(flags.LDFlags, "-L"+p)
	}
	for _, l := range e.List(KeyLibs) {
		flags.LDFlags = append(flags.LDFlags, "-l"+LinkName(l))
	}
	return flags
}

// LinkName turns a logical library name into the name a -l flag expects: "libpython3.11" becomes "python3.11" and
// "python311.lib" becomes "python311"
func LinkName(lib string) string {
	name := strings.TrimSuffix(lib, ".lib")
	if strings.HasPrefix(name, "lib") && len(name) > len("lib") {
		name = strings.TrimPrefix(name, "lib")
	}
	return name
}

// Env returns the flags as KEY="value" lines suitable for a posix shell or a Makefile
func (f CgoFlags) Env() []string {
	return f.EnvFor(osutils.NewBashEscaper())
}

// EnvFor returns the flags as assignments in the syntax of the given shell
func (f CgoFlags) EnvFor(esc *osutils.ShellEscape) []string {
	return []string{
		esc.Assignment("CGO_CFLAGS", joinFlags(f.CFlags)),
		esc.Assignment("CGO_LDFLAGS", joinFlags(f.LDFlags)),
	}
}

// joinFlags joins flags into a single CGO_*FLAGS value. The go command splits these on whitespace and honors
// single or double quotes around a whole field, it has no escape character.
func joinFlags(flags []string) string {
	quoted := make([]string, 0, len(flags))
	for _, flag := range flags {
		quoted = append(quoted, quoteFlag(flag))
	}
	return strings.Join(quoted, " ")
}

func quoteFlag(flag string) string {
	switch {
	case !strings.ContainsAny(flag, " \t\r\n'\""):
		return flag
	case !strings.Contains(flag, "'"):
		return "'" + flag + "'"
	default:
		return `"` + flag + `"`
	}
}

func (f CgoFlags) String() string {
	return strings.Join(f.Env(), "\n")
}

// MarshalOutput renders plain output for the shell of the host
func (f CgoFlags) MarshalOutput(format output.Format) interface{} {
	if format == output.JSONFormatName {
		return f
	}
	return strings.Join(f.EnvFor(osutils.NewHostEscaper()), "\n")
}
