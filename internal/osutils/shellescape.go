package osutils

import (
	"fmt"
	"regexp"
	"runtime"
	"strings"
)

// ShellEscape serve to escape arguments passed to shell commands
type ShellEscape struct {
	wordPattern   *regexp.Regexp
	escapePattern *regexp.Regexp
	escapeWith    string
	batch         bool
}

// NewBashEscaper creates a new instance of ShellEscape that's configured for escaping bash style arguments
func NewBashEscaper() *ShellEscape {
	return &ShellEscape{
		regexp.MustCompile(`^[\w]+$`),
		regexp.MustCompile(`(\\|"|\$|` + "`" + `)`),
		`\$1`,
		false,
	}
}

// NewBatchEscaper creates a new instance of ShellEscape that's configured for escaping batch style arguments
func NewBatchEscaper() *ShellEscape {
	return &ShellEscape{
		regexp.MustCompile(`^[\w]+$`),
		regexp.MustCompile(`"`),
		`""`,
		true,
	}
}

// NewHostEscaper returns the escaper for the shell of the host OS
func NewHostEscaper() *ShellEscape {
	if runtime.GOOS == "windows" {
		return NewBatchEscaper()
	}
	return NewBashEscaper()
}

// EscapeLineEnd will escape any line end characters that require escaping for the purpose of quoting
func (s *ShellEscape) EscapeLineEnd(value string) string {
	value = strings.Replace(value, "\n", `\n`, -1)
	value = strings.Replace(value, "\r", `\r`, -1)
	return value
}

// Escape will escape any characters that require escaping for the purpose of quoting
func (s *ShellEscape) Escape(value string) string {
	return s.escapePattern.ReplaceAllString(value, s.escapeWith)
}

// Quote returns value as a single shell word, quoting it unless it consists of word characters only
func (s *ShellEscape) Quote(value string) string {
	if len(value) == 0 {
		return `""`
	}
	if s.wordPattern.MatchString(value) {
		return value
	}
	return `"` + s.EscapeLineEnd(s.Escape(value)) + `"`
}

// Assignment renders a statement that sets the environment variable name to value
func (s *ShellEscape) Assignment(name, value string) string {
	if s.batch {
		// the quotes around the whole assignment keep them out of the value
		return fmt.Sprintf(`set "%s=%s"`, name, s.EscapeLineEnd(value))
	}
	return name + "=" + s.Quote(value)
}
