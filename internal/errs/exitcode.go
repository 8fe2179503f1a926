package errs

import (
	"errors"
)

type ExitCodeable interface {
	ExitCode() int
}

type ExitCode struct {
	code       int
	wrappedErr error
}

func WrapExitCode(err error, code int) error {
	return &ExitCode{code, err}
}

func (e *ExitCode) Error() string {
	return "ExitCode"
}

func (e *ExitCode) Unwrap() error {
	return e.wrappedErr
}

func (e *ExitCode) ExitCode() int {
	return e.code
}

// UnwrapExitCode returns the exit code carried by the error chain, or 1 for any other non-nil error
func UnwrapExitCode(err error) int {
	if err == nil {
		return 0
	}

	var eerr ExitCodeable
	if errors.As(err, &eerr) {
		return eerr.ExitCode()
	}

	return 1
}
