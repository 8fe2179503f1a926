package locale

import (
	"errors"
	"strings"

	"github.com/ActiveState/pylink/internal/errs"
	"github.com/ActiveState/pylink/internal/osutils/stacktrace"
	"github.com/ActiveState/pylink/internal/rtutils"
)

var _ ErrorLocalizer = &LocalizedError{}

// LocalizedError is an error that has the concept of user facing (localized) errors as well as whether an error is due
// to user input or not
type LocalizedError struct {
	wrapped   error
	tips      []string
	localized string
	stack     *stacktrace.Stacktrace
	inputErr  bool
}

// Error is the error message
func (e *LocalizedError) Error() string {
	return e.localized
}

// LocaleError is the user facing error message, it's the same as Error() but identifies it as being user facing
func (e *LocalizedError) LocaleError() string {
	return e.localized
}

// Stack is the stacktrace leading up to where this error was triggered
func (e *LocalizedError) Stack() *stacktrace.Stacktrace {
	return e.stack
}

// Unwrap returns the parent error, if applicable
func (e *LocalizedError) Unwrap() error {
	return e.wrapped
}

// InputError returns whether this is an error due to user input
func (e *LocalizedError) InputError() bool {
	return e.inputErr
}

func (e *LocalizedError) ErrorTips() []string {
	return e.tips
}

func (e *LocalizedError) AddTips(tips ...string) {
	e.tips = append(e.tips, tips...)
}

// ErrorLocalizer represents a localized error
type ErrorLocalizer interface {
	error
	LocaleError() string
}

// ErrorInput represents a user input error
type ErrorInput interface {
	InputError() bool
}

// NewError creates a new error, it does a locale.Tl lookup of the given id, if the lookup fails it will use the
// locale string instead
func NewError(id string, args ...string) *LocalizedError {
	return WrapError(nil, id, args...)
}

// WrapError creates a new error that wraps the given error, it does a locale.Tl lookup of the given id, if the lookup
// fails it will use the locale string instead
func WrapError(err error, id string, args ...string) *LocalizedError {
	return newLocalizedError(err, false, id, args...)
}

// NewInputError is like NewError but marks it as an input error
func NewInputError(id string, args ...string) *LocalizedError {
	return WrapInputError(nil, id, args...)
}

// WrapInputError is like WrapError but marks it as an input error
func WrapInputError(err error, id string, args ...string) *LocalizedError {
	return newLocalizedError(err, true, id, args...)
}

func newLocalizedError(err error, input bool, id string, args ...string) *LocalizedError {
	locale := id
	if len(args) > 0 {
		locale, args = args[0], args[1:]
	}
	if locale == "" {
		locale = id
	}

	return &LocalizedError{
		wrapped:   err,
		tips:      []string{},
		localized: Tl(id, locale, args...),
		stack:     stacktrace.GetWithSkip([]string{rtutils.CurrentFile()}),
		inputErr:  input,
	}
}

// HasError checks the error chain for an ErrorLocalizer
func HasError(err error) bool {
	var el ErrorLocalizer
	return errors.As(err, &el)
}

// IsInputError checks if the given error contains a InputError anywhere in the unwrap stack
func IsInputError(err error) bool {
	if err == nil {
		return false
	}
	for _, err := range errs.Unpack(err) {
		errInput, ok := err.(ErrorInput)
		if ok && errInput.InputError() {
			return true
		}
	}
	return false
}

// JoinedErrorMessage joins all error messages in the Unwrap stack that are localized or user facing, falling back
// to the raw error chain when there are none
func JoinedErrorMessage(err error) string {
	var message []string
	for _, err := range errs.Unpack(err) {
		switch v := err.(type) {
		case ErrorLocalizer:
			message = append(message, v.LocaleError())
		case errs.UserFacingError:
			message = append(message, v.UserError())
		}
	}
	if len(message) == 0 {
		return errs.JoinMessage(err)
	}
	return strings.Join(message, ": ")
}

// ErrorTips collects the tips of every error in the Unwrap stack
func ErrorTips(err error) []string {
	tips := []string{}
	for _, err := range errs.Unpack(err) {
		if tipper, ok := err.(interface{ ErrorTips() []string }); ok {
			tips = append(tips, tipper.ErrorTips()...)
		}
	}
	return tips
}

// UnpackError recursively unpacks the given error and returns all localized errors
func UnpackError(err error) []error {
	var errors []error
	for _, err := range errs.Unpack(err) {
		if _, isLocaleError := err.(ErrorLocalizer); isLocaleError {
			errors = append(errors, err)
		}
	}

	return errors
}
