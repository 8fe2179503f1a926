package errs

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/ActiveState/pylink/internal/osutils/stacktrace"
	"github.com/ActiveState/pylink/internal/rtutils"
)

// Error enforces errors that include a stacktrace
type Error interface {
	Unwrap() error
	Stack() *stacktrace.Stacktrace
}

type ErrorTips interface {
	error
	AddTips(...string)
	ErrorTips() []string
}

// WrappedErr is what we use for errors created from this package, this does not mean every error returned from this
// package is wrapping something, it simply has the plumbing to.
type WrappedErr struct {
	message string
	wrapped error
	stack   *stacktrace.Stacktrace
	tips    []string
}

// Error returns the error message
func (e *WrappedErr) Error() string {
	return e.message
}

// Unwrap returns the parent error, if one exists
func (e *WrappedErr) Unwrap() error {
	return e.wrapped
}

// Stack returns the stacktrace for where this error was created
func (e *WrappedErr) Stack() *stacktrace.Stacktrace {
	return e.stack
}

func (e *WrappedErr) AddTips(tips ...string) {
	e.tips = append(e.tips, tips...)
}

func (e *WrappedErr) ErrorTips() []string {
	return e.tips
}

func newError(message string, wrapTarget error) *WrappedErr {
	return &WrappedErr{
		message,
		wrapTarget,
		stacktrace.GetWithSkip([]string{rtutils.CurrentFile()}),
		nil,
	}
}

// New creates a new error, similar to errors.New
func New(message string, args ...interface{}) error {
	msg := message
	if len(args) > 0 {
		msg = fmt.Sprintf(message, args...)
	}
	return newError(msg, nil)
}

// Wrap creates a new error that wraps the given error
func Wrap(wrapTarget error, message string, args ...interface{}) error {
	msg := message
	if len(args) > 0 {
		msg = fmt.Sprintf(message, args...)
	}
	return newError(msg, wrapTarget)
}

// Join all error messages in the Unwrap stack
func Join(err error, sep string) *WrappedErr {
	var message []string
	for err != nil {
		message = append(message, err.Error())
		err = errors.Unwrap(err)
	}
	return newError(strings.Join(message, sep), nil)
}

// JoinMessage returns all error messages in the Unwrap stack, joined by a colon
func JoinMessage(err error) string {
	return Join(err, ": ").Error()
}

// AddTips attaches tips to the first error in the chain that supports them, wrapping the error if none does
func AddTips(err error, tips ...string) error {
	var errTips ErrorTips
	if !errors.As(err, &errTips) {
		wrapped := newError(err.Error(), err)
		wrapped.AddTips(tips...)
		return wrapped
	}
	errTips.AddTips(tips...)
	return err
}

// Unpack will recursively unpack an error into a list of errors
func Unpack(err error) []error {
	result := []error{}
	for err != nil {
		result = append(result, err)
		err = errors.Unwrap(err)
	}
	return result
}

// Matches is an analog for errors.As that just checks whether err matches the given type, so you can do:
// errs.Matches(err, &ErrStruct{})
// Without having to first assign it to a variable
// This is useful if you ONLY care about the bool return value and not about setting the variable
func Matches(err error, target interface{}) bool {
	if target == nil {
		panic("errors: target cannot be nil")
	}

	val := reflect.ValueOf(target)
	targetType := val.Type()
	if targetType.Kind() != reflect.Interface && !targetType.Implements(reflect.TypeOf((*error)(nil)).Elem()) {
		panic("errors: *target must be interface or implement error")
	}

	for _, err := range Unpack(err) {
		if reflect.TypeOf(err).AssignableTo(targetType) {
			return true
		}
	}
	return false
}
