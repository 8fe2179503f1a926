package rtutils

import "runtime"

// CurrentFile returns the path of the Go file that called it
func CurrentFile() string {
	pc := make([]uintptr, 2)
	n := runtime.Callers(1, pc)
	if n == 0 {
		return ""
	}

	pc = pc[:n]
	frames := runtime.CallersFrames(pc)

	frame, _ := frames.Next()
	frame, _ = frames.Next() // Skip rtutils.go

	return frame.File
}

// Closer calls the closer and assigns its error to rerr, unless rerr already holds an error.
// Intended for use with defer on functions that have a named error return.
func Closer(closer func() error, rerr *error) {
	err := closer()
	if err != nil && *rerr == nil {
		*rerr = err
	}
}
