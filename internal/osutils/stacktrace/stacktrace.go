package stacktrace

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// Stacktrace represents a stacktrace
type Stacktrace struct {
	Frames []Frame
}

// Frame is a single frame in a stacktrace
type Frame struct {
	Func    string
	File    string
	Path    string
	Package string
	Line    int
}

// FrameCap is used to ensure we don't collect overly large stacktraces
const FrameCap = 20

// String returns a string representation of the stacktrace
func (t *Stacktrace) String() string {
	result := []string{}
	for _, frame := range t.Frames {
		result = append(result, fmt.Sprintf(`%s:%s:%d`, frame.Path, frame.Func, frame.Line))
	}
	return strings.Join(result, "\n")
}

// Get returns a stacktrace for the caller
func Get() *Stacktrace {
	return GetWithSkip([]string{})
}

// GetWithSkip returns a stacktrace, omitting any frames that live in the given files.
// Frames from this package are always omitted.
func GetWithSkip(skipFiles []string) *Stacktrace {
	stacktrace := &Stacktrace{}
	pc := make([]uintptr, FrameCap)
	n := runtime.Callers(1, pc)
	if n == 0 {
		return stacktrace
	}

	pc = pc[:n]
	frames := runtime.CallersFrames(pc)
	for {
		frame, more := frames.Next()
		pkg := strings.Split(filepath.Base(frame.Function), ".")[0]

		skip := strings.HasSuffix(frame.File, "stacktrace/stacktrace.go")
		for _, skipFile := range skipFiles {
			if frame.File == skipFile {
				skip = true
				break
			}
		}

		if !skip {
			stacktrace.Frames = append(stacktrace.Frames, Frame{
				Func:    filepath.Base(frame.Function),
				File:    filepath.Base(frame.File),
				Path:    frame.File,
				Package: pkg,
				Line:    frame.Line,
			})
		}

		if !more {
			break
		}
	}

	return stacktrace
}
