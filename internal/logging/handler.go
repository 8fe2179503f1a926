package logging

import (
	"fmt"
	"io"
	"sync"
)

// tailSize is how much recent log output is kept in memory
const tailSize = 8 * 1024

type standardHandler struct {
	mu        sync.Mutex
	formatter Formatter
	out       io.Writer
	verbose   bool
	tail      *ringBuffer
}

func newStandardHandler(out io.Writer) *standardHandler {
	return &standardHandler{
		formatter: DefaultFormatter,
		out:       out,
		tail:      newRingBuffer(tailSize),
	}
}

func (l *standardHandler) SetFormatter(f Formatter) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.formatter = f
}

func (l *standardHandler) SetVerbose(v bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.verbose = v
}

func (l *standardHandler) Emit(ctx *MessageContext, message string, args ...interface{}) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	message = l.formatter.Format(ctx, message, args...) + "\n"
	if _, err := l.tail.Write([]byte(message)); err != nil {
		return err
	}

	if !l.verbose {
		return nil
	}

	if _, err := fmt.Fprint(l.out, message); err != nil {
		return err
	}
	return nil
}

func (l *standardHandler) Close() {}

func (l *standardHandler) readTail() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tail.Read()
}

type tailer interface {
	readTail() string
}

// Tail returns the most recent log output, regardless of whether it was written out
func Tail() string {
	h, ok := CurrentHandler().(tailer)
	if !ok {
		return ""
	}
	return h.readTail()
}
