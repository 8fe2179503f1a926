// Package logging is a small leveled logger modelled after Python's logging module.
//
// Logging is done just like calling fmt.Sprintf:
//
//	logging.Info("This object is %s and that is %s", obj, that)
//
// Messages are handed to the current LoggingHandler, which decides where they end up. The default handler only
// writes to stderr when verbose output was requested, but always keeps the most recent output in memory so it can
// be surfaced when something goes wrong.
package logging

// This package may NOT depend on errs or locale (directly or indirectly)

import (
	"fmt"
	"os"
	"path"
	"runtime"
	"strings"
	"sync"
	"time"
)

const (
	DEBUG    = 1
	INFO     = 2
	WARNING  = 4
	WARN     = 4
	ERROR    = 8
	NOTICE   = 16
	CRITICAL = 32
	QUIET    = ERROR | NOTICE | CRITICAL
	NORMAL   = INFO | WARN | ERROR | NOTICE | CRITICAL
	ALL      = 255
	NOTHING  = 0
)

var levelsAscending = []int{DEBUG, INFO, WARNING, ERROR, NOTICE, CRITICAL}

var LevelsByName = map[string]int{
	"DEBUG":    DEBUG,
	"INFO":     INFO,
	"WARNING":  WARN,
	"WARN":     WARN,
	"ERROR":    ERROR,
	"NOTICE":   NOTICE,
	"CRITICAL": CRITICAL,
	"QUIET":    QUIET,
	"NORMAL":   NORMAL,
	"ALL":      ALL,
	"NOTHING":  NOTHING,
}

var mu sync.Mutex

// default logging level is ALL
var level = ALL

// SetLevel sets the logging level as a bit mask of active levels.
//
// e.g. for INFO and ERROR use:
//
//	SetLevel(logging.INFO | logging.ERROR)
func SetLevel(l int) {
	mu.Lock()
	defer mu.Unlock()
	level = l
}

func currentLevel() int {
	mu.Lock()
	defer mu.Unlock()
	return level
}

// SetMinimalLevel enables the given level and every level more severe than it.
//
// the severity order is DEBUG, INFO, WARNING, ERROR, NOTICE, CRITICAL
func SetMinimalLevel(l int) {
	newLevel := 0
	for _, level := range levelsAscending {
		if level >= l {
			newLevel |= level
		}
	}
	SetLevel(newLevel)
}

// SetMinimalLevelByName sets the minimal level by name, useful for config files and env vars. Case insensitive.
func SetMinimalLevelByName(l string) error {
	l = strings.ToUpper(strings.TrimSpace(l))
	level, found := LevelsByName[l]
	if !found {
		return fmt.Errorf("invalid level %s", l)
	}

	SetMinimalLevel(level)
	return nil
}

// LoggingHandler is a pluggable log sink
type LoggingHandler interface {
	SetFormatter(Formatter)
	SetVerbose(bool)
	Emit(ctx *MessageContext, message string, args ...interface{}) error
	Close()
}

var currentHandler LoggingHandler = newStandardHandler(os.Stderr)

// SetHandler sets the current handler of the library
func SetHandler(h LoggingHandler) {
	mu.Lock()
	defer mu.Unlock()
	currentHandler = h
}

func CurrentHandler() LoggingHandler {
	mu.Lock()
	defer mu.Unlock()
	return currentHandler
}

type MessageContext struct {
	Level     string
	File      string
	Line      int
	TimeStamp time.Time
}

// get the stack (line + file) context to return the caller to the log
func getContext(level string, skipDepth int) *MessageContext {
	_, file, line, _ := runtime.Caller(skipDepth)
	file = path.Base(file)

	return &MessageContext{
		Level:     level,
		File:      file,
		TimeStamp: time.Now(),
		Line:      line,
	}
}

func writeMessage(level string, msg string, args ...interface{}) {
	writeMessageDepth(4, level, msg, args...)
}

func writeMessageDepth(depth int, level string, msg string, args ...interface{}) {
	ctx := getContext(level, depth)

	// Lazily evaluate arguments of the form func() interface{}
	for i, arg := range args {
		if f, ok := arg.(func() interface{}); ok {
			args[i] = f()
		}
	}

	if err := CurrentHandler().Emit(ctx, msg, args...); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing log message: %v\n", err)
		fmt.Fprintln(os.Stderr, DefaultFormatter.Format(ctx, msg, args...))
	}
}

// Debug outputs debug logging messages
func Debug(msg string, args ...interface{}) {
	if currentLevel()&DEBUG != 0 {
		writeMessage("DEBUG", msg, args...)
	}
}

// Info outputs INFO level messages
func Info(msg string, args ...interface{}) {
	if currentLevel()&INFO != 0 {
		writeMessage("INFO", msg, args...)
	}
}

// Warning outputs WARNING level messages
func Warning(msg string, args ...interface{}) {
	if currentLevel()&WARN != 0 {
		writeMessage("WARNING", msg, args...)
	}
}

// Error outputs ERROR level messages
func Error(msg string, args ...interface{}) {
	if currentLevel()&ERROR != 0 {
		writeMessage("ERROR", msg, args...)
	}
}

// Notice is like info but for really important stuff
func Notice(msg string, args ...interface{}) {
	if currentLevel()&NOTICE != 0 {
		writeMessage("NOTICE", msg, args...)
	}
}

// Critical outputs a CRITICAL level message
func Critical(msg string, args ...interface{}) {
	if currentLevel()&CRITICAL != 0 {
		writeMessage("CRITICAL", msg, args...)
	}
}

func Close() {
	CurrentHandler().Close()
}
