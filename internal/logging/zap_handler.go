package logging

import (
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var zapLevels = map[string]zapcore.Level{
	"DEBUG":    zapcore.DebugLevel,
	"INFO":     zapcore.InfoLevel,
	"WARNING":  zapcore.WarnLevel,
	"ERROR":    zapcore.ErrorLevel,
	"NOTICE":   zapcore.InfoLevel,
	"CRITICAL": zapcore.DPanicLevel,
}

// zapHandler writes one JSON object per message, for consumption by CI logs
type zapHandler struct {
	mu      sync.Mutex
	logger  *zap.Logger
	verbose bool
	tail    *ringBuffer
}

// NewJSONHandler returns a handler that emits structured JSON lines to out when verbose.
func NewJSONHandler(out io.Writer) LoggingHandler {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "time"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(out), zapcore.DebugLevel)

	return &zapHandler{
		logger: zap.New(core),
		tail:   newRingBuffer(tailSize),
	}
}

// SetFormatter is a no-op, the JSON encoder owns the layout
func (h *zapHandler) SetFormatter(Formatter) {}

func (h *zapHandler) SetVerbose(v bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.verbose = v
}

func (h *zapHandler) Emit(ctx *MessageContext, message string, args ...interface{}) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(args) > 0 {
		message = fmt.Sprintf(message, args...)
	}
	if _, err := h.tail.Write([]byte(DefaultFormatter.Format(ctx, "%s", message) + "\n")); err != nil {
		return err
	}

	if !h.verbose {
		return nil
	}

	lvl, ok := zapLevels[ctx.Level]
	if !ok {
		lvl = zapcore.InfoLevel
	}
	if ce := h.logger.Check(lvl, message); ce != nil {
		ce.Time = ctx.TimeStamp
		ce.Write(
			zap.String("level_name", ctx.Level),
			zap.String("file", ctx.File),
			zap.Int("line", ctx.Line),
		)
	}
	return nil
}

func (h *zapHandler) readTail() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.tail.Read()
}

func (h *zapHandler) Close() {
	_ = h.logger.Sync()
}
