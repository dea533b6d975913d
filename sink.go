package floatmath

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Sink receives human-readable diagnostics, like boundary violations.
// A sink used by several goroutines must be safe for concurrent use.
type Sink interface {
	Warn(msg string)
}

// SinkFunc is an adapter to use ordinary functions as sinks.
type SinkFunc func(msg string)

// Warn calls f(msg).
func (f SinkFunc) Warn(msg string) {
	f(msg)
}

type nopSink struct{}

func (nopSink) Warn(string) {}

// NopSink returns a sink, which drops all the messages.
func NopSink() Sink {
	return nopSink{}
}

type zapSink struct {
	logger *zap.Logger
}

// NewZapSink returns a sink, which writes messages as warnings to the given logger.
// A nil logger is replaced with a no-op one.
func NewZapSink(logger *zap.Logger) Sink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return zapSink{logger: logger}
}

func (s zapSink) Warn(msg string) {
	s.logger.Warn(msg)
}

// newStderrLogger returns a logger, which prints warnings and errors to stderr.
func newStderrLogger() *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(os.Stderr), zap.WarnLevel)
	return zap.New(core).Named("floatmath")
}
