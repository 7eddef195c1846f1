// Package logger provides logging utilities for the normalizer.
package logger

import (
	"errors"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger configuration errors.
var (
	ErrInvalidLevel  = errors.New("log level must be one of: debug, info, warn, error")
	ErrInvalidFormat = errors.New("log format must be 'console' or 'json'")
)

const timeFormat = "2006-01-02T15:04:05.000Z07:00"

// Config holds logger configuration.
type Config struct {
	Level  string // debug, info, warn, error
	Format string // console, json
	Output io.Writer
}

// Logger provides structured logging functionality.
type Logger struct {
	internal *zap.Logger
}

// New creates a logger from cfg. Output defaults to stderr; stdout carries data.
func New(cfg Config) (*Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	encoder, err := createEncoder(cfg.Format)
	if err != nil {
		return nil, err
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(out), level)

	return NewWithCore(core), nil
}

// NewWithCore wraps an existing core, e.g. an observer core in tests.
func NewWithCore(core zapcore.Core) *Logger {
	return &Logger{
		internal: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)),
	}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{internal: zap.NewNop()}
}

// ParseLevel converts a level name to a zapcore.Level. Empty means info.
func ParseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info", "":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, ErrInvalidLevel
	}
}

func createEncoder(format string) (zapcore.Encoder, error) {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.TimeEncoderOfLayout(timeFormat),
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	switch strings.ToLower(format) {
	case "console", "":
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		return zapcore.NewConsoleEncoder(encoderConfig), nil
	case "json":
		return zapcore.NewJSONEncoder(encoderConfig), nil
	default:
		return nil, ErrInvalidFormat
	}
}

// Info logs an info level message.
func (l *Logger) Info(msg string, fields ...zap.Field) {
	l.internal.Info(msg, fields...)
}

// Error logs an error level message.
func (l *Logger) Error(msg string, fields ...zap.Field) {
	l.internal.Error(msg, fields...)
}

// Debug logs a debug level message.
func (l *Logger) Debug(msg string, fields ...zap.Field) {
	l.internal.Debug(msg, fields...)
}

// Warn logs a warning level message.
func (l *Logger) Warn(msg string, fields ...zap.Field) {
	l.internal.Warn(msg, fields...)
}

// With creates a child logger with the given fields.
func (l *Logger) With(fields ...zap.Field) *Logger {
	return &Logger{
		internal: l.internal.With(fields...),
	}
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	return l.internal.Sync()
}
