// Package logging wraps zap with the module's logging conventions: a tee of
// console and rotating JSON file output, with the level driven by environment
// configuration.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the structured logger handed to the driver and the pipeline
// runner. In development mode the console output is colored and
// human-readable; otherwise both sinks emit JSON.
type Logger struct {
	zap         *zap.Logger
	development bool
	filePath    string
}

// New builds a Logger that tees to stdout and a rotating file at filePath.
//
// Development mode lowers the level floor to debug and switches the console
// encoder to the human-readable form. The env var PIXPROC_LOG_LEVEL overrides
// the level either way.
func New(development bool, filePath string) *Logger {
	defaultLevel := zapcore.InfoLevel
	if development {
		defaultLevel = zapcore.DebugLevel
	}
	level := ParseLevel("PIXPROC_LOG_LEVEL", defaultLevel)

	fileWriter := newRotatingWriter(filePath, RotationConfig{Compress: true})
	core := newTeeCore(level, zapcore.AddSync(os.Stdout), fileWriter, development)

	return &Logger{
		zap:         zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)),
		development: development,
		filePath:    filePath,
	}
}

// NewWithWriters builds a Logger over caller-supplied sinks. Used by tests to
// capture output without touching the filesystem.
func NewWithWriters(level zapcore.Level, console, file zapcore.WriteSyncer, development bool) *Logger {
	core := newTeeCore(level, console, file, development)
	return &Logger{
		zap:         zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)),
		development: development,
	}
}

// newTeeCore combines a console core and a JSON file core at the same level.
func newTeeCore(level zapcore.Level, console, file zapcore.WriteSyncer, development bool) zapcore.Core {
	fileCore := zapcore.NewCore(zapcore.NewJSONEncoder(fileEncoderConfig()), file, level)

	var consoleEncoder zapcore.Encoder
	if development {
		consoleEncoder = zapcore.NewConsoleEncoder(consoleEncoderConfig())
	} else {
		consoleEncoder = zapcore.NewJSONEncoder(fileEncoderConfig())
	}
	consoleCore := zapcore.NewCore(consoleEncoder, console, level)

	return zapcore.NewTee(consoleCore, fileCore)
}

// IsDevelopment reports whether the logger was built in development mode.
func (l *Logger) IsDevelopment() bool { return l.development }

// FilePath returns the log file path, empty for writer-injected loggers.
func (l *Logger) FilePath() string { return l.filePath }

// Debug logs at DebugLevel with structured fields.
func (l *Logger) Debug(msg string, fields ...zap.Field) { l.zap.Debug(msg, fields...) }

// Info logs at InfoLevel with structured fields.
func (l *Logger) Info(msg string, fields ...zap.Field) { l.zap.Info(msg, fields...) }

// Warn logs at WarnLevel with structured fields.
func (l *Logger) Warn(msg string, fields ...zap.Field) { l.zap.Warn(msg, fields...) }

// Error logs at ErrorLevel with structured fields.
func (l *Logger) Error(msg string, fields ...zap.Field) { l.zap.Error(msg, fields...) }

// Fatal logs at FatalLevel and exits the process.
func (l *Logger) Fatal(msg string, fields ...zap.Field) { l.zap.Fatal(msg, fields...) }

// Sync flushes buffered entries. Call before process exit.
func (l *Logger) Sync() error {
	if l == nil || l.zap == nil {
		return nil
	}
	return l.zap.Sync()
}
