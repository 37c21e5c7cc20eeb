package logging

import (
	"os"
	"strings"

	"go.uber.org/zap/zapcore"
)

// ParseLevel reads a log level from the named environment variable, falling
// back to defaultLevel when the variable is unset or unrecognized.
//
// Valid levels (case-insensitive): debug, info, warn, warning, error, fatal.
func ParseLevel(envVar string, defaultLevel zapcore.Level) zapcore.Level {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultLevel
	}
	return ParseLevelString(value, defaultLevel)
}

// ParseLevelString parses a log level name directly.
// This is a pure function with no side effects.
func ParseLevelString(s string, defaultLevel zapcore.Level) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	case "fatal":
		return zapcore.FatalLevel
	default:
		return defaultLevel
	}
}
