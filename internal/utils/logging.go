// Package utils holds the process-wide zap logger and shared log field names.
package utils

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	DefaultLogFile = "instructor-api.log"
	LogFileMode    = 0644
)

var (
	Logger *zap.Logger
	level  = zap.NewAtomicLevel()
)

// Init builds the global logger. Entries go to stdout in console format and to
// logFile as JSON. An empty or unknown level falls back to info. Call once at startup.
func Init(lvl, logFile string) error {
	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, LogFileMode)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", logFile, err)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	level.SetLevel(ParseLevel(lvl))
	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(os.Stdout), level),
		zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(file), level),
	)
	Logger = zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))

	Logger.Info("logging initialized",
		zap.String("log_level", level.String()),
		zap.String("log_file", logFile))
	return nil
}

// ParseLevel converts LOG_LEVEL style text into a zap level.
func ParseLevel(level string) zapcore.Level {
	if level == "" {
		return zapcore.InfoLevel
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		fmt.Fprintf(os.Stderr, "unknown LOG_LEVEL '%s', defaulting to 'info'\n", level)
		return zapcore.InfoLevel
	}
	return lvl
}

// SetLevel changes the level of the logger built by Init. Configuration is
// loaded after logging starts, so the configured level is applied here.
func SetLevel(lvl string) {
	level.SetLevel(ParseLevel(lvl))
}

// Sync flushes any buffered log entries.
func Sync() error {
	if Logger != nil {
		return Logger.Sync()
	}
	return nil
}

// WithComponent returns the global logger with a `component` field attached.
// It returns a no-op logger before Init has run.
func WithComponent(component string) *zap.Logger {
	if Logger == nil {
		return zap.NewNop()
	}
	return Logger.With(zap.String(FieldComponent, component))
}
