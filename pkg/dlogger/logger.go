// Copyright © 2018 One Concern

// Package dlogger exposes a simple zap logger, with log levels.
//
// Loggers built here always write to stderr, so that the standard output
// of the program remains free for the classified lines.
package dlogger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// LogLevelError only logs errors
	LogLevelError = "error"

	// LogLevelWarn logs warnings and errors
	LogLevelWarn = "warn"

	// LogLevelInfo sets the log level to info
	LogLevelInfo = "info"

	// LogLevelDebug sets the log level to debug
	LogLevelDebug = "debug"

	// LogLevelNone sets logger to no logging
	LogLevelNone = "none"
)

// Levels lists all supported log levels, by increasing order of verbosity
var Levels = []string{LogLevelNone, LogLevelError, LogLevelWarn, LogLevelInfo, LogLevelDebug}

// GetLogger returns a zap logger with the specified level
func GetLogger(logLevel string, opts ...zap.Option) (*zap.Logger, error) {
	if logLevel == LogLevelNone {
		return zap.NewNop(), nil
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(logLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}
	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(lvl)
	zapConfig.OutputPaths = []string{"stderr"}
	zapConfig.ErrorOutputPaths = []string{"stderr"}
	zapConfig.Sampling = nil
	return zapConfig.Build(opts...)
}
