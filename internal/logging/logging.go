// SPDX-License-Identifier: MIT

// Package logging builds the zap logger used by the strnum CLI.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Encodings accepted by New.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// New returns a production zap logger writing to stderr at the given level
// ("debug", "info", "warn", "error") in the given format (FormatConsole or
// FormatJSON). verbose forces the debug level.
func New(level, format string, verbose bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level: %w", err)
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(lvl)
	config.OutputPaths = []string{"stderr"}
	config.DisableStacktrace = true
	switch format {
	case FormatJSON:
		config.Encoding = FormatJSON
	case FormatConsole, "":
		config.Encoding = FormatConsole
		config.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return logger, nil
}
