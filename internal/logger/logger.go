package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// NewLogger creates a zap logger for normal operation. All log output goes
// to stderr so that rendered subtitles on stdout stay clean.
func NewLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build()
	if err != nil {
		// Fallback to no-op logger if the production logger fails
		return zap.NewNop()
	}
	return logger
}

// NewDebugLogger creates a zap logger with human-readable output and the
// debug level enabled, for tracing pipeline decisions
func NewDebugLogger() (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build debug logger: %w", err)
	}
	return logger, nil
}
