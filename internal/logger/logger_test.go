package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	// Act
	logger := NewLogger()

	// Assert
	require.NotNil(t, logger)
	assert.NotPanics(t, func() {
		logger.Info("test message")
	})
}

func TestNewDebugLogger(t *testing.T) {
	// Act
	logger, err := NewDebugLogger()

	// Assert
	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}
