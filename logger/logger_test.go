package logger

import (
	"testing"

	"go-splendor/config"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestInit(t *testing.T) {
	require.NoError(t, Init(&config.Config{LogLevel: "warn"}))
	require.False(t, L.Core().Enabled(zapcore.InfoLevel))
	require.True(t, L.Core().Enabled(zapcore.WarnLevel))

	require.NoError(t, Init(&config.Config{LogLevel: "debug"}))
	require.True(t, L.Core().Enabled(zapcore.DebugLevel))

	require.Error(t, Init(&config.Config{LogLevel: "loud"}))
}
