package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"HTTP_ADDR", "REDIS_ADDR", "REDIS_DB", "AI_STEP_DELAY", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	require.Equal(t, ":8000", cfg.HTTPAddr)
	require.Equal(t, "localhost:6379", cfg.RedisAddr)
	require.Equal(t, 0, cfg.RedisDB)
	require.Equal(t, time.Second, cfg.AIStepDelay)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromEnvFile(t *testing.T) {
	// godotenv 不覆盖已存在的变量，先清掉（t.Setenv 负责还原）
	for _, key := range []string{"REDIS_DB", "AI_STEP_DELAY"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("REDIS_DB=3\nAI_STEP_DELAY=250ms\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 3, cfg.RedisDB)
	require.Equal(t, 250*time.Millisecond, cfg.AIStepDelay)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("REDIS_DB", "zero")
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)

	t.Setenv("REDIS_DB", "1")
	t.Setenv("AI_STEP_DELAY", "soon")
	_, err = Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
}
