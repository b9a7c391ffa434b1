package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 4, cfg.Exam.BatchConcurrency)
	assert.False(t, cfg.Exam.UnscopedFallback)
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "test.env")
	content := "SERVER_PORT=9090\nDATABASE_DRIVER=SQLITE\nDATABASE_PATH=:memory:\nEXAM_BATCH_CONCURRENCY=0\nEXAM_UNSCOPED_FALLBACK=true\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	cfg, err := Load(envFile)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, ":memory:", cfg.Database.Path)
	assert.Equal(t, 1, cfg.Exam.BatchConcurrency, "concurrency is clamped to at least one worker")
	assert.True(t, cfg.Exam.UnscopedFallback)
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("SERVER_PORT=9090\n"), 0o600))
	t.Setenv("SERVER_PORT", "7070")

	cfg, err := Load(envFile)
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Server.Port)
}
