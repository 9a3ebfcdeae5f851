package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadReadsLocalFile(t *testing.T) {
	cfg, err := Load("local")
	require.NoError(t, err)

	assert.Equal(t, 960, cfg.GetWindowWidth())
	assert.Equal(t, 540, cfg.GetWindowHeight())
	assert.Equal(t, "Dragon Boat Sprint", cfg.GetWindowTitle())
	assert.Equal(t, "info", cfg.GetLogLevel())
	assert.Equal(t, int64(0), cfg.GetRandomSeed())
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("WINDOW_WIDTH", "640")
	t.Setenv("WINDOW_TITLE", "Regatta")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RANDOM_SEED", "42")

	cfg, err := Load("local")
	require.NoError(t, err)

	assert.Equal(t, 640, cfg.GetWindowWidth())
	assert.Equal(t, 540, cfg.GetWindowHeight())
	assert.Equal(t, "Regatta", cfg.GetWindowTitle())
	assert.Equal(t, "debug", cfg.GetLogLevel())
	assert.Equal(t, int64(42), cfg.GetRandomSeed())
}

func TestMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load("does-not-exist")
	require.NoError(t, err)

	assert.Equal(t, defaultWindowWidth, cfg.GetWindowWidth())
	assert.Equal(t, defaultWindowHeight, cfg.GetWindowHeight())
	assert.Equal(t, defaultWindowTitle, cfg.GetWindowTitle())
	assert.Equal(t, defaultLogLevel, cfg.GetLogLevel())
}
