package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 100, cfg.SessionCapacity)
	assert.Equal(t, 30*time.Minute, cfg.SessionTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SESSION_CAPACITY", "25")
	t.Setenv("SESSION_IDLE_TIMEOUT_MINUTES", "5")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 25, cfg.SessionCapacity)
	assert.Equal(t, 5*time.Minute, cfg.SessionTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_InvalidCapacity(t *testing.T) {
	t.Setenv("SESSION_CAPACITY", "0")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_MalformedIntFallsBack(t *testing.T) {
	t.Setenv("SESSION_CAPACITY", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.SessionCapacity)
}
