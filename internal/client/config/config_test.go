package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:8080", c.ServerBaseURL)
	assert.Equal(t, 3*time.Second, c.OnlineCheckInterval)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, "slayer.db", c.StoragePath)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoad_NoSourcesKeepsDefaults(t *testing.T) {
	cfg := Load(nil)

	require.NotNil(t, cfg, "Load must not return nil")
	assert.Equal(t, "http://localhost:8080", cfg.ServerBaseURL)
	assert.Equal(t, 3*time.Second, cfg.OnlineCheckInterval)
}

func TestLoad_Precedence(t *testing.T) {
	t.Setenv("SLAYER_SERVER_URL", "http://env:1")
	t.Setenv("SLAYER_LOG_LEVEL", "debug")

	path := writeTempJSON(t, "", "", map[string]any{
		"server_url":   "http://json:2",
		"storage_path": "json.db",
	})

	cfg := Load([]string{"-c", path, "-d", "flag.db"})

	assert.Equal(t, "http://json:2", cfg.ServerBaseURL, "json overrides env")
	assert.Equal(t, "flag.db", cfg.StoragePath, "flags override json")
	assert.Equal(t, "debug", cfg.LogLevel, "env overrides defaults")
}
