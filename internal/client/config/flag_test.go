package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	base := func() *Config {
		c := &Config{}
		c.LoadDefaults()
		return c
	}

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"-a", "http://127.0.0.1:9090", "-i", "10", "-t", "2", "-d", "x.db", "-l", "debug"},
			expected: &Config{
				ServerBaseURL:       "http://127.0.0.1:9090",
				OnlineCheckInterval: 10 * time.Second,
				RequestTimeout:      2 * time.Second,
				StoragePath:         "x.db",
				LogLevel:            "debug",
			},
		},
		{
			name:     "unknown flags ignored",
			args:     []string{"-c", "conf.json", "-z", "1"},
			expected: base(),
		},
		{name: "incorrect check interval", args: []string{"-i", "abc"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(cfg, tt.args) })
				return
			}

			require.NotPanics(t, func() { parseFlags(cfg, tt.args) })
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}

func TestParseFlags_IntervalsUntouchedWhenAbsent(t *testing.T) {
	cfg := &Config{OnlineCheckInterval: 1500 * time.Millisecond, RequestTimeout: 2500 * time.Millisecond}

	parseFlags(cfg, []string{"-a", "http://x"})

	assert.Equal(t, 1500*time.Millisecond, cfg.OnlineCheckInterval)
	assert.Equal(t, 2500*time.Millisecond, cfg.RequestTimeout)
}
