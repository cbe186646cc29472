package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the Software Slayer CLI.
//
// Fields:
//   - ServerBaseURL: scheme://host:port of the backend REST API.
//   - OnlineCheckInterval: how often the client probes server reachability.
//   - RequestTimeout: per-request HTTP timeout.
//   - StoragePath: SQLite file holding the persisted session.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	ServerBaseURL       string
	OnlineCheckInterval time.Duration
	RequestTimeout      time.Duration
	StoragePath         string
	LogLevel            string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8080"
	c.OnlineCheckInterval = 3 * time.Second
	c.RequestTimeout = 10 * time.Second
	c.StoragePath = "slayer.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config from os.Args. See Load.
func LoadConfig() *Config {
	return Load(os.Args[1:])
}

// Load applies defaults, then the environment (optionally seeded from a .env
// file), then a JSON file, then command-line flags. Later sources win.
// Malformed input panics, as configuration errors are fatal at startup.
func Load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg, args)
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
