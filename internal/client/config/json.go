package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/softwareslayer/internal/flagx"
	"github.com/dmitrijs2005/softwareslayer/internal/timex"
)

// JsonConfig is the on-disk shape of the JSON config file.
type JsonConfig struct {
	ServerBaseURL       string         `json:"server_url"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
	RequestTimeout      timex.Duration `json:"request_timeout"`
	StoragePath         string         `json:"storage_path"`
	LogLevel            string         `json:"log_level"`
}

// parseJson overlays cfg with the file named by -c/-config. Keys that are
// missing or zero in the file keep their previous values. Read and decode
// errors panic.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.OnlineCheckInterval.Duration > 0 {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.StoragePath != "" {
		cfg.StoragePath = jc.StoragePath
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
