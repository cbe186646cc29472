package config

import (
	"time"

	"github.com/dmitrijs2005/softwareslayer/internal/flagx"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "slayer"

// envConfig mirrors Config for envconfig. Fields start out as the current
// Config values, so variables that are not set leave them untouched.
type envConfig struct {
	ServerBaseURL       string        `envconfig:"SERVER_URL"`
	OnlineCheckInterval time.Duration `envconfig:"ONLINE_CHECK_INTERVAL"`
	RequestTimeout      time.Duration `envconfig:"REQUEST_TIMEOUT"`
	StoragePath         string        `envconfig:"STORAGE_PATH"`
	LogLevel            string        `envconfig:"LOG_LEVEL"`
}

// parseEnv overlays cfg with SLAYER_* variables. A dotenv file named by
// -e/-env must exist; the implicit ./.env is optional. Variables already
// present in the process environment are never overwritten by dotenv.
func parseEnv(cfg *Config, args []string) {
	if path := flagx.EnvFileFlag(args); path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
	} else {
		_ = godotenv.Load()
	}

	ec := envConfig{
		ServerBaseURL:       cfg.ServerBaseURL,
		OnlineCheckInterval: cfg.OnlineCheckInterval,
		RequestTimeout:      cfg.RequestTimeout,
		StoragePath:         cfg.StoragePath,
		LogLevel:            cfg.LogLevel,
	}
	if err := envconfig.Process(envPrefix, &ec); err != nil {
		panic(err)
	}

	cfg.ServerBaseURL = ec.ServerBaseURL
	cfg.OnlineCheckInterval = ec.OnlineCheckInterval
	cfg.RequestTimeout = ec.RequestTimeout
	cfg.StoragePath = ec.StoragePath
	cfg.LogLevel = ec.LogLevel
}
