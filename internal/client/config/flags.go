package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/softwareslayer/internal/flagx"
)

// parseFlags overlays cfg with the flags this package owns; anything else on
// the command line is ignored (see flagx.FilterArgs). Interval flags only
// replace earlier values when they are actually given.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-i", "-t", "-d", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the backend REST API")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.StoragePath, "d", cfg.StoragePath, "path of the local storage file")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "i":
			cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
		case "t":
			cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
		}
	})
}
