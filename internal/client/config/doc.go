// Package config loads runtime configuration for the Software Slayer CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables with the SLAYER_ prefix. A dotenv file given with
//     -e/-env is loaded first; otherwise ./.env is loaded when present.
//  3. Optional JSON file selected with -c or -config.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   base URL of the backend REST API
//	-i int      online status check interval (seconds)
//	-t int      HTTP request timeout (seconds)
//	-d string   path of the local SQLite storage file
//	-l string   log level
//
// Environment variables
//
//	SLAYER_SERVER_URL, SLAYER_ONLINE_CHECK_INTERVAL, SLAYER_REQUEST_TIMEOUT,
//	SLAYER_STORAGE_PATH, SLAYER_LOG_LEVEL
//
// # JSON schema
//
// Intervals use timex.Duration, so they can be strings like "3s" or integer
// nanoseconds. Missing keys leave earlier values untouched:
//
//	{
//	  "server_url": "http://localhost:8080",
//	  "online_check_interval": "3s",
//	  "request_timeout": "10s",
//	  "storage_path": "slayer.db",
//	  "log_level": "info"
//	}
package config
