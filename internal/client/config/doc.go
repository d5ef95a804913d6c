// Package config loads runtime configuration for the Mentorly admin CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. MENTORLY_* environment variables (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the REST API
//	-d string   path of the local SQLite database
//	-t int      request timeout (seconds)
//	-i int      online status check interval (seconds)
//	-l string   log level
//	-m string   listen address for /metrics
//
// # JSON schema
//
// Durations use timex.Duration, so values can be either strings like "30s"
// or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost:5000/api/v1",
//	  "database_path": "mentorly.db",
//	  "request_timeout": "30s",
//	  "online_check_interval": "10s",
//	  "log_level": "debug",
//	  "metrics_addr": ":9100"
//	}
//
// Environment
//
//	MENTORLY_API_URL, MENTORLY_DB_PATH, MENTORLY_REQUEST_TIMEOUT,
//	MENTORLY_ONLINE_CHECK_INTERVAL, MENTORLY_LOG_LEVEL, MENTORLY_METRICS_ADDR
package config
