package config

import "time"

// Config holds runtime settings for the Mentorly admin CLI.
//
// Fields:
//   - APIBaseURL: base URL of the REST API, including the version prefix.
//   - DatabasePath: SQLite file holding the persisted session.
//   - RequestTimeout: upper bound for a single API call, refresh included.
//   - OnlineCheckInterval: how often the client checks API reachability.
//   - LogLevel: debug, info, warn or error.
//   - MetricsAddr: listen address of the Prometheus endpoint; empty disables it.
type Config struct {
	APIBaseURL          string        `env:"MENTORLY_API_URL"`
	DatabasePath        string        `env:"MENTORLY_DB_PATH"`
	RequestTimeout      time.Duration `env:"MENTORLY_REQUEST_TIMEOUT"`
	OnlineCheckInterval time.Duration `env:"MENTORLY_ONLINE_CHECK_INTERVAL"`
	LogLevel            string        `env:"MENTORLY_LOG_LEVEL"`
	MetricsAddr         string        `env:"MENTORLY_METRICS_ADDR"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://mentorly-bakend.vercel.app/api/v1"
	c.DatabasePath = "mentorly.db"
	c.RequestTimeout = 30 * time.Second
	c.OnlineCheckInterval = 10 * time.Second
	c.LogLevel = "info"
	c.MetricsAddr = ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
