package config

import "time"

// Config holds runtime settings for the back office console.
//
// Fields:
//   - ServerBaseURL: base URL of the backend admin API, including the
//     /api/v1/admin prefix.
//   - RequestTimeout: per-request budget for regular API calls.
//   - LoginTimeout: budget for the sign-in call, which gets its own bound.
//   - SessionDBPath: SQLite file the session store persists into.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	LoginTimeout   time.Duration
	SessionDBPath  string
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8080/api/v1/admin"
	c.RequestTimeout = 30 * time.Second
	c.LoginTimeout = 10 * time.Second
	c.SessionDBPath = "backoffice.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
