package config

import "time"

// Config holds runtime settings for the CampusHub CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the backend HTTP API (no trailing slash).
//   - RequestTimeout: per-request timeout for API calls.
//   - SessionDBPath: path of the local SQLite file holding the session.
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	SessionDBPath  string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8080"
	c.RequestTimeout = 10 * time.Second
	c.SessionDBPath = "campushub.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
