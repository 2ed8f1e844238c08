package config

import "time"

// Config holds runtime settings for the qaboard client.
type Config struct {
	ServerURL      string
	DatabasePath   string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with defaults that match a locally started server.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:5000/graphql"
	c.DatabasePath = "qaboard.db"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
