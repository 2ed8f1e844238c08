// Package config handles configuration for the qaboard server: defaults,
// JSON file overlay, environment overlay and command-line flags.
package config

import (
	"errors"
	"time"
)

// Config holds runtime settings for the server.
//
// DatabaseDSN selects the store backend by scheme: mongodb:// (or
// mongodb+srv://), postgres://, or memory://.
type Config struct {
	EndpointAddrHTTP      string
	EndpointAddrGRPC      string
	DatabaseDSN           string
	DatabaseName          string
	SecretKey             string
	TokenValidityDuration time.Duration
	AllowOrigins          string
}

var (
	ErrMissingDatabaseDSN = errors.New("database DSN is required")
	ErrMissingSecretKey   = errors.New("secret key is required")
)

// LoadDefaults fills in development defaults. The DSN and the secret have
// no default and must be provided.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":5000"
	c.EndpointAddrGRPC = ":50051"
	c.DatabaseName = "qaboard"
	c.TokenValidityDuration = 6 * time.Hour
	c.AllowOrigins = "*"
}

// Validate reports missing required settings.
func (c *Config) Validate() error {
	var errs []error
	if c.DatabaseDSN == "" {
		errs = append(errs, ErrMissingDatabaseDSN)
	}
	if c.SecretKey == "" {
		errs = append(errs, ErrMissingSecretKey)
	}
	return errors.Join(errs...)
}

// LoadConfig builds a Config from defaults, then the optional JSON file,
// then the environment and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
