package config

import (
	"os"
	"time"
)

const (
	envDatabaseDSN   = "QABOARD_DATABASE_DSN"
	envDatabaseName  = "QABOARD_DATABASE_NAME"
	envSecretKey     = "QABOARD_SECRET_KEY"
	envHTTPAddr      = "QABOARD_HTTP_ADDR"
	envGRPCAddr      = "QABOARD_GRPC_ADDR"
	envTokenValidity = "QABOARD_TOKEN_TTL"
)

func parseEnv(config *Config) {
	config.DatabaseDSN = envString(envDatabaseDSN, config.DatabaseDSN)
	config.DatabaseName = envString(envDatabaseName, config.DatabaseName)
	config.SecretKey = envString(envSecretKey, config.SecretKey)
	config.EndpointAddrHTTP = envString(envHTTPAddr, config.EndpointAddrHTTP)
	config.EndpointAddrGRPC = envString(envGRPCAddr, config.EndpointAddrGRPC)
	config.TokenValidityDuration = envDuration(envTokenValidity, config.TokenValidityDuration)
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// envDuration ignores unparsable values and keeps def.
func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
