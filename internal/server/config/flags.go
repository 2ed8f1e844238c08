package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/qaboard/internal/flagx"
)

var serverFlags = []string{"-a", "-g", "-d", "-n", "-s", "-t", "-o"}

// parseFlags overlays command-line flags:
//
//	-a string     HTTP (GraphQL) bind address
//	-g string     gRPC health bind address
//	-d string     database DSN
//	-n string     database name (MongoDB)
//	-s string     JWT HMAC secret
//	-t duration   token validity, e.g. 6h
//	-o string     CORS allowed origins
func parseFlags(config *Config) {
	if err := parseArgs(config, os.Args[1:]); err != nil {
		panic(err)
	}
}

func parseArgs(config *Config, args []string) error {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "HTTP address and port")
	fs.StringVar(&config.EndpointAddrGRPC, "g", config.EndpointAddrGRPC, "gRPC health address and port")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.DatabaseName, "n", config.DatabaseName, "database name")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.DurationVar(&config.TokenValidityDuration, "t", config.TokenValidityDuration, "token validity duration")
	fs.StringVar(&config.AllowOrigins, "o", config.AllowOrigins, "CORS allowed origins")

	return fs.Parse(flagx.FilterArgs(args, serverFlags))
}
