package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/qaboard/internal/flagx"
)

var clientFlags = []string{"-u", "-f", "-t"}

// parseFlags populates selected Config fields from command-line flags.
// Only -u, -f and -t are considered; everything else in os.Args is ignored.
func parseFlags(cfg *Config) {
	if err := parseArgs(cfg, os.Args[1:]); err != nil {
		panic(err)
	}
}

func parseArgs(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("client", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "u", cfg.ServerURL, "GraphQL endpoint URL")
	fs.StringVar(&cfg.DatabasePath, "f", cfg.DatabasePath, "local database file")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "request timeout")

	return fs.Parse(flagx.FilterArgs(args, clientFlags))
}
