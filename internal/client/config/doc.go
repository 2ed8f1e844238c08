// Package config loads runtime configuration for the qaboard terminal client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-u string     GraphQL endpoint URL
//	-f string     path of the local SQLite database holding the session
//	-t duration   per-request timeout, e.g. 10s
//
// # JSON schema
//
//	{
//	  "server_url": "http://127.0.0.1:5000/graphql",
//	  "database_path": "qaboard.db",
//	  "request_timeout": "10s"
//	}
package config
