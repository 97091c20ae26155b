// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Javier Ortega

package config

import (
	"time"
)

// ServerConfig is the top-level configuration for the trackvault record
// store backend. It is assembled by merging defaults, an optional JSON
// file, environment variables, and command-line flags (later sources win).
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type ServerConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Storage holds the record-store database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is an optional path to a JSON configuration file,
	// populated via the CONFIG env variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration.
type App struct {
	// Version is the semantic version of the running binary.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network settings for the inbound HTTP transport.
type Server struct {
	// HTTPAddress is the listen address in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups persistence settings.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DBConfig `envPrefix:"DB_"`
}

// DBConfig holds the record-store database connection settings.
type DBConfig struct {
	// Driver selects the backend: "pgx" (Postgres) or "sqlite3".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the connection string: a postgres:// URI for pgx, or a file
	// path for sqlite3.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// GetServerConfig loads the server configuration from all sources:
// defaults, then the optional JSON file, then environment variables,
// then flags.
func GetServerConfig() (*ServerConfig, error) {
	return newServerBuilder().
		withFlags().
		withEnv().
		withJSON().
		build()
}

func serverDefaults() *ServerConfig {
	return &ServerConfig{
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Storage: Storage{
			DB: DBConfig{
				Driver: "sqlite3",
				DSN:    "trackvault.db",
			},
		},
	}
}
