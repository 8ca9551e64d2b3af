// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// account service. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application identity settings exposed on the index
	// endpoint.
	App App `envPrefix:"APP_" json:"app"`

	// Storage holds configuration for the persistence backend.
	Storage Storage `envPrefix:"STORAGE_" json:"storage"`

	// Server holds network address, timeout, and policy settings for
	// the HTTP server.
	Server Server `envPrefix:"SERVER_" json:"server"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the
	// values already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG" json:"-"`
}

// App holds application identity values reported by the service.
type App struct {
	// Name is the human-readable service name returned by the index
	// endpoint. Defaults to "Account REST API Service".
	// Env: APP_NAME
	Name string `env:"NAME" json:"name"`

	// Version is the semantic version string of the running
	// application (e.g. "1.0"). Defaults to "1.0".
	// Env: APP_VERSION
	Version string `env:"VERSION" json:"version"`
}

// Storage groups the configuration for the storage backends used by
// the application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_" json:"db"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the database connection string. A "postgres://" or
	// "postgresql://" scheme selects the PostgreSQL backend; any other
	// value is treated as a SQLite database file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI" json:"dsn"`
}

// Server holds network and policy settings for the inbound HTTP layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format. Defaults to "localhost:8080".
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" json:"http_address"`

	// RequestTimeout is the maximum duration allowed for a single
	// inbound request before the server cancels it (e.g. "30s").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" json:"request_timeout"`

	// EnforceHTTPS redirects every plain-HTTP request to its HTTPS
	// equivalent when true. Disabled by default and in tests.
	// Env: SERVER_ENFORCE_HTTPS
	EnforceHTTPS bool `env:"ENFORCE_HTTPS" json:"enforce_https"`

	// Debug lowers the global log level to debug when true.
	// Env: SERVER_DEBUG
	Debug bool `env:"DEBUG" json:"debug"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority
// order (first non-zero value wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any
// source fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
