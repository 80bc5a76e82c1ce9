// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging values from environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the request integrity key.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local import journal database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the address and timeout of the backend service.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// Import holds settings of the batch import pipeline.
	Import Import `envPrefix:"IMPORT_"`

	// Countdown holds settings of the per-account code refresh scheduler.
	Countdown Countdown `envPrefix:"COUNTDOWN_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// HashKey is the HMAC key used to sign request bodies sent to the backend
	// (the HashSHA256 header).
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`
}

// Storage groups the configuration for local storage backends.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the path of the SQLite database file (e.g. "otp-keeper.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds the settings of the backend service connection.
type Adapter struct {
	// HTTPAddress is the backend address, either "host:port" or a full URL.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single backend call (e.g. "10s"). Zero means
	// no timeout: a stalled backend stalls the calling operation.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval is how often the client asks the backend to synchronise
	// with the remote sync server.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// Import holds settings of the batch import pipeline.
type Import struct {
	// Concurrency limits the number of in-flight decode and create-account
	// calls of a single import batch.
	// Env: IMPORT_CONCURRENCY
	Concurrency int `env:"CONCURRENCY"`
}

// Countdown holds settings of the per-account refresh scheduler.
type Countdown struct {
	// DefaultStep is used for accounts whose step the backend does not report.
	// Env: COUNTDOWN_DEFAULT_STEP
	DefaultStep time.Duration `env:"DEFAULT_STEP"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
