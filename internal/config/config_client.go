// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

const (
	defaultImportConcurrency = 4
	defaultCountdownStep     = 30 * time.Second
	defaultSyncInterval      = 5 * time.Minute
	defaultRequestTimeout    = 15 * time.Second
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// HashKey is the HMAC key used for request integrity headers. May be
	// empty, in which case no header is sent.
	HashKey string
}

// ClientAdapter holds network settings used by the backend adapter.
type ClientAdapter struct {
	// HTTPAddress is the backend endpoint address.
	HTTPAddress string
	// RequestTimeout is the timeout for a single backend call.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings.
type ClientDB struct {
	// DSN is the SQLite file path of the import journal.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the remote sync job runs.
	SyncInterval time.Duration
}

// ClientImport contains import pipeline settings.
type ClientImport struct {
	// Concurrency is the maximum number of in-flight backend calls per batch.
	Concurrency int
}

// ClientCountdown contains countdown scheduler settings.
type ClientCountdown struct {
	// DefaultStep is the fallback rotation interval.
	DefaultStep time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App       ClientApp
	Adapter   ClientAdapter
	Storage   ClientStorage
	Workers   ClientWorkers
	Import    ClientImport
	Countdown ClientCountdown
}

// GetClientConfig builds and validates the client config view from the
// merged structured configuration. Optional tuning values that were not
// provided by any source get their defaults here.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			HashKey: cfg.App.HashKey,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers:   ClientWorkers{SyncInterval: cfg.Workers.SyncInterval},
		Import:    ClientImport{Concurrency: cfg.Import.Concurrency},
		Countdown: ClientCountdown{DefaultStep: cfg.Countdown.DefaultStep},
	}

	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = defaultRequestTimeout
	}
	if clientCfg.Workers.SyncInterval == 0 {
		clientCfg.Workers.SyncInterval = defaultSyncInterval
	}
	if clientCfg.Import.Concurrency == 0 {
		clientCfg.Import.Concurrency = defaultImportConcurrency
	}
	if clientCfg.Countdown.DefaultStep == 0 {
		clientCfg.Countdown.DefaultStep = defaultCountdownStep
	}

	return clientCfg
}
