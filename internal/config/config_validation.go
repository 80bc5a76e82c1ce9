// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"
	"time"
)

// validate checks the merged [StructuredConfig]. Only values that can be
// wrong regardless of the consumer are rejected here; required fields are
// checked by the client view.
func (cfg *StructuredConfig) validate() error {
	if cfg.Import.Concurrency < 0 {
		return ErrInvalidImportConfigs
	}
	if cfg.Countdown.DefaultStep < 0 {
		return ErrInvalidCountdownConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Import.Concurrency <= 0 {
		return ErrInvalidImportConfigs
	}

	if cfg.Countdown.DefaultStep < time.Second {
		return ErrInvalidCountdownConfigs
	}

	return nil
}
