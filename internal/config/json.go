package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// jsonConfig mirrors the on-disk JSON layout. Durations are accepted as
// Go duration strings.
type jsonConfig struct {
	Address           string   `json:"address"`
	DatabaseDSN       string   `json:"database_dsn"`
	HashKey           string   `json:"hash_key"`
	RequestTimeout    Duration `json:"request_timeout"`
	SyncInterval      Duration `json:"sync_interval"`
	ImportConcurrency int      `json:"import_concurrency"`
	DefaultStep       Duration `json:"default_step"`
}

// parseJSON reads the JSON configuration file at path and maps it onto a
// [StructuredConfig].
func parseJSON(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading JSON config file %q: %w", path, err)
	}

	var raw jsonConfig
	if err = json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("error parsing JSON config file %q: %w", path, err)
	}

	cfg := &StructuredConfig{JSONFilePath: path}
	cfg.Adapter.HTTPAddress = raw.Address
	cfg.Adapter.RequestTimeout = time.Duration(raw.RequestTimeout)
	cfg.Storage.DB.DSN = raw.DatabaseDSN
	cfg.App.HashKey = raw.HashKey
	cfg.Workers.SyncInterval = time.Duration(raw.SyncInterval)
	cfg.Import.Concurrency = raw.ImportConcurrency
	cfg.Countdown.DefaultStep = time.Duration(raw.DefaultStep)

	return cfg, nil
}
