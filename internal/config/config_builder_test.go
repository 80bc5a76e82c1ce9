// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBuilder(args ...string) *configBuilder {
	b := newConfigBuilder()
	b.flagSet = flag.NewFlagSet("otp-keeper-test", flag.ContinueOnError)
	b.args = args
	return b
}

func TestConfigBuilder_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("ADAPTER_ADDRESS", "env-host:1000")
	t.Setenv("STORAGE_DB_DATABASE_URI", "env.db")

	cfg, err := newTestBuilder("-a", "flag-host:2000").
		withEnv().
		withFlags().
		withJSON().
		build()

	require.NoError(t, err)
	assert.Equal(t, "flag-host:2000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "env.db", cfg.Storage.DB.DSN)
}

func TestConfigBuilder_JSONOverridesFlags(t *testing.T) {
	path := writeJSONConfig(t, `{"address": "json-host:3000", "default_step": "45s"}`)

	cfg, err := newTestBuilder("-a", "flag-host:2000", "-d", "flag.db", "-c", path).
		withEnv().
		withFlags().
		withJSON().
		build()

	require.NoError(t, err)
	assert.Equal(t, "json-host:3000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "flag.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 45*time.Second, cfg.Countdown.DefaultStep)
}

func TestConfigBuilder_JSONPathFromEnv(t *testing.T) {
	path := writeJSONConfig(t, `{"import_concurrency": 6}`)
	t.Setenv("CONFIG", path)

	cfg, err := newTestBuilder().withEnv().withFlags().withJSON().build()

	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Import.Concurrency)
}

func TestConfigBuilder_CollectsErrors(t *testing.T) {
	t.Setenv("IMPORT_CONCURRENCY", "lots")

	_, err := newTestBuilder("-a", "bad").withEnv().withFlags().build()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error occured during building config")
}

func TestConfigBuilder_ValidatesMergedConfig(t *testing.T) {
	_, err := newTestBuilder("-import-concurrency", "-1").withFlags().build()

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidImportConfigs))
}
