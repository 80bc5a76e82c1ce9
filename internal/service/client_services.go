// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/go-otp-keeper/internal/adapter"
	"github.com/MKhiriev/go-otp-keeper/internal/config"
	"github.com/MKhiriev/go-otp-keeper/internal/logger"
	"github.com/MKhiriev/go-otp-keeper/internal/store"
)

type ClientServices struct {
	ImportService      ImportService
	SyncAccountService SyncAccountService
	AccountService     AccountService
	SyncJob            RemoteSyncJob
}

func NewClientServices(storages *store.ClientStorages, backend adapter.BackendAdapter,
	cfg *config.ClientConfig, clock clockwork.Clock, logger *logger.Logger) *ClientServices {
	syncJob := NewRemoteSyncJob(backend, cfg.Workers.SyncInterval, clock, logger)

	return &ClientServices{
		ImportService:      NewImportService(backend, storages.ImportJournalRepository, cfg.Import.Concurrency, clock, logger),
		SyncAccountService: NewSyncAccountService(backend, syncJob, logger),
		AccountService:     NewAccountService(backend, cfg.Countdown.DefaultStep, clock, logger),
		SyncJob:            syncJob,
	}
}
