// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/go-otp-keeper/internal/adapter"
	"github.com/MKhiriev/go-otp-keeper/internal/logger"
	"github.com/MKhiriev/go-otp-keeper/internal/utils"
)

const defaultSyncInterval = 5 * time.Minute

type remoteSyncJob struct {
	adapter  adapter.BackendAdapter
	interval time.Duration
	clock    clockwork.Clock
	ids      *utils.UUIDGenerator

	enabled atomic.Bool
	trigger chan struct{}

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewRemoteSyncJob creates a job that calls AttemptSync every interval while
// enabled. If interval is zero or negative it defaults to 5 minutes. The job
// is idle until Start is called.
func NewRemoteSyncJob(backend adapter.BackendAdapter, interval time.Duration, clock clockwork.Clock, logger *logger.Logger) RemoteSyncJob {
	if interval <= 0 {
		interval = defaultSyncInterval
	}
	return &remoteSyncJob{
		adapter:  backend,
		interval: interval,
		clock:    clock,
		ids:      utils.NewUUIDGenerator(),
		trigger:  make(chan struct{}, 1),
		logger:   logger,
	}
}

// Start implements RemoteSyncJob. It stops any previously running job, then
// launches a background goroutine that attempts a sync on every tick while
// the job is enabled and on every Trigger. The goroutine exits when ctx is
// cancelled or Stop is called.
func (j *remoteSyncJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := j.clock.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.Chan():
				if j.enabled.Load() {
					j.attempt(jobCtx, "tick")
				}
			case <-j.trigger:
				j.attempt(jobCtx, "trigger")
			}
		}
	}()
}

func (j *remoteSyncJob) attempt(ctx context.Context, reason string) {
	ctx = utils.WithRequestID(ctx, j.ids.Generate())
	if err := j.adapter.AttemptSync(ctx); err != nil {
		j.logger.Warn().Err(err).Str("func", "remoteSyncJob.attempt").Str("reason", reason).Msg("remote sync failed")
		return
	}
	j.logger.Debug().Str("func", "remoteSyncJob.attempt").Str("reason", reason).Msg("remote sync done")
}

// Stop implements RemoteSyncJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running.
func (j *remoteSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *remoteSyncJob) Enable() {
	j.enabled.Store(true)
}

// Trigger implements RemoteSyncJob. Triggers that arrive while one is
// already pending are merged.
func (j *remoteSyncJob) Trigger() {
	j.enabled.Store(true)
	select {
	case j.trigger <- struct{}{}:
	default:
	}
}
