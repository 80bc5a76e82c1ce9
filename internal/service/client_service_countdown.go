// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/go-otp-keeper/internal/app"
	"github.com/MKhiriev/go-otp-keeper/internal/logger"
	"github.com/MKhiriev/go-otp-keeper/models"
)

// CodeFetcher returns the current one-time code of a single account.
type CodeFetcher func(ctx context.Context) (string, error)

// CountdownSnapshot is what a row renders.
type CountdownSnapshot struct {
	// Code is the last fetched code, empty after a failed fetch, or
	// app.MaskedCode while unmounted.
	Code string
	// Remaining is the time left until the next step boundary.
	Remaining time.Duration
	// Step is the rotation interval.
	Step time.Duration
	// Active reports whether the scheduler is mounted.
	Active bool
}

// Countdown fetches an account's code on mount and again at every step
// boundary until it is unmounted. Instances share nothing; one is created
// per displayed row.
type Countdown struct {
	step  time.Duration
	fetch CodeFetcher
	clock clockwork.Clock

	mu     sync.Mutex
	code   string
	mount  uint64
	cancel context.CancelFunc
	done   chan struct{}

	logger *logger.Logger
}

// FallbackStep replaces a non-positive step given to [NewCountdown].
const FallbackStep = 30 * time.Second

// NewCountdown returns an unmounted scheduler showing the masked code. A
// non-positive cfg.StepSeconds is replaced by [FallbackStep].
func NewCountdown(cfg models.CountdownConfig, fetch CodeFetcher, clock clockwork.Clock, logger *logger.Logger) *Countdown {
	step := cfg.Step()
	if step <= 0 {
		logger.Warn().
			Str("func", "NewCountdown").
			Int("step_seconds", cfg.StepSeconds).
			Msg("non-positive countdown step, using fallback")
		step = FallbackStep
	}

	return &Countdown{
		step:   step,
		fetch:  fetch,
		clock:  clock,
		code:   app.MaskedCode,
		logger: logger,
	}
}

// Deadline returns the time from now to the next multiple of step since the
// Unix epoch. The result is in (0, step]: exactly on a boundary a whole step
// remains. A non-positive step yields zero.
func Deadline(now time.Time, step time.Duration) time.Duration {
	if step <= 0 {
		return 0
	}
	elapsed := time.Duration(now.UnixNano() % int64(step))
	if elapsed < 0 {
		elapsed += step
	}
	return step - elapsed
}

// Mount starts fetching. It is a no-op while already mounted. The scheduler
// stops on Unmount or when ctx ends.
func (c *Countdown) Mount(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel != nil {
		return
	}

	c.mount++
	runCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.done = make(chan struct{})

	go c.run(runCtx, c.mount, c.done)
}

func (c *Countdown) run(ctx context.Context, mount uint64, done chan struct{}) {
	defer close(done)

	c.refresh(ctx, mount)

	timer := c.clock.NewTimer(Deadline(c.clock.Now(), c.step))
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.Chan():
			c.refresh(ctx, mount)
			timer.Reset(Deadline(c.clock.Now(), c.step))
		}
	}
}

// refresh fetches a code and stores it only if the same mount is still
// active when the fetch returns.
func (c *Countdown) refresh(ctx context.Context, mount uint64) {
	code, err := c.fetch(ctx)
	if err != nil {
		code = ""
		if ctx.Err() == nil {
			c.logger.Warn().Err(err).Str("func", "Countdown.refresh").Msg("one-time code fetch failed")
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mount == mount && c.cancel != nil {
		c.code = code
	}
}

// Unmount stops fetching, waits for the background goroutine and masks the
// code.
func (c *Countdown) Unmount() {
	c.mu.Lock()
	cancel, done := c.cancel, c.done
	c.cancel, c.done = nil, nil
	c.code = app.MaskedCode
	c.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Snapshot returns the current code and the time left in this step.
func (c *Countdown) Snapshot() CountdownSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return CountdownSnapshot{
		Code:      c.code,
		Remaining: Deadline(c.clock.Now(), c.step),
		Step:      c.step,
		Active:    c.cancel != nil,
	}
}
