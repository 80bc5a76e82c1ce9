// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-otp-keeper/internal/adapter"
	"github.com/MKhiriev/go-otp-keeper/internal/app"
	"github.com/MKhiriev/go-otp-keeper/internal/logger"
	"github.com/MKhiriev/go-otp-keeper/models"
)

// SyncSnapshot is a copy of the sync credential form and its state.
type SyncSnapshot struct {
	State models.SyncState

	// ID is nil until a credential has been loaded or saved.
	ID       *int64
	Host     string
	Username string
	Password string

	// Locked means the fields are read-only until Unlock.
	Locked bool
	// Loading is true from the moment a submit starts validating until the
	// save settles.
	Loading bool
	// Message is the last outcome shown to the user: a backend failure
	// message verbatim or the validation confirmation.
	Message string
}

type syncAccountService struct {
	adapter adapter.BackendAdapter
	job     RemoteSyncJob

	mu   sync.Mutex
	form SyncSnapshot
	// generation changes whenever a load or submit starts; a load only
	// applies its result when the generation is still its own
	generation uint64

	logger *logger.Logger
}

// NewSyncAccountService returns a controller in NO_ACCOUNT. job may be nil;
// otherwise it is enabled once a credential exists and triggered after each
// successful save.
func NewSyncAccountService(backend adapter.BackendAdapter, job RemoteSyncJob, logger *logger.Logger) SyncAccountService {
	return &syncAccountService{
		adapter: backend,
		job:     job,
		form:    SyncSnapshot{State: models.SyncStateNoAccount},
		logger:  logger,
	}
}

// Load refreshes the form from the backend. While a submission is in flight
// the form is left alone and the current snapshot is returned.
func (s *syncAccountService) Load(ctx context.Context) SyncSnapshot {
	s.mu.Lock()
	if s.form.Loading {
		form := s.form
		s.mu.Unlock()
		return form
	}
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	cred, err := s.adapter.GetSyncCredential(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return s.form
	}

	if err != nil {
		if err.Error() != app.MsgSyncAccountDoesNotExist {
			s.logger.Warn().Err(err).
				Str("func", "syncAccountService.Load").
				Msg("sync credential lookup failed, treating as absent")
		}
		s.form = SyncSnapshot{State: models.SyncStateNoAccount}
		return s.form
	}

	s.form = SyncSnapshot{
		State:    models.SyncStateLoadedLocked,
		ID:       cred.ID,
		Host:     cred.URL,
		Username: cred.Username,
		Password: cred.Password,
		Locked:   true,
	}
	if s.job != nil {
		s.job.Enable()
	}

	return s.form
}

func (s *syncAccountService) Unlock() SyncSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.unlockLocked()
	return s.form
}

// unlockLocked must be called with s.mu held.
func (s *syncAccountService) unlockLocked() {
	if s.form.Loading || s.form.State != models.SyncStateLoadedLocked {
		return
	}
	s.form.State = models.SyncStateEditing
	s.form.Locked = false
}

func (s *syncAccountService) SetHost(host string) error {
	return s.edit(func(f *SyncSnapshot) { f.Host = host })
}

func (s *syncAccountService) SetUsername(username string) error {
	return s.edit(func(f *SyncSnapshot) { f.Username = username })
}

func (s *syncAccountService) SetPassword(password string) error {
	return s.edit(func(f *SyncSnapshot) { f.Password = password })
}

func (s *syncAccountService) edit(apply func(f *SyncSnapshot)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.form.Loading:
		return ErrSubmitInProgress
	case s.form.Locked:
		return ErrFormLocked
	}

	apply(&s.form)
	s.form.State = models.SyncStateEditing
	return nil
}

func (s *syncAccountService) Submit(ctx context.Context) (SyncSnapshot, error) {
	s.mu.Lock()
	if s.form.Loading {
		s.mu.Unlock()
		return s.Snapshot(), ErrSubmitInProgress
	}
	if s.form.Locked {
		s.unlockLocked()
		form := s.form
		s.mu.Unlock()
		return form, nil
	}

	s.generation++
	s.form.State = models.SyncStateValidating
	s.form.Loading = true
	s.form.Message = ""
	host, username, password := s.form.Host, s.form.Username, s.form.Password
	s.mu.Unlock()

	log := s.logger.With().Str("func", "syncAccountService.Submit").Str("host", host).Logger()

	if _, err := s.adapter.ValidateSyncCredential(ctx, host, username, password); err != nil {
		log.Info().Err(err).Msg("sync credential rejected")
		return s.settle(func(f *SyncSnapshot) {
			f.State = models.SyncStateError
			f.Message = err.Error()
		}, nil)
	}

	s.mu.Lock()
	s.form.State = models.SyncStateSaving
	s.mu.Unlock()

	cred, err := s.adapter.SaveSyncCredential(ctx, host, username, password)
	if err == nil && cred.ID == nil {
		err = ErrMissingCredentialID
	}
	if err != nil {
		log.Error().Err(err).Msg("sync credential validated but not saved")
		return s.settle(func(f *SyncSnapshot) {
			f.State = models.SyncStateError
			f.Message = err.Error()
		}, fmt.Errorf("%w: %w", ErrSaveFailed, err))
	}

	// the submitted fields stay on the form; only the id comes from the save
	snap, err := s.settle(func(f *SyncSnapshot) {
		f.State = models.SyncStateLoadedLocked
		f.ID = cred.ID
		f.Host = host
		f.Username = username
		f.Password = password
		f.Locked = true
		f.Message = app.MsgSyncAccountValidated
	}, nil)
	if s.job != nil {
		s.job.Trigger()
	}
	return snap, err
}

// settle ends the in-flight submission: loading is cleared and apply runs.
// Every non-success outcome leaves the form unlocked.
func (s *syncAccountService) settle(apply func(f *SyncSnapshot), result error) (SyncSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.form.Loading = false
	s.form.Locked = false
	apply(&s.form)
	return s.form, result
}

func (s *syncAccountService) Snapshot() SyncSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

func (s *syncAccountService) Logs(ctx context.Context) ([]models.SyncLog, error) {
	logs, err := s.adapter.SyncLogs(ctx)
	if err != nil {
		return nil, fmt.Errorf("sync logs: %w", err)
	}
	return logs, nil
}
