// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/go-otp-keeper/internal/adapter"
	"github.com/MKhiriev/go-otp-keeper/internal/app"
	"github.com/MKhiriev/go-otp-keeper/internal/logger"
	"github.com/MKhiriev/go-otp-keeper/internal/utils"
	"github.com/MKhiriev/go-otp-keeper/models"
)

type accountService struct {
	adapter adapter.BackendAdapter

	defaultStep time.Duration
	clock       clockwork.Clock

	logger *logger.Logger
}

// NewAccountService returns the account manager. defaultStep is the rotation
// interval assumed for accounts the backend reports without one.
func NewAccountService(backend adapter.BackendAdapter, defaultStep time.Duration, clock clockwork.Clock, logger *logger.Logger) AccountService {
	return &accountService{
		adapter:     backend,
		defaultStep: defaultStep,
		clock:       clock,
		logger:      logger,
	}
}

func (s *accountService) List(ctx context.Context, filter string) ([]models.Account, error) {
	accounts, err := s.adapter.ListAccounts(ctx, strings.TrimSpace(filter))
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	return accounts, nil
}

func (s *accountService) Create(ctx context.Context, draft models.DraftAccount) (string, error) {
	draft.Name = strings.TrimSpace(draft.Name)
	draft.Secret = strings.TrimSpace(draft.Secret)
	if draft.Name == "" || draft.Secret == "" {
		return "", ErrAccountIncomplete
	}
	if draft.OTPDigits <= 0 {
		draft.OTPDigits = app.DefaultOTPDigits
	}
	if draft.TOTPStep <= 0 {
		draft.TOTPStep = app.DefaultTOTPStep
	}

	answer, err := s.adapter.CreateAccount(ctx, draft)
	if err != nil {
		return "", fmt.Errorf("create account: %w", err)
	}

	s.logger.Info().
		Str("func", "accountService.Create").
		Str("secret_fp", utils.Fingerprint(draft.Secret)).
		Str("answer", answer).
		Msg("account submitted")

	if accountRefused(answer) {
		return answer, ErrAccountRejected
	}
	return answer, nil
}

func (s *accountService) Get(ctx context.Context, accountID int64) (models.EditableAccount, error) {
	account, err := s.adapter.GetAccount(ctx, accountID)
	if err != nil {
		return models.EditableAccount{}, fmt.Errorf("get account %d: %w", accountID, err)
	}
	return account, nil
}

func (s *accountService) Edit(ctx context.Context, account models.EditableAccount) (string, error) {
	account.Name = strings.TrimSpace(account.Name)
	if account.Name == "" {
		return "", ErrAccountIncomplete
	}
	if account.OTPDigits <= 0 {
		account.OTPDigits = app.DefaultOTPDigits
	}
	if account.TOTPStep <= 0 {
		account.TOTPStep = app.DefaultTOTPStep
	}

	answer, err := s.adapter.EditAccount(ctx, account)
	if err != nil {
		return "", fmt.Errorf("edit account %d: %w", account.ID, err)
	}
	if accountRefused(answer) {
		return answer, ErrAccountRejected
	}
	return answer, nil
}

func (s *accountService) Delete(ctx context.Context, accountID int64) error {
	answer, err := s.adapter.DeleteAccount(ctx, accountID)
	if err != nil {
		return fmt.Errorf("delete account %d: %w", accountID, err)
	}
	if answer != app.MsgAccountDeleted {
		return fmt.Errorf("%w: %s", ErrAccountNotDeleted, answer)
	}

	s.logger.Info().
		Str("func", "accountService.Delete").
		Int64("account_id", accountID).
		Msg("account deleted")
	return nil
}

func (s *accountService) OneTimePassword(ctx context.Context, accountID int64) (string, error) {
	code, err := s.adapter.OneTimePassword(ctx, accountID)
	if err != nil {
		return "", fmt.Errorf("one-time password for account %d: %w", accountID, err)
	}
	return code, nil
}

func (s *accountService) Export(ctx context.Context, path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("export: empty path")
	}
	if !strings.HasSuffix(path, app.ExportFileSuffix) {
		path += app.ExportFileSuffix
	}

	uris, err := s.adapter.ExportAccounts(ctx)
	if err != nil {
		return "", fmt.Errorf("export accounts: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err = os.MkdirAll(dir, 0o700); err != nil {
			return "", fmt.Errorf("create export dir: %w", err)
		}
	}
	if err = os.WriteFile(path, []byte(uris), 0o600); err != nil {
		return "", fmt.Errorf("write export file: %w", err)
	}

	s.logger.Info().
		Str("func", "accountService.Export").
		Str("path", path).
		Int("accounts", countLines(uris)).
		Msg("accounts exported")

	return path, nil
}

func (s *accountService) NewCountdown(account models.Account) *Countdown {
	cfg := models.CountdownConfig{StepSeconds: account.TOTPStep}
	if cfg.StepSeconds <= 0 {
		cfg.StepSeconds = int(s.defaultStep / time.Second)
	}

	rowLogger := &logger.Logger{Logger: s.logger.With().Int64("account_id", account.ID).Logger()}

	return NewCountdown(cfg, func(ctx context.Context) (string, error) {
		return s.OneTimePassword(ctx, account.ID)
	}, s.clock, rowLogger)
}

func accountRefused(answer string) bool {
	return strings.Contains(answer, app.MsgInvalidMarker) || strings.HasPrefix(answer, app.MsgAccountExists)
}

func countLines(text string) int {
	n := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}
