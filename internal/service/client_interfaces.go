// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-otp-keeper/models"
)

// ImportService turns pasted text or an exported file into import rows and
// commits the rows the user kept flagged.
type ImportService interface {
	// IsOTPURI reports whether line has the shape of an otpauth provisioning
	// URI with a secret parameter.
	IsOTPURI(line string) bool

	// Parse splits text into lines, drops every line that is not an OTP URI
	// and asks the backend to decode the rest. The result keeps input order
	// and holds one entry per recognised line; decode failures are Rejected
	// entries, never errors. The error is non-nil only if ctx ends first.
	Parse(ctx context.Context, text string) ([]models.DecodeResult, error)

	// ParseFile reads the text file at path and parses it like Parse.
	ParseFile(ctx context.Context, path string) ([]models.DecodeResult, error)

	// Process submits every flagged row and reports how many were attempted
	// and how many failed. Unflagged rows cause no backend call. Flagged
	// Rejected rows count as attempted and failed without a call.
	Process(ctx context.Context, rows []models.DecodeResult) models.ImportOutcome

	// NewSession starts an editable working copy of results.
	NewSession(source string, results []models.DecodeResult) *ImportSession

	// Commit processes the session's working copy once and records the run
	// in the local journal. The outcome is valid even when the returned
	// error reports a journal failure.
	Commit(ctx context.Context, session *ImportSession) (models.ImportOutcome, error)

	// History returns the most recent import runs, newest first.
	History(ctx context.Context, limit uint64) ([]models.ImportRun, error)
}

// SyncAccountService drives the remote-sync credential through its
// lifecycle: load, unlock, edit, validate and save.
type SyncAccountService interface {
	// Load fetches the stored credential. Missing credential → NO_ACCOUNT
	// with empty unlocked fields; existing credential → LOADED_LOCKED.
	// During a submission it returns the current snapshot without a request.
	Load(ctx context.Context) SyncSnapshot

	// Unlock turns LOADED_LOCKED into EDITING keeping the current values.
	Unlock() SyncSnapshot

	// SetHost, SetUsername and SetPassword edit the form. They fail with
	// ErrFormLocked while locked and ErrSubmitInProgress while loading.
	SetHost(host string) error
	SetUsername(username string) error
	SetPassword(password string) error

	// Submit validates and then saves the current values. Submitting a
	// locked form only unlocks it. A submit while another is in flight
	// fails with ErrSubmitInProgress.
	Submit(ctx context.Context) (SyncSnapshot, error)

	// Snapshot returns the state without side effects.
	Snapshot() SyncSnapshot

	// Logs returns the remote sync history.
	Logs(ctx context.Context) ([]models.SyncLog, error)
}

// AccountService manages stored accounts through the backend.
type AccountService interface {
	// Create adds an account entered by hand. Name and secret are required;
	// zero digits and step take the defaults. The backend's answer is
	// returned verbatim, with ErrAccountRejected when it refused.
	Create(ctx context.Context, draft models.DraftAccount) (string, error)

	// Get returns the editable settings of an account.
	Get(ctx context.Context, accountID int64) (models.EditableAccount, error)

	// Edit updates an account; the secret cannot be changed. Answers like
	// Create.
	Edit(ctx context.Context, account models.EditableAccount) (string, error)

	// Delete removes an account. Any answer but success yields
	// ErrAccountNotDeleted.
	Delete(ctx context.Context, accountID int64) error

	// List returns the accounts whose name matches filter.
	List(ctx context.Context, filter string) ([]models.Account, error)

	// OneTimePassword returns the account's current code; on failure the code
	// is empty.
	OneTimePassword(ctx context.Context, accountID int64) (string, error)

	// Export writes all accounts as otpauth URIs to path, adding the
	// ".wa.txt" suffix when missing, and returns the written path.
	Export(ctx context.Context, path string) (string, error)

	// NewCountdown returns an unmounted refresh scheduler for account.
	NewCountdown(account models.Account) *Countdown
}

// RemoteSyncJob periodically asks the backend to synchronise with the remote
// server once a sync credential exists.
type RemoteSyncJob interface {
	// Start launches the background goroutine. Any previous run is stopped.
	Start(ctx context.Context)

	// Stop cancels the goroutine and waits for it to exit.
	Stop()

	// Enable allows periodic attempts; it does not run one.
	Enable()

	// Trigger enables periodic attempts and requests one attempt now.
	Trigger()
}
