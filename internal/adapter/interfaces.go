// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the OTP keeper client
// and its backend.
//
// The primary abstraction is [BackendAdapter], which decouples the service
// layer from the protocol. The package ships an HTTP/REST implementation
// ([NewHTTPBackendAdapter]) built on resty.
//
// Response shapes are validated here, once: callers receive typed values or
// errors. Non-2xx responses become a [*ResponseError] whose message is the
// response body verbatim and which unwraps to a status sentinel such as
// [ErrNotFound], so both the user-facing text and [errors.Is] checks work.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-otp-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_adapter_mock.go -package=mock

// BackendAdapter defines every request the client sends to the backend.
type BackendAdapter interface {
	// DecodeOTPURI asks the backend to decode one provisioning URI. Returns
	// [ErrDecodeRejected] (wrapped with the backend's reason) when the
	// response is an error object, and [ErrMalformedResponse] when it is not
	// a JSON object at all.
	DecodeOTPURI(ctx context.Context, uri string) (models.DraftAccount, error)

	// CreateAccount submits one draft. The backend answers with a JSON string
	// whose content the caller classifies; a non-string answer yields
	// [ErrMalformedResponse].
	CreateAccount(ctx context.Context, draft models.DraftAccount) (string, error)

	// GetSyncCredential returns the persisted sync credential. When none
	// exists the backend answers non-2xx and the error text is its message.
	GetSyncCredential(ctx context.Context) (models.SyncCredential, error)

	// ValidateSyncCredential checks host/username/password against the remote
	// sync server. The returned token is opaque to the client.
	ValidateSyncCredential(ctx context.Context, host, username, password string) (string, error)

	// SaveSyncCredential creates or updates the sync credential and returns
	// the stored record.
	SaveSyncCredential(ctx context.Context, host, username, password string) (models.SyncCredential, error)

	// GetAccount returns the editable settings of one account. An error
	// object in the response yields [ErrAccountRejected].
	GetAccount(ctx context.Context, accountID int64) (models.EditableAccount, error)

	// EditAccount updates name, digits, step and algorithm of an account and
	// returns the backend's answer.
	EditAccount(ctx context.Context, account models.EditableAccount) (string, error)

	// DeleteAccount removes an account and returns the backend's answer.
	DeleteAccount(ctx context.Context, accountID int64) (string, error)

	// ListAccounts returns the stored accounts whose name matches filter.
	ListAccounts(ctx context.Context, filter string) ([]models.Account, error)

	// OneTimePassword returns the current code of the account.
	OneTimePassword(ctx context.Context, accountID int64) (string, error)

	// ExportAccounts returns all accounts as newline-separated otpauth URIs.
	ExportAccounts(ctx context.Context) (string, error)

	// SyncLogs returns the remote sync history.
	SyncLogs(ctx context.Context) ([]models.SyncLog, error)

	// AttemptSync asks the backend to synchronise with the remote server now.
	AttemptSync(ctx context.Context) error
}
