// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrRowOutOfRange is returned when an import session operation names a
	// row that does not exist.
	ErrRowOutOfRange = errors.New("import row out of range")
	// ErrRowRejected is returned when renaming a row the backend could not
	// decode.
	ErrRowRejected = errors.New("import row was rejected by the decoder")
	// ErrEditorClosed is returned by SetName when no row editor is open.
	ErrEditorClosed = errors.New("no import row is being edited")
	// ErrSessionCommitted is returned when a committed session is changed or
	// committed again.
	ErrSessionCommitted = errors.New("import session already committed")
	// ErrImportNotRecorded wraps a journal failure after the batch itself
	// was processed.
	ErrImportNotRecorded = errors.New("import run was not recorded")
)

var (
	// ErrFormLocked is returned when editing a locked sync credential.
	ErrFormLocked = errors.New("sync credential form is locked")
	// ErrSubmitInProgress is returned when a second submit or an edit
	// arrives while validation or saving is in flight.
	ErrSubmitInProgress = errors.New("sync credential submission in progress")
	// ErrSaveFailed wraps a failed save that followed a successful
	// validation.
	ErrSaveFailed = errors.New("sync credential save failed after validation")
	// ErrMissingCredentialID is returned when the backend saved a credential
	// but did not report its id.
	ErrMissingCredentialID = errors.New("saved sync credential has no id")
)

var (
	// ErrAccountIncomplete is returned when an account form lacks its name,
	// or its secret for a new account.
	ErrAccountIncomplete = errors.New("account name and secret are required")
	// ErrAccountRejected is returned together with the backend's answer when
	// it refused to create or update an account.
	ErrAccountRejected = errors.New("account rejected by backend")
	// ErrAccountNotDeleted wraps any delete answer other than success.
	ErrAccountNotDeleted = errors.New("account was not deleted")
)
