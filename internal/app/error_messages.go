// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// OTP keeper services and terminal UI.
//
// Msg* constants are the exact strings exchanged with the backend or shown to
// the user. Keeping them in one place keeps the wording consistent between
// the code that produces a message and the code that recognises it.
package app

const (
	// MsgSyncAccountDoesNotExist is the backend's answer to a sync credential
	// lookup when none has been saved yet.
	MsgSyncAccountDoesNotExist = "Sync Account does not exist"

	// MsgSyncAccountValidated is shown after a sync credential was validated
	// and saved.
	MsgSyncAccountValidated = "Successfully Validated Account"

	// MsgInvalidMarker is the substring by which a create-account answer is
	// recognised as a rejection.
	MsgInvalidMarker = "Invalid"

	// MsgAccountExists starts the backend's answer to creating an account
	// whose name is already taken.
	MsgAccountExists = "Account already exists"

	// MsgAccountDeleted is the backend's answer to a successful delete.
	MsgAccountDeleted = "Success"
)

// Defaults of an account entered by hand.
const (
	DefaultOTPDigits = 6
	DefaultTOTPStep  = 30
)

// MaskedCode replaces a one-time code that is not being displayed. It is six
// dashes whatever the account's digit count.
const MaskedCode = "------"

// ExportFileSuffix is appended to export file names that lack it.
const ExportFileSuffix = ".wa.txt"
