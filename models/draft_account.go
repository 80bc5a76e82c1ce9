// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DraftAccount is an in-memory, not yet persisted account produced while
// importing provisioning URIs. It lives only for the duration of an import
// session.
type DraftAccount struct {
	// Import marks the draft for submission. Drafts with Import == false are
	// never sent to the backend.
	Import bool `json:"import"`

	// Name is the account label, already URL-decoded by the backend.
	Name string `json:"name"`

	// Secret is the shared OTP secret as found in the URI.
	Secret string `json:"secret"`

	// TOTPStep is the code rotation interval in seconds.
	TOTPStep int `json:"totp_step"`

	// OTPDigits is the number of digits in a generated code.
	OTPDigits int `json:"otp_digits"`

	// Algorithm is the HMAC function, or autodetect when the URI has none.
	Algorithm Algorithm `json:"algorithm"`
}

// DecodeResult is the outcome of decoding one recognised provisioning URI.
// Exactly one of the two variants is meaningful: a decoded draft
// (Rejected == false) or a rejection carrying the reason.
type DecodeResult struct {
	// Line is the zero-based line number of the URI in the source text.
	Line int

	// URI is the raw provisioning URI as read from the source.
	URI string

	// Draft holds the decoded account. For rejected results only the Import
	// flag is meaningful.
	Draft DraftAccount

	// Rejected reports that the backend could not decode the URI.
	Rejected bool

	// Reason explains the rejection. Nil for decoded results.
	Reason error
}

// Decoded builds the successful variant of [DecodeResult].
func Decoded(line int, uri string, draft DraftAccount) DecodeResult {
	draft.Import = true
	return DecodeResult{Line: line, URI: uri, Draft: draft}
}

// Rejected builds the failed variant of [DecodeResult]. The row stays
// flagged for import so that it is accounted for as a failure at commit
// time.
func Rejected(line int, uri string, reason error) DecodeResult {
	return DecodeResult{
		Line:     line,
		URI:      uri,
		Draft:    DraftAccount{Import: true},
		Rejected: true,
		Reason:   reason,
	}
}
