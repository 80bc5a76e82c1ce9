// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Account is the list representation of a persisted OTP account as returned
// by the backend. Secrets never leave the backend in this form.
type Account struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Colour string `json:"colour"`

	// TOTPStep is the rotation interval in seconds. Older backends omit it,
	// in which case the client falls back to its configured default.
	TOTPStep int `json:"totp_step,omitempty"`
}

// CountdownConfig is the read-only input of a countdown scheduler.
type CountdownConfig struct {
	StepSeconds int
}

// Step returns the configured interval as a duration.
func (c CountdownConfig) Step() time.Duration {
	return time.Duration(c.StepSeconds) * time.Second
}

// EditableAccount holds the settings of a stored account that can be
// changed after creation. The secret is never returned by the backend and
// cannot be edited.
type EditableAccount struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	OTPDigits int       `json:"otp_digits"`
	TOTPStep  int       `json:"totp_step"`
	Algorithm Algorithm `json:"algorithm"`
}
