// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ImportOutcome is the aggregate result of one committed import batch.
// Failed never exceeds Attempted, and Attempted only counts rows that were
// flagged for import.
type ImportOutcome struct {
	Attempted int `json:"attempted"`
	Failed    int `json:"failed"`
}

// Succeeded returns the number of rows the backend accepted.
func (o ImportOutcome) Succeeded() int {
	return o.Attempted - o.Failed
}

// ImportRun is a journal entry describing a committed import batch.
type ImportRun struct {
	ID         string
	Source     string
	StartedAt  time.Time
	FinishedAt time.Time
	Outcome    ImportOutcome
}
