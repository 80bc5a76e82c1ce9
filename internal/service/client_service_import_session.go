// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"slices"
	"sync"

	"github.com/MKhiriev/go-otp-keeper/models"
)

// ImportSession is the editable working copy of one parsed import. The
// decode results it was built from are never modified: Reset rebuilds the
// working copy from them and Commit submits the working copy.
//
// At most one row editor is open at a time; it is keyed by row position and
// only changes that row's name.
type ImportSession struct {
	ID     string
	Source string

	mu        sync.Mutex
	original  []models.DecodeResult
	rows      []models.DecodeResult
	editing   int
	committed bool
}

func newImportSession(id, source string, results []models.DecodeResult) *ImportSession {
	return &ImportSession{
		ID:       id,
		Source:   source,
		original: slices.Clone(results),
		rows:     slices.Clone(results),
		editing:  -1,
	}
}

// Len returns the number of rows.
func (s *ImportSession) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rows)
}

// Rows returns a copy of the working rows.
func (s *ImportSession) Rows() []models.DecodeResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.rows)
}

// Original returns a copy of the decode results the session started from.
func (s *ImportSession) Original() []models.DecodeResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.original)
}

// Flagged returns how many rows will be submitted on commit.
func (s *ImportSession) Flagged() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, r := range s.rows {
		if r.Draft.Import {
			n++
		}
	}
	return n
}

// Toggle flips the import flag of row i and returns the new value.
func (s *ImportSession) Toggle(i int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkRow(i); err != nil {
		return false, err
	}
	s.rows[i].Draft.Import = !s.rows[i].Draft.Import
	return s.rows[i].Draft.Import, nil
}

// OpenEditor opens the name editor on row i, closing any other editor.
func (s *ImportSession) OpenEditor(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkRow(i); err != nil {
		return err
	}
	if s.rows[i].Rejected {
		return ErrRowRejected
	}
	s.editing = i
	return nil
}

// Editing returns the row whose editor is open.
func (s *ImportSession) Editing() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editing, s.editing >= 0
}

// SetName renames the row being edited.
func (s *ImportSession) SetName(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.committed {
		return ErrSessionCommitted
	}
	if s.editing < 0 {
		return ErrEditorClosed
	}
	s.rows[s.editing].Draft.Name = name
	return nil
}

// CloseEditor closes the open editor, if any.
func (s *ImportSession) CloseEditor() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editing = -1
}

// Reset discards every edit and toggle.
func (s *ImportSession) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.committed {
		return ErrSessionCommitted
	}
	s.rows = slices.Clone(s.original)
	s.editing = -1
	return nil
}

// Committed reports whether the session has been submitted.
func (s *ImportSession) Committed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.committed
}

// begin freezes the session and returns the rows to submit.
func (s *ImportSession) begin() ([]models.DecodeResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.committed {
		return nil, ErrSessionCommitted
	}
	s.committed = true
	s.editing = -1
	return slices.Clone(s.rows), nil
}

func (s *ImportSession) checkRow(i int) error {
	if s.committed {
		return ErrSessionCommitted
	}
	if i < 0 || i >= len(s.rows) {
		return ErrRowOutOfRange
	}
	return nil
}
