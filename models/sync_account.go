// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// SyncCredential is the remote-sync account. A nil ID means the credential
// has not been created on the backend yet.
type SyncCredential struct {
	ID       *int64 `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
	URL      string `json:"url"`
}

// SyncState is the state of the sync lifecycle controller.
type SyncState int

const (
	// SyncStateNoAccount means no credential exists yet; the form is editable.
	SyncStateNoAccount SyncState = iota
	// SyncStateLoadedLocked means a persisted credential is shown read-only.
	SyncStateLoadedLocked
	// SyncStateEditing means the form is unlocked and being edited.
	SyncStateEditing
	// SyncStateValidating means the credential is being checked remotely.
	SyncStateValidating
	// SyncStateSaving means the validated credential is being persisted.
	SyncStateSaving
	// SyncStateError means the last validation failed.
	SyncStateError
)

var syncStateNames = map[SyncState]string{
	SyncStateNoAccount:    "NO_ACCOUNT",
	SyncStateLoadedLocked: "LOADED_LOCKED",
	SyncStateEditing:      "EDITING",
	SyncStateValidating:   "VALIDATING",
	SyncStateSaving:       "SAVING",
	SyncStateError:        "ERROR",
}

func (s SyncState) String() string {
	if name, ok := syncStateNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// SyncLogType classifies a backend sync log entry.
type SyncLogType int

const (
	// SyncLogUnknown is any log type the client does not recognise.
	SyncLogUnknown SyncLogType = iota
	// SyncLogError is a failed synchronisation attempt.
	SyncLogError
)

var syncLogTypeWireNames = map[SyncLogType]string{
	SyncLogUnknown: "",
	SyncLogError:   "ERROR",
}

func (t SyncLogType) String() string {
	return syncLogTypeWireNames[t]
}

// MarshalJSON encodes the log type as its wire name.
func (t SyncLogType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON maps the wire name back to a [SyncLogType].
func (t *SyncLogType) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return err
	}
	*t = SyncLogUnknown
	for typ, wire := range syncLogTypeWireNames {
		if wire == name && wire != "" {
			*t = typ
		}
	}
	return nil
}

// SyncLog is one entry of the backend's synchronisation log.
type SyncLog struct {
	ID        int64       `json:"id"`
	Log       string      `json:"log"`
	Type      SyncLogType `json:"log_type"`
	Timestamp int64       `json:"timestamp"`
}

// Time returns the entry timestamp (seconds since the epoch).
func (l SyncLog) Time() time.Time {
	return time.Unix(l.Timestamp, 0)
}
