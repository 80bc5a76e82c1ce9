package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-otp-keeper/internal/service"
	"github.com/MKhiriev/go-otp-keeper/models"
)

// NavigateTo switches the active page. Payload, if set, is delivered to the
// new page after its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

type accountsLoadedMsg struct {
	generation int
	items      []models.Account
	err        error
}

// countdownTickMsg redraws visible countdowns once a second.
type countdownTickMsg struct {
	generation int
}

type copiedMsg struct {
	err error
}

type exportDoneMsg struct {
	path string
	err  error
}

// editAccountMsg opens the account form on a stored account.
type editAccountMsg struct {
	id int64
}

type accountFetchedMsg struct {
	account models.EditableAccount
	err     error
}

type accountSavedMsg struct {
	answer string
	err    error
}

type accountDeletedMsg struct {
	err error
}

type parsedMsg struct {
	source  string
	results []models.DecodeResult
	err     error
}

type committedMsg struct {
	outcome models.ImportOutcome
	err     error
}

type historyLoadedMsg struct {
	runs []models.ImportRun
	err  error
}

type syncLoadedMsg struct {
	snapshot service.SyncSnapshot
}

type syncSubmittedMsg struct {
	snapshot service.SyncSnapshot
	err      error
}

type logsLoadedMsg struct {
	logs []models.SyncLog
	err  error
}

type clearStatusMsg struct{}
