package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-otp-keeper/internal/service"
	"github.com/MKhiriev/go-otp-keeper/models"
)

func newTestAccountForm(t *testing.T) (*AccountFormModel, *stubAccountService) {
	t.Helper()
	svc := &stubAccountService{
		editable: models.EditableAccount{
			ID: 1, Name: "Hello World", OTPDigits: 6, TOTPStep: 60, Algorithm: models.AlgorithmSHA512,
		},
	}
	m := NewAccountFormModel(context.Background(), svc)
	m.Init()
	return m, svc
}

// typeText вводит текст в поле, на котором стоит фокус.
func typeText(m *AccountFormModel, text string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

// runSave выполняет команду сохранения и возвращает её сообщение форме.
func runSave(t *testing.T, m *AccountFormModel, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	for _, msg := range cmd().(tea.BatchMsg) {
		if saved, ok := msg().(accountSavedMsg); ok {
			m.Update(saved)
			return
		}
	}
	t.Fatal("no save result")
}

func TestAccountForm_RequiresNameAndSecret(t *testing.T) {
	tests := []struct {
		name   string
		fill   func(m *AccountFormModel)
		wantOK bool
	}{
		{name: "no name", fill: func(m *AccountFormModel) {
			m.setFocus(formFieldSecret)
			typeText(m, "Hello")
		}},
		{name: "no secret", fill: func(m *AccountFormModel) { typeText(m, "Hello") }},
		{name: "both empty", fill: func(*AccountFormModel) {}},
		{name: "both set", fill: func(m *AccountFormModel) {
			typeText(m, "Hello")
			m.setFocus(formFieldSecret)
			typeText(m, "World")
		}, wantOK: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestAccountForm(t)
			tt.fill(m)

			cmd := m.submit()
			if tt.wantOK {
				assert.NotNil(t, cmd)
				assert.True(t, m.saving)
				return
			}
			assert.Nil(t, cmd)
			assert.Equal(t, "Укажите имя и секрет", m.errMsg)
		})
	}
}

func TestAccountForm_CreateShowsAnswer(t *testing.T) {
	tests := []struct {
		name    string
		answer  string
		err     error
		wantOK  string
		wantErr string
	}{
		{name: "added", answer: "Added Successfully", wantOK: "Added Successfully"},
		{name: "duplicate", answer: "Account already exists", err: service.ErrAccountRejected, wantErr: "Account already exists"},
		{name: "invalid secret", answer: "Invalid 2FA Secret", err: service.ErrAccountRejected, wantErr: "Invalid 2FA Secret"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, svc := newTestAccountForm(t)
			svc.createAns, svc.createErr = tt.answer, tt.err

			typeText(m, "Hello")
			m.Update(tea.KeyMsg{Type: tea.KeyTab})
			typeText(m, "World")
			_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
			runSave(t, m, cmd)

			require.Len(t, svc.created, 1)
			assert.Equal(t, models.DraftAccount{Name: "Hello", Secret: "World", OTPDigits: 6, TOTPStep: 30}, svc.created[0])
			assert.False(t, m.saving)
			assert.Equal(t, tt.wantOK, m.status)
			assert.Equal(t, tt.wantErr, m.errMsg)
		})
	}
}

func TestAccountForm_EditLoadsAndSkipsSecret(t *testing.T) {
	m, svc := newTestAccountForm(t)

	_, cmd := m.Update(editAccountMsg{id: 1})
	require.NotNil(t, cmd)
	assert.True(t, m.loading)
	for _, msg := range cmd().(tea.BatchMsg) {
		if fetched, ok := msg().(accountFetchedMsg); ok {
			m.Update(fetched)
		}
	}

	require.False(t, m.loading)
	assert.Equal(t, "Hello World", m.inputs[formFieldName].Value())
	assert.Empty(t, m.inputs[formFieldSecret].Value())
	assert.Equal(t, "6", m.inputs[formFieldDigits].Value())
	assert.Equal(t, "60", m.inputs[formFieldStep].Value())
	assert.Equal(t, models.AlgorithmSHA512, m.algorithm)

	// поле секрета пропускается при переходе
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, formFieldDigits, m.focus)

	m.setFocus(formFieldName)
	typeText(m, " Edit")
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	runSave(t, m, cmd)

	require.Len(t, svc.edited, 1)
	assert.Equal(t, models.EditableAccount{
		ID: 1, Name: "Hello World Edit", OTPDigits: 6, TOTPStep: 60, Algorithm: models.AlgorithmSHA512,
	}, svc.edited[0])
	assert.Equal(t, "Updated Account", m.status)
	assert.Empty(t, svc.created)
}

func TestAccountForm_EditNeedsNoSecret(t *testing.T) {
	m, _ := newTestAccountForm(t)
	m.accountID = 1

	assert.Nil(t, m.submit())
	assert.Equal(t, "Укажите имя", m.errMsg)

	typeText(m, "Hello")
	assert.NotNil(t, m.submit())
}

func TestAccountForm_AlgorithmCycles(t *testing.T) {
	m, _ := newTestAccountForm(t)
	m.setFocus(formFieldAlgorithm)

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, models.AlgorithmSHA1, m.algorithm)

	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, models.AlgorithmSHA512, m.algorithm)
}

func TestAccountForm_InitResetsAfterEdit(t *testing.T) {
	m, _ := newTestAccountForm(t)
	m.accountID = 1
	m.inputs[formFieldName].SetValue("old")
	m.status = "Updated Account"

	m.Init()

	assert.False(t, m.editing())
	assert.Empty(t, m.inputs[formFieldName].Value())
	assert.Equal(t, "30", m.inputs[formFieldStep].Value())
	assert.Empty(t, m.status)
}
