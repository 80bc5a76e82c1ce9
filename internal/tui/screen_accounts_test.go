package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-otp-keeper/internal/app"
	"github.com/MKhiriev/go-otp-keeper/internal/logger"
	"github.com/MKhiriev/go-otp-keeper/internal/service"
	"github.com/MKhiriev/go-otp-keeper/models"
)

// stubAccountService отдаёт фиксированный код для каждого аккаунта и
// запоминает изменения.
type stubAccountService struct {
	clock    clockwork.Clock
	accounts []models.Account
	exported string

	created   []models.DraftAccount
	createAns string
	createErr error
	editable  models.EditableAccount
	edited    []models.EditableAccount
	deleted   []int64
	deleteErr error
}

func (s *stubAccountService) Create(_ context.Context, draft models.DraftAccount) (string, error) {
	s.created = append(s.created, draft)
	return s.createAns, s.createErr
}

func (s *stubAccountService) Get(_ context.Context, id int64) (models.EditableAccount, error) {
	if id != s.editable.ID {
		return models.EditableAccount{}, errors.New("Invalid account id")
	}
	return s.editable, nil
}

func (s *stubAccountService) Edit(_ context.Context, account models.EditableAccount) (string, error) {
	s.edited = append(s.edited, account)
	return "Updated Account", nil
}

func (s *stubAccountService) Delete(_ context.Context, id int64) error {
	s.deleted = append(s.deleted, id)
	return s.deleteErr
}

func (s *stubAccountService) List(context.Context, string) ([]models.Account, error) {
	return s.accounts, nil
}

func (s *stubAccountService) OneTimePassword(_ context.Context, id int64) (string, error) {
	return map[int64]string{1: "111111", 2: "222222"}[id], nil
}

func (s *stubAccountService) Export(_ context.Context, path string) (string, error) {
	s.exported = path
	return path + app.ExportFileSuffix, nil
}

func (s *stubAccountService) NewCountdown(a models.Account) *service.Countdown {
	return service.NewCountdown(models.CountdownConfig{StepSeconds: 30}, func(ctx context.Context) (string, error) {
		return s.OneTimePassword(ctx, a.ID)
	}, s.clock, logger.Nop())
}

func newLoadedAccountsModel(t *testing.T) (*AccountsModel, *clockwork.FakeClock) {
	t.Helper()
	m, clock, _ := newLoadedAccountsModelWithStub(t)
	return m, clock
}

func newLoadedAccountsModelWithStub(t *testing.T) (*AccountsModel, *clockwork.FakeClock, *stubAccountService) {
	t.Helper()
	clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 1, 12, 0, 10, 0, time.UTC))
	svc := &stubAccountService{
		clock:    clock,
		accounts: []models.Account{{ID: 1, Name: "GitHub"}, {ID: 2, Name: "AWS"}},
	}

	m := NewAccountsModel(context.Background(), svc)
	m.Init()
	m.Update(accountsLoadedMsg{generation: m.generation, items: svc.accounts})
	t.Cleanup(m.Leave)
	return m, clock, svc
}

func TestAccountsModel_RevealsOnlyCursorRow(t *testing.T) {
	m, clock := newLoadedAccountsModel(t)

	clock.BlockUntil(1)
	assert.Equal(t, "111111", m.rows[0].Snapshot().Code)
	assert.Equal(t, app.MaskedCode, m.rows[1].Snapshot().Code)

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	clock.BlockUntil(1)

	assert.Equal(t, 1, m.idx)
	assert.Equal(t, app.MaskedCode, m.rows[0].Snapshot().Code, "строка, с которой ушёл курсор, маскируется")
	assert.Equal(t, "222222", m.rows[1].Snapshot().Code)
}

func TestAccountsModel_LeaveMasksEverything(t *testing.T) {
	m, clock := newLoadedAccountsModel(t)
	clock.BlockUntil(1)

	m.Leave()
	for _, row := range m.rows {
		snap := row.Snapshot()
		assert.Equal(t, app.MaskedCode, snap.Code)
		assert.False(t, snap.Active)
	}
}

func TestAccountsModel_StaleTickIgnored(t *testing.T) {
	m, _ := newLoadedAccountsModel(t)

	_, cmd := m.Update(countdownTickMsg{generation: m.generation - 1})
	assert.Nil(t, cmd)

	_, cmd = m.Update(countdownTickMsg{generation: m.generation})
	assert.NotNil(t, cmd, "актуальный тик планирует следующий")
}

func TestAccountsModel_StaleLoadIgnored(t *testing.T) {
	m, _ := newLoadedAccountsModel(t)

	m.Update(accountsLoadedMsg{generation: m.generation - 1, items: nil})
	assert.Len(t, m.items, 2)
}

func TestAccountsModel_Copy(t *testing.T) {
	m, clock := newLoadedAccountsModel(t)
	clock.BlockUntil(1)

	var copied string
	orig := writeClipboard
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { writeClipboard = orig })

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.Equal(t, "111111", copied)
	assert.Equal(t, "Код скопирован", m.status)
}

func TestAccountsModel_CopyError(t *testing.T) {
	m, clock := newLoadedAccountsModel(t)
	clock.BlockUntil(1)

	orig := writeClipboard
	writeClipboard = func(string) error { return errors.New("no clipboard") }
	t.Cleanup(func() { writeClipboard = orig })

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.Contains(t, m.errMsg, "no clipboard")
}

func TestAccountsModel_Export(t *testing.T) {
	m, _ := newLoadedAccountsModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	require.True(t, m.exporting)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("backup")})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.False(t, m.exporting)
	assert.Equal(t, "Экспортировано в backup.wa.txt", m.status)
}

func TestAccountsModel_ViewShowsRows(t *testing.T) {
	m, clock := newLoadedAccountsModel(t)
	clock.BlockUntil(1)

	view := m.View()
	assert.Contains(t, view, "GitHub")
	assert.Contains(t, view, "AWS")
	assert.Contains(t, view, app.MaskedCode)
	assert.Contains(t, view, "20s")
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestAccountsModel_DeleteConfirmed(t *testing.T) {
	m, clock, svc := newLoadedAccountsModelWithStub(t)
	clock.BlockUntil(1)

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := m.Update(runeKey("d"))
	assert.Nil(t, cmd)
	require.NotNil(t, m.deleting)
	assert.Contains(t, m.View(), `Удалить аккаунт "AWS"?`)

	_, cmd = m.Update(runeKey("y"))
	require.NotNil(t, cmd)
	assert.Nil(t, m.deleting)

	_, cmd = m.Update(cmd())
	assert.Equal(t, []int64{2}, svc.deleted)
	assert.Equal(t, "Аккаунт удалён", m.status)
	assert.True(t, m.loading, "после удаления список перезагружается")
	assert.NotNil(t, cmd)
}

func TestAccountsModel_DeleteCancelled(t *testing.T) {
	m, _, svc := newLoadedAccountsModelWithStub(t)

	m.Update(runeKey("d"))
	require.NotNil(t, m.deleting)

	_, cmd := m.Update(runeKey("n"))
	assert.Nil(t, cmd, "отказ не переходит к новому аккаунту")
	assert.Nil(t, m.deleting)
	assert.Empty(t, svc.deleted)
}

func TestAccountsModel_DeleteFailed(t *testing.T) {
	m, _, svc := newLoadedAccountsModelWithStub(t)
	svc.deleteErr = service.ErrAccountNotDeleted

	m.Update(runeKey("d"))
	_, cmd := m.Update(runeKey("y"))
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.Equal(t, []int64{1}, svc.deleted)
	assert.Empty(t, m.status)
	assert.Equal(t, service.ErrAccountNotDeleted.Error(), m.errMsg)
}

func TestAccountsModel_NewAndEditNavigate(t *testing.T) {
	m, _ := newLoadedAccountsModel(t)

	_, cmd := m.Update(runeKey("n"))
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageAccount}, cmd())

	_, cmd = m.Update(runeKey("e"))
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageAccount, Payload: editAccountMsg{id: 1}}, cmd())
}
