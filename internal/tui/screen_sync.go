package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-otp-keeper/internal/service"
	"github.com/MKhiriev/go-otp-keeper/models"
)

const (
	syncFieldHost = iota
	syncFieldUsername
	syncFieldPassword
)

// SyncModel is the remote sync credential form. It renders whatever the
// controller reports and never keeps its own copy of the lifecycle state.
type SyncModel struct {
	ctx context.Context
	svc service.SyncAccountService

	inputs  []textinput.Model
	focus   int
	spinner spinner.Model

	snapshot service.SyncSnapshot
	loaded   bool
	// submitting mirrors the controller's loading flag between the key press
	// and the first render after the submit command starts
	submitting bool
	errMsg     string
	overlay    *errorOverlayModel
}

func NewSyncModel(ctx context.Context, svc service.SyncAccountService) *SyncModel {
	host := textinput.New()
	host.Placeholder = "https://sync.example.com"
	host.Width = 50

	username := textinput.New()
	username.Placeholder = "username"
	username.Width = 50

	password := textinput.New()
	password.Placeholder = "password"
	password.Width = 50
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &SyncModel{
		ctx:     ctx,
		svc:     svc,
		inputs:  []textinput.Model{host, username, password},
		spinner: s,
	}
}

func (m *SyncModel) Init() tea.Cmd {
	m.loaded = false
	m.errMsg = ""
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		return syncLoadedMsg{snapshot: svc.Load(ctx)}
	}
}

func (m *SyncModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case syncLoadedMsg:
		m.loaded = true
		m.apply(msg.snapshot)
		return m, m.focusFirst()
	case syncSubmittedMsg:
		m.submitting = false
		m.errMsg = ""
		if msg.err != nil {
			m.overlay = &errorOverlayModel{message: humanizeBackendUnavailableError(msg.err)}
		}
		m.apply(msg.snapshot)
		return m, m.focusFirst()
	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateFocused(msg)
	}

	if m.overlay != nil {
		if key.Matches(keyMsg, keys.enter) || key.Matches(keyMsg, keys.esc) {
			m.overlay = nil
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
	case keyMsg.String() == "ctrl+l":
		return m, func() tea.Msg { return NavigateTo{Page: pageLogs} }
	}

	if !m.loaded || m.busy() {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.unlock):
		m.apply(m.svc.Unlock())
		return m, m.focusFirst()
	case key.Matches(keyMsg, keys.tab):
		m.moveFocus(1)
		return m, nil
	case key.Matches(keyMsg, keys.backtab):
		m.moveFocus(-1)
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		return m, m.submit()
	}

	if m.snapshot.Locked {
		return m, nil
	}
	return m.updateFocused(keyMsg)
}

func (m *SyncModel) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// submit pushes the form values to the controller and starts validation.
// On a locked form it only unlocks.
func (m *SyncModel) submit() tea.Cmd {
	if !m.snapshot.Locked {
		for _, err := range []error{
			m.svc.SetHost(strings.TrimSpace(m.inputs[syncFieldHost].Value())),
			m.svc.SetUsername(strings.TrimSpace(m.inputs[syncFieldUsername].Value())),
			m.svc.SetPassword(m.inputs[syncFieldPassword].Value()),
		} {
			if err != nil {
				m.errMsg = err.Error()
				return nil
			}
		}
	}

	m.submitting = !m.snapshot.Locked
	m.errMsg = ""
	ctx, svc := m.ctx, m.svc
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		snapshot, err := svc.Submit(ctx)
		return syncSubmittedMsg{snapshot: snapshot, err: err}
	})
}

func (m *SyncModel) apply(s service.SyncSnapshot) {
	m.snapshot = s
	m.inputs[syncFieldHost].SetValue(s.Host)
	m.inputs[syncFieldUsername].SetValue(s.Username)
	m.inputs[syncFieldPassword].SetValue(s.Password)
}

func (m *SyncModel) busy() bool {
	return m.submitting || m.snapshot.Loading
}

func (m *SyncModel) focusFirst() tea.Cmd {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.focus = syncFieldHost
	if m.snapshot.Locked {
		return nil
	}
	return m.inputs[m.focus].Focus()
}

func (m *SyncModel) moveFocus(delta int) {
	if m.snapshot.Locked {
		return
	}
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *SyncModel) View() string {
	var b strings.Builder

	if !m.loaded {
		b.WriteString("Загрузка...")
		return renderPage("УДАЛЁННАЯ СИНХРОНИЗАЦИЯ", b.String(), "esc: назад")
	}

	b.WriteString("Состояние: ")
	b.WriteString(syncStateLabel(m.snapshot.State))
	if m.snapshot.Locked {
		b.WriteString(" (только чтение)")
	}
	b.WriteString("\n\n")

	labels := []string{"Адрес    : ", "Логин    : ", "Пароль   : "}
	for i, in := range m.inputs {
		b.WriteString(labels[i])
		b.WriteString(in.View())
		b.WriteString("\n")
	}

	if m.busy() {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" Проверка...")
	}

	status, errMsg := "", m.errMsg
	switch {
	case m.snapshot.State == models.SyncStateError:
		errMsg = m.snapshot.Message
	case m.snapshot.Message != "":
		status = m.snapshot.Message
	}
	b.WriteString(renderStatus(status, errMsg))

	if m.overlay != nil {
		b.WriteString("\n\n")
		b.WriteString(m.overlay.View())
	}

	hotKeys := "enter: сохранить │ tab: следующее поле │ ctrl+l: журнал │ esc: назад"
	if m.snapshot.Locked {
		hotKeys = "ctrl+u / enter: изменить │ ctrl+l: журнал │ esc: назад"
	}
	return renderPage("УДАЛЁННАЯ СИНХРОНИЗАЦИЯ", b.String(), hotKeys)
}

func syncStateLabel(s models.SyncState) string {
	switch s {
	case models.SyncStateNoAccount:
		return "не настроена"
	case models.SyncStateLoadedLocked:
		return "настроена"
	case models.SyncStateEditing:
		return "редактирование"
	case models.SyncStateValidating:
		return "проверка"
	case models.SyncStateSaving:
		return "сохранение"
	case models.SyncStateError:
		return "ошибка"
	default:
		return s.String()
	}
}
