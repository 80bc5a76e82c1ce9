package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-otp-keeper/internal/app"
	"github.com/MKhiriev/go-otp-keeper/internal/service"
	"github.com/MKhiriev/go-otp-keeper/models"
)

const (
	formFieldName = iota
	formFieldSecret
	formFieldDigits
	formFieldStep
	// formFieldAlgorithm is switched with ←/→ and has no text input
	formFieldAlgorithm
)

const algorithmCount = int(models.AlgorithmSHA512) + 1

// AccountFormModel adds an account by hand or edits a stored one. An
// editAccountMsg payload switches it to editing; the secret is then hidden
// and never sent.
type AccountFormModel struct {
	ctx context.Context
	svc service.AccountService

	// accountID is zero for a new account
	accountID int64
	inputs    []textinput.Model
	algorithm models.Algorithm
	focus     int
	spinner   spinner.Model

	loading bool
	saving  bool
	status  string
	errMsg  string
}

func NewAccountFormModel(ctx context.Context, svc service.AccountService) *AccountFormModel {
	name := textinput.New()
	name.Placeholder = "имя аккаунта"
	name.Width = 40

	secret := textinput.New()
	secret.Placeholder = "секрет (base32)"
	secret.Width = 40
	secret.EchoMode = textinput.EchoPassword
	secret.EchoCharacter = '*'

	digits := textinput.New()
	digits.Width = 4
	digits.CharLimit = 2

	step := textinput.New()
	step.Width = 6
	step.CharLimit = 4

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &AccountFormModel{
		ctx:     ctx,
		svc:     svc,
		inputs:  []textinput.Model{name, secret, digits, step},
		spinner: s,
	}
}

func (m *AccountFormModel) Init() tea.Cmd {
	m.accountID = 0
	m.loading, m.saving = false, false
	m.status, m.errMsg = "", ""
	m.algorithm = models.AlgorithmAutodetect

	m.inputs[formFieldName].SetValue("")
	m.inputs[formFieldSecret].SetValue("")
	m.inputs[formFieldDigits].SetValue(strconv.Itoa(app.DefaultOTPDigits))
	m.inputs[formFieldStep].SetValue(strconv.Itoa(app.DefaultTOTPStep))

	return m.setFocus(formFieldName)
}

func (m *AccountFormModel) editing() bool {
	return m.accountID != 0
}

func (m *AccountFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case editAccountMsg:
		m.accountID = msg.id
		m.loading = true
		ctx, svc, id := m.ctx, m.svc, msg.id
		return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
			account, err := svc.Get(ctx, id)
			return accountFetchedMsg{account: account, err: err}
		})
	case accountFetchedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeBackendUnavailableError(msg.err)
			return m, nil
		}
		m.inputs[formFieldName].SetValue(msg.account.Name)
		m.inputs[formFieldSecret].SetValue("")
		m.inputs[formFieldDigits].SetValue(strconv.Itoa(msg.account.OTPDigits))
		m.inputs[formFieldStep].SetValue(strconv.Itoa(msg.account.TOTPStep))
		m.algorithm = msg.account.Algorithm
		m.inputs[formFieldName].CursorEnd()
		return m, m.setFocus(formFieldName)
	case accountSavedMsg:
		m.saving = false
		switch {
		case msg.err == nil:
			m.status, m.errMsg = msg.answer, ""
		case msg.answer != "":
			m.status, m.errMsg = "", msg.answer
		default:
			m.status, m.errMsg = "", humanizeBackendUnavailableError(msg.err)
		}
		return m, nil
	case spinner.TickMsg:
		if !m.loading && !m.saving {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.Matches(keyMsg, keys.esc) {
		return m, func() tea.Msg { return NavigateTo{Page: pageAccounts} }
	}
	if m.loading || m.saving {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.tab):
		return m, m.moveFocus(1)
	case key.Matches(keyMsg, keys.backtab):
		return m, m.moveFocus(-1)
	case key.Matches(keyMsg, keys.enter):
		return m, m.submit()
	}

	if m.focus == formFieldAlgorithm {
		switch {
		case key.Matches(keyMsg, keys.left):
			m.algorithm = models.Algorithm((int(m.algorithm) + algorithmCount - 1) % algorithmCount)
		case key.Matches(keyMsg, keys.right):
			m.algorithm = models.Algorithm((int(m.algorithm) + 1) % algorithmCount)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(keyMsg)
	return m, cmd
}

// submit checks the form like the save button would be enabled: a name is
// always required, a secret only for a new account.
func (m *AccountFormModel) submit() tea.Cmd {
	name := strings.TrimSpace(m.inputs[formFieldName].Value())
	secret := strings.TrimSpace(m.inputs[formFieldSecret].Value())
	if name == "" || (!m.editing() && secret == "") {
		m.status, m.errMsg = "", "Укажите имя и секрет"
		if m.editing() {
			m.errMsg = "Укажите имя"
		}
		return nil
	}

	digits, err := strconv.Atoi(strings.TrimSpace(m.inputs[formFieldDigits].Value()))
	if err != nil || digits <= 0 {
		m.status, m.errMsg = "", "Число цифр должно быть положительным"
		return nil
	}
	step, err := strconv.Atoi(strings.TrimSpace(m.inputs[formFieldStep].Value()))
	if err != nil || step <= 0 {
		m.status, m.errMsg = "", "Шаг должен быть положительным"
		return nil
	}

	m.saving = true
	m.status, m.errMsg = "", ""
	ctx, svc := m.ctx, m.svc

	if m.editing() {
		account := models.EditableAccount{
			ID: m.accountID, Name: name, OTPDigits: digits, TOTPStep: step, Algorithm: m.algorithm,
		}
		return tea.Batch(m.spinner.Tick, func() tea.Msg {
			answer, err := svc.Edit(ctx, account)
			return accountSavedMsg{answer: answer, err: err}
		})
	}

	draft := models.DraftAccount{
		Name: name, Secret: secret, OTPDigits: digits, TOTPStep: step, Algorithm: m.algorithm,
	}
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		answer, err := svc.Create(ctx, draft)
		return accountSavedMsg{answer: answer, err: err}
	})
}

func (m *AccountFormModel) moveFocus(delta int) tea.Cmd {
	next := m.focus
	for {
		next = (next + delta + formFieldAlgorithm + 1) % (formFieldAlgorithm + 1)
		if next != formFieldSecret || !m.editing() {
			break
		}
	}
	return m.setFocus(next)
}

func (m *AccountFormModel) setFocus(field int) tea.Cmd {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.focus = field
	if field == formFieldAlgorithm {
		return nil
	}
	return m.inputs[field].Focus()
}

func (m *AccountFormModel) View() string {
	title := "НОВЫЙ АККАУНТ"
	if m.editing() {
		title = "РЕДАКТИРОВАНИЕ АККАУНТА"
	}

	var b strings.Builder
	if m.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" Загрузка...")
		return renderPage(title, b.String(), "esc: назад")
	}

	labels := []string{"Имя      : ", "Секрет   : ", "Цифры    : ", "Шаг, сек : "}
	for i, in := range m.inputs {
		if i == formFieldSecret && m.editing() {
			b.WriteString(labels[i])
			b.WriteString(helpStyle.Render("не изменяется"))
			b.WriteString("\n")
			continue
		}
		b.WriteString(labels[i])
		b.WriteString(in.View())
		b.WriteString("\n")
	}

	b.WriteString(cursorMark(m.focus == formFieldAlgorithm))
	b.WriteString("Алгоритм : ‹ ")
	b.WriteString(m.algorithm.Label())
	b.WriteString(" ›\n")

	if m.saving {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" Сохранение...")
	}
	b.WriteString(renderStatus(m.status, m.errMsg))

	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"tab: следующее поле │ ←/→: алгоритм │ enter: сохранить │ esc: назад")
}
