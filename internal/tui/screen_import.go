package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-otp-keeper/internal/service"
)

type importStage int

const (
	importStageInput importStage = iota
	importStageFile
	importStageParsing
	importStageReview
	importStageRename
	importStageConfirm
	importStageCommitting
	importStageDone
)

const (
	importSourcePaste = "paste"
	importRowWidth    = 30
)

// ImportModel walks through paste (or file), review and commit of one import
// batch.
type ImportModel struct {
	ctx context.Context
	svc service.ImportService

	stage   importStage
	text    textarea.Model
	path    textinput.Model
	name    textinput.Model
	spinner spinner.Model

	session *service.ImportSession
	idx     int

	status string
	errMsg string
}

func NewImportModel(ctx context.Context, svc service.ImportService) *ImportModel {
	text := textarea.New()
	text.Placeholder = "otpauth://totp/Issuer:account?secret=..."
	text.SetWidth(70)
	text.SetHeight(8)
	text.ShowLineNumbers = false

	path := textinput.New()
	path.Placeholder = "путь к файлу"
	path.Width = 50

	name := textinput.New()
	name.Placeholder = "имя аккаунта"
	name.Width = 40

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &ImportModel{
		ctx:     ctx,
		svc:     svc,
		text:    text,
		path:    path,
		name:    name,
		spinner: s,
	}
}

func (m *ImportModel) Init() tea.Cmd {
	if m.stage == importStageDone {
		m.restart()
	}
	if m.stage == importStageInput {
		m.text.Focus()
		return textarea.Blink
	}
	return nil
}

func (m *ImportModel) restart() {
	m.stage = importStageInput
	m.session = nil
	m.idx = 0
	m.text.Reset()
	m.path.Reset()
	m.status = ""
	m.errMsg = ""
}

func (m *ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case parsedMsg:
		if msg.err != nil {
			m.stage = importStageInput
			m.errMsg = msg.err.Error()
			m.text.Focus()
			return m, nil
		}
		if len(msg.results) == 0 {
			m.stage = importStageInput
			m.errMsg = "OTP-ссылки не найдены"
			m.text.Focus()
			return m, nil
		}
		m.session = m.svc.NewSession(msg.source, msg.results)
		m.idx = 0
		m.stage = importStageReview
		m.errMsg = ""
		return m, nil
	case committedMsg:
		m.stage = importStageDone
		m.status = fmt.Sprintf("Импорт завершён: отправлено %d, ошибок %d", msg.outcome.Attempted, msg.outcome.Failed)
		m.errMsg = ""
		if msg.err != nil {
			m.errMsg = msg.err.Error()
		}
		return m, nil
	case spinner.TickMsg:
		if m.stage != importStageParsing && m.stage != importStageCommitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInputs(msg)
	}

	switch m.stage {
	case importStageInput:
		return m.updateInput(keyMsg)
	case importStageFile:
		return m.updateFile(keyMsg)
	case importStageReview:
		return m.updateReview(keyMsg)
	case importStageRename:
		return m.updateRename(keyMsg)
	case importStageConfirm:
		return m.updateConfirm(keyMsg)
	case importStageDone:
		switch {
		case key.Matches(keyMsg, keys.enter):
			m.restart()
			return m, m.Init()
		case key.Matches(keyMsg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case keyMsg.String() == "h":
			return m, func() tea.Msg { return NavigateTo{Page: pageHistory} }
		}
	}

	return m, nil
}

// updateInputs forwards non-key messages such as cursor blinks.
func (m *ImportModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.stage {
	case importStageInput:
		m.text, cmd = m.text.Update(msg)
	case importStageFile:
		m.path, cmd = m.path.Update(msg)
	case importStageRename:
		m.name, cmd = m.name.Update(msg)
	}
	return m, cmd
}

func (m *ImportModel) updateInput(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
	case key.Matches(keyMsg, keys.file):
		m.stage = importStageFile
		m.text.Blur()
		m.path.Focus()
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.parse):
		text := m.text.Value()
		if strings.TrimSpace(text) == "" {
			m.errMsg = "Вставьте хотя бы одну ссылку"
			return m, nil
		}
		m.text.Blur()
		m.stage = importStageParsing
		m.errMsg = ""
		return m, tea.Batch(m.spinner.Tick, m.cmdParse(text))
	}

	var cmd tea.Cmd
	m.text, cmd = m.text.Update(keyMsg)
	return m, cmd
}

func (m *ImportModel) updateFile(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.stage = importStageInput
		m.path.Blur()
		m.text.Focus()
		return m, textarea.Blink
	case key.Matches(keyMsg, keys.enter):
		path := strings.TrimSpace(m.path.Value())
		if path == "" {
			m.errMsg = "Укажите путь к файлу"
			return m, nil
		}
		m.path.Blur()
		m.stage = importStageParsing
		m.errMsg = ""
		return m, tea.Batch(m.spinner.Tick, m.cmdParseFile(path))
	}

	var cmd tea.Cmd
	m.path, cmd = m.path.Update(keyMsg)
	return m, cmd
}

func (m *ImportModel) updateReview(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < m.session.Len()-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.toggle):
		if _, err := m.session.Toggle(m.idx); err != nil {
			m.errMsg = err.Error()
		}
	case key.Matches(keyMsg, keys.edit):
		if err := m.session.OpenEditor(m.idx); err != nil {
			if errors.Is(err, service.ErrRowRejected) {
				m.errMsg = "Ссылку не удалось разобрать, имя не редактируется"
				return m, nil
			}
			m.errMsg = err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.name.SetValue(m.session.Rows()[m.idx].Draft.Name)
		m.name.CursorEnd()
		m.name.Focus()
		m.stage = importStageRename
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.reset):
		if err := m.session.Reset(); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.status = "Изменения сброшены"
	case key.Matches(keyMsg, keys.enter):
		if m.session.Flagged() == 0 {
			m.errMsg = "Не выбрано ни одного аккаунта"
			return m, nil
		}
		m.errMsg = ""
		m.stage = importStageConfirm
	case key.Matches(keyMsg, keys.esc):
		m.restart()
		return m, m.Init()
	}
	return m, nil
}

func (m *ImportModel) updateRename(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.session.CloseEditor()
		m.name.Blur()
		m.stage = importStageReview
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		name := strings.TrimSpace(m.name.Value())
		if name == "" {
			m.errMsg = "Название обязательно"
			return m, nil
		}
		if err := m.session.SetName(name); err != nil {
			m.errMsg = err.Error()
		}
		m.session.CloseEditor()
		m.name.Blur()
		m.stage = importStageReview
		return m, nil
	}

	var cmd tea.Cmd
	m.name, cmd = m.name.Update(keyMsg)
	return m, cmd
}

func (m *ImportModel) updateConfirm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.yes):
		m.stage = importStageCommitting
		return m, tea.Batch(m.spinner.Tick, m.cmdCommit())
	case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc):
		m.stage = importStageReview
	}
	return m, nil
}

func (m *ImportModel) cmdParse(text string) tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		results, err := svc.Parse(ctx, text)
		return parsedMsg{source: importSourcePaste, results: results, err: err}
	}
}

func (m *ImportModel) cmdParseFile(path string) tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		results, err := svc.ParseFile(ctx, path)
		return parsedMsg{source: path, results: results, err: err}
	}
}

func (m *ImportModel) cmdCommit() tea.Cmd {
	ctx, svc, session := m.ctx, m.svc, m.session
	return func() tea.Msg {
		outcome, err := svc.Commit(ctx, session)
		return committedMsg{outcome: outcome, err: err}
	}
}

func (m *ImportModel) View() string {
	var b strings.Builder
	hotKeys := ""

	switch m.stage {
	case importStageInput:
		b.WriteString("Вставьте OTP-ссылки, по одной на строку:\n\n")
		b.WriteString(m.text.View())
		hotKeys = "ctrl+s: разобрать │ ctrl+o: из файла │ esc: назад"
	case importStageFile:
		b.WriteString("Файл: ")
		b.WriteString(m.path.View())
		hotKeys = "enter: разобрать │ esc: назад"
	case importStageParsing:
		b.WriteString(m.spinner.View() + " Разбор ссылок...")
	case importStageReview, importStageRename, importStageConfirm:
		b.WriteString(m.viewRows())
		switch m.stage {
		case importStageRename:
			b.WriteString("\n\nНовое имя: ")
			b.WriteString(m.name.View())
			hotKeys = "enter: сохранить │ esc: отмена"
		case importStageConfirm:
			b.WriteString("\n\n")
			b.WriteString(confirmModel{message: fmt.Sprintf("Импортировать %d аккаунт(ов)?", m.session.Flagged())}.View())
		default:
			hotKeys = "пробел: отметить │ e: имя │ r: сбросить │ enter: импортировать │ esc: заново"
		}
	case importStageCommitting:
		b.WriteString(m.spinner.View() + " Импорт...")
	case importStageDone:
		hotKeys = "enter: новый импорт │ h: история │ esc: назад"
	}

	b.WriteString(renderStatus(m.status, m.errMsg))

	return renderPage("ИМПОРТ АККАУНТОВ", b.String(), hotKeys)
}

func (m *ImportModel) viewRows() string {
	var b strings.Builder
	rows := m.session.Rows()
	for i, row := range rows {
		name := row.Draft.Name
		details := fmt.Sprintf("%d цифр │ %dс │ %s", row.Draft.OTPDigits, row.Draft.TOTPStep, row.Draft.Algorithm.Label())
		if row.Rejected {
			name = fitText(row.URI, importRowWidth)
			details = "не удалось разобрать"
		}
		b.WriteString(fmt.Sprintf("%s %s %-*s │ %s\n",
			cursorMark(i == m.idx),
			checkbox(row.Draft.Import),
			importRowWidth, fitText(name, importRowWidth),
			details,
		))
	}
	b.WriteString(fmt.Sprintf("\nВыбрано: %d из %d", m.session.Flagged(), len(rows)))
	return b.String()
}
