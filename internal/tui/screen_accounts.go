package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-otp-keeper/internal/app"
	"github.com/MKhiriev/go-otp-keeper/internal/service"
	"github.com/MKhiriev/go-otp-keeper/models"
)

const (
	accountNameWidth = 28
	stepBarWidth     = 10
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// AccountsModel lists accounts. Only the row under the cursor has a mounted
// countdown and shows its code; every other row shows the masked placeholder.
type AccountsModel struct {
	ctx context.Context
	svc service.AccountService

	items []models.Account
	rows  []*service.Countdown
	idx   int

	// generation invalidates pending ticks and loads of a previous visit
	generation int

	loading bool
	status  string
	errMsg  string

	filter    textinput.Model
	filtering bool

	exportInput textinput.Model
	exporting   bool

	// deleting holds the account awaiting delete confirmation
	deleting *models.Account
}

func NewAccountsModel(ctx context.Context, svc service.AccountService) *AccountsModel {
	filter := textinput.New()
	filter.Placeholder = "фильтр по имени"
	filter.Width = 40

	exportInput := textinput.New()
	exportInput.Placeholder = "путь к файлу" + app.ExportFileSuffix
	exportInput.Width = 50

	return &AccountsModel{
		ctx:         ctx,
		svc:         svc,
		filter:      filter,
		exportInput: exportInput,
	}
}

func (m *AccountsModel) Init() tea.Cmd {
	m.generation++
	m.loading = true
	m.status = ""
	m.errMsg = ""
	m.deleting = nil
	return tea.Batch(m.cmdLoad(m.filter.Value()), m.cmdTick())
}

// Leave unmounts every countdown so that no row keeps fetching codes while
// the page is hidden.
func (m *AccountsModel) Leave() {
	m.generation++
	m.unmountAll()
}

func (m *AccountsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case accountsLoadedMsg:
		if msg.generation != m.generation {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeBackendUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.setItems(msg.items)
		return m, nil
	case countdownTickMsg:
		if msg.generation != m.generation {
			return m, nil
		}
		return m, m.cmdTick()
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Ошибка копирования: %v", msg.err)
			return m, nil
		}
		m.status = "Код скопирован"
		return m, nil
	case accountDeletedMsg:
		if msg.err != nil {
			m.errMsg = humanizeBackendUnavailableError(msg.err)
			return m, nil
		}
		m.status = "Аккаунт удалён"
		m.loading = true
		return m, m.cmdLoad(m.filter.Value())
	case exportDoneMsg:
		if msg.err != nil {
			m.errMsg = humanizeBackendUnavailableError(msg.err)
			return m, nil
		}
		m.status = "Экспортировано в " + msg.path
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.filtering {
		return m.updateFilter(keyMsg)
	}
	if m.exporting {
		return m.updateExport(keyMsg)
	}
	if m.deleting != nil {
		return m.updateDelete(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		m.moveCursor(m.idx - 1)
	case key.Matches(keyMsg, keys.down):
		m.moveCursor(m.idx + 1)
	case key.Matches(keyMsg, keys.copy):
		return m, m.cmdCopy()
	case key.Matches(keyMsg, keys.filter):
		m.filtering = true
		m.filter.Focus()
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.export):
		m.exporting = true
		m.exportInput.Focus()
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.reload):
		m.loading = true
		return m, m.cmdLoad(m.filter.Value())
	case key.Matches(keyMsg, keys.create):
		return m, func() tea.Msg { return NavigateTo{Page: pageAccount} }
	case key.Matches(keyMsg, keys.edit):
		if item, ok := m.currentItem(); ok {
			return m, func() tea.Msg { return NavigateTo{Page: pageAccount, Payload: editAccountMsg{id: item.ID}} }
		}
	case key.Matches(keyMsg, keys.remove):
		if item, ok := m.currentItem(); ok {
			m.deleting = &item
		}
	case keyMsg.String() == "i":
		return m, func() tea.Msg { return NavigateTo{Page: pageImport} }
	case key.Matches(keyMsg, keys.esc):
		return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
	}

	return m, nil
}

func (m *AccountsModel) updateFilter(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.filtering = false
		m.filter.Blur()
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		m.filtering = false
		m.filter.Blur()
		m.loading = true
		return m, m.cmdLoad(m.filter.Value())
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(keyMsg)
	return m, cmd
}

func (m *AccountsModel) updateExport(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.exporting = false
		m.exportInput.Blur()
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		path := strings.TrimSpace(m.exportInput.Value())
		if path == "" {
			m.errMsg = "Укажите путь к файлу"
			return m, nil
		}
		m.exporting = false
		m.exportInput.Blur()
		m.errMsg = ""
		m.status = "Экспорт..."
		return m, m.cmdExport(path)
	}

	var cmd tea.Cmd
	m.exportInput, cmd = m.exportInput.Update(keyMsg)
	return m, cmd
}

func (m *AccountsModel) updateDelete(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.yes):
		id := m.deleting.ID
		m.deleting = nil
		m.status, m.errMsg = "", ""
		ctx, svc := m.ctx, m.svc
		return m, func() tea.Msg {
			return accountDeletedMsg{err: svc.Delete(ctx, id)}
		}
	case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc):
		m.deleting = nil
	}
	return m, nil
}

func (m *AccountsModel) setItems(items []models.Account) {
	m.unmountAll()

	m.items = items
	m.rows = make([]*service.Countdown, len(items))
	for i, item := range items {
		m.rows[i] = m.svc.NewCountdown(item)
	}

	m.idx = min(max(m.idx, 0), max(len(items)-1, 0))
	if row, ok := m.currentRow(); ok {
		row.Mount(m.ctx)
	}
}

// moveCursor moves the reveal from the current row to row i.
func (m *AccountsModel) moveCursor(i int) {
	if i < 0 || i >= len(m.rows) || i == m.idx {
		return
	}
	if row, ok := m.currentRow(); ok {
		row.Unmount()
	}
	m.idx = i
	m.rows[i].Mount(m.ctx)
}

func (m *AccountsModel) currentRow() (*service.Countdown, bool) {
	if m.idx < 0 || m.idx >= len(m.rows) {
		return nil, false
	}
	return m.rows[m.idx], true
}

func (m *AccountsModel) currentItem() (models.Account, bool) {
	if m.idx < 0 || m.idx >= len(m.items) {
		return models.Account{}, false
	}
	return m.items[m.idx], true
}

func (m *AccountsModel) unmountAll() {
	for _, row := range m.rows {
		row.Unmount()
	}
}

func (m *AccountsModel) cmdLoad(filter string) tea.Cmd {
	ctx, svc, generation := m.ctx, m.svc, m.generation
	return func() tea.Msg {
		items, err := svc.List(ctx, filter)
		return accountsLoadedMsg{generation: generation, items: items, err: err}
	}
}

func (m *AccountsModel) cmdTick() tea.Cmd {
	generation := m.generation
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return countdownTickMsg{generation: generation}
	})
}

func (m *AccountsModel) cmdCopy() tea.Cmd {
	row, ok := m.currentRow()
	if !ok {
		m.status = "Нет аккаунтов"
		return nil
	}
	code := row.Snapshot().Code
	if code == "" || code == app.MaskedCode {
		m.status = "Код ещё не получен"
		return nil
	}
	return func() tea.Msg {
		return copiedMsg{err: writeClipboard(code)}
	}
}

func (m *AccountsModel) cmdExport(path string) tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		written, err := svc.Export(ctx, path)
		return exportDoneMsg{path: written, err: err}
	}
}

func (m *AccountsModel) View() string {
	var b strings.Builder

	if m.filter.Value() != "" || m.filtering {
		b.WriteString("Фильтр: ")
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")
	}

	switch {
	case m.loading:
		b.WriteString("Загрузка...")
	case len(m.items) == 0:
		b.WriteString("Нет аккаунтов")
	default:
		for i, item := range m.items {
			snap := m.rows[i].Snapshot()
			code := snap.Code
			if code == "" {
				code = "??????"
			}
			if snap.Active {
				code = codeStyle.Render(code)
			}
			b.WriteString(fmt.Sprintf("%s %-*s │ %s │ %s %s\n",
				cursorMark(i == m.idx),
				accountNameWidth, fitText(item.Name, accountNameWidth),
				code,
				formatRemaining(snap.Remaining),
				progressBar(snap.Remaining, snap.Step, stepBarWidth),
			))
		}
	}

	if m.exporting {
		b.WriteString("\n\nЭкспорт: ")
		b.WriteString(m.exportInput.View())
	}

	if m.deleting != nil {
		b.WriteString("\n\n")
		b.WriteString(confirmModel{message: fmt.Sprintf("Удалить аккаунт %q?", m.deleting.Name)}.View())
	}

	b.WriteString(renderStatus(m.status, m.errMsg))

	return renderPage("АККАУНТЫ", strings.TrimRight(b.String(), "\n"),
		"↑/↓: выбрать │ c: копировать │ n: новый │ e: изменить │ d: удалить │ /: фильтр │ x: экспорт │ i: импорт │ ctrl+r: обновить │ esc: назад")
}
