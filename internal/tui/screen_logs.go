package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-otp-keeper/internal/service"
	"github.com/MKhiriev/go-otp-keeper/models"
)

// LogsModel shows the backend's remote sync history.
type LogsModel struct {
	ctx context.Context
	svc service.SyncAccountService

	logs    []models.SyncLog
	loading bool
	errMsg  string
}

func NewLogsModel(ctx context.Context, svc service.SyncAccountService) *LogsModel {
	return &LogsModel{ctx: ctx, svc: svc}
}

func (m *LogsModel) Init() tea.Cmd {
	m.loading = true
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		logs, err := svc.Logs(ctx)
		return logsLoadedMsg{logs: logs, err: err}
	}
}

func (m *LogsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case logsLoadedMsg:
		m.loading = false
		m.errMsg = ""
		if msg.err != nil {
			m.errMsg = humanizeBackendUnavailableError(msg.err)
			return m, nil
		}
		m.logs = msg.logs
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(msg, keys.reload):
			return m, m.Init()
		}
	}
	return m, nil
}

func (m *LogsModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Загрузка...")
	case len(m.logs) == 0 && m.errMsg == "":
		b.WriteString("Журнал пуст")
	default:
		for _, l := range m.logs {
			line := fmt.Sprintf("%s │ %-7s │ %s",
				l.Time().Local().Format("2006-01-02 15:04:05"),
				l.Type.String(),
				l.Log,
			)
			if l.Type == models.SyncLogError {
				line = errorStyle.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	b.WriteString(renderStatus("", m.errMsg))

	return renderPage("ЖУРНАЛ СИНХРОНИЗАЦИИ", strings.TrimRight(b.String(), "\n"), "ctrl+r: обновить │ esc: назад")
}
