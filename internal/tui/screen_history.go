package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-otp-keeper/internal/service"
	"github.com/MKhiriev/go-otp-keeper/models"
)

const historyLimit = 20

// HistoryModel shows the most recent import runs from the local journal.
type HistoryModel struct {
	ctx context.Context
	svc service.ImportService

	runs    []models.ImportRun
	loading bool
	errMsg  string
}

func NewHistoryModel(ctx context.Context, svc service.ImportService) *HistoryModel {
	return &HistoryModel{ctx: ctx, svc: svc}
}

func (m *HistoryModel) Init() tea.Cmd {
	m.loading = true
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		runs, err := svc.History(ctx, historyLimit)
		return historyLoadedMsg{runs: runs, err: err}
	}
}

func (m *HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		m.loading = false
		m.errMsg = ""
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.runs = msg.runs
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

func (m *HistoryModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Загрузка...")
	case len(m.runs) == 0 && m.errMsg == "":
		b.WriteString("Импортов ещё не было")
	default:
		for _, run := range m.runs {
			b.WriteString(fmt.Sprintf("%s │ %-24s │ отправлено %3d │ ошибок %3d │ %s\n",
				run.StartedAt.Local().Format("2006-01-02 15:04:05"),
				fitText(run.Source, 24),
				run.Outcome.Attempted,
				run.Outcome.Failed,
				run.FinishedAt.Sub(run.StartedAt).Round(time.Millisecond),
			))
		}
	}

	b.WriteString(renderStatus("", m.errMsg))

	return renderPage("ИСТОРИЯ ИМПОРТА", strings.TrimRight(b.String(), "\n"), "ctrl+r: обновить │ esc: назад")
}
