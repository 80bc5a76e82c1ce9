package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-otp-keeper/internal/logger"
	"github.com/MKhiriev/go-otp-keeper/internal/service"
	"github.com/MKhiriev/go-otp-keeper/models"
)

var ErrUserQuit = errors.New("вышел из программы")

const (
	pageMenu     = "menu"
	pageAccounts = "accounts"
	pageAccount  = "account"
	pageImport   = "import"
	pageHistory  = "history"
	pageSync     = "sync"
	pageLogs     = "logs"
)

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("tui: services are nil")
	}
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

// Run shows the main menu and blocks until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageAccounts: NewAccountsModel(ctx, t.services.AccountService),
		pageAccount:  NewAccountFormModel(ctx, t.services.AccountService),
		pageImport:   NewImportModel(ctx, t.services.ImportService),
		pageHistory:  NewHistoryModel(ctx, t.services.ImportService),
		pageSync:     NewSyncModel(ctx, t.services.SyncAccountService),
		pageLogs:     NewLogsModel(ctx, t.services.SyncAccountService),
	}

	root := NewRootModel(pages, pageMenu, t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()

	if result, ok := finalModel.(RootModel); ok {
		result.leave()
		if runErr == nil && result.quitByUser {
			return ErrUserQuit
		}
	}
	if runErr != nil {
		t.logger.Error().Err(runErr).Msg("tui stopped")
		return runErr
	}
	return nil
}
