package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-otp-keeper/internal/logger"
	"github.com/MKhiriev/go-otp-keeper/internal/service"
	"github.com/MKhiriev/go-otp-keeper/internal/workers"
)

// UI is the interactive front end driven by App.
type UI interface {
	Run(ctx context.Context) error
}

// ErrUserQuit is reported by a UI when the user closed it; App treats it as
// a normal exit.
var ErrUserQuit = errors.New("user quit")

type App struct {
	services *service.ClientServices
	ui       UI
	workers  *workers.Workers
	logger   *logger.Logger

	isUserQuit func(error) bool
}

// NewApp wires the runtime. isUserQuit reports whether an error returned by
// ui.Run means the user closed the program; nil matches only ErrUserQuit.
func NewApp(services *service.ClientServices, ui UI, isUserQuit func(error) bool, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client: services and ui are required")
	}
	if isUserQuit == nil {
		isUserQuit = func(err error) bool { return errors.Is(err, ErrUserQuit) }
	}
	return &App{
		services:   services,
		ui:         ui,
		workers:    workers.NewWorkers(logger, services.SyncJob),
		logger:     logger,
		isUserQuit: isUserQuit,
	}, nil
}

// Run starts background workers, loads the sync credential so that periodic
// sync is enabled when one exists, and blocks in the UI until the user quits.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.workers.Start(ctx)
	defer a.workers.Stop()

	snapshot := a.services.SyncAccountService.Load(ctx)
	a.logger.Info().
		Str("sync_state", snapshot.State.String()).
		Msg("client started")

	if err := a.ui.Run(ctx); err != nil {
		if a.isUserQuit(err) {
			a.logger.Info().Msg("client closed by user")
			return nil
		}
		return fmt.Errorf("ui: %w", err)
	}

	return nil
}
