package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/go-otp-keeper/internal/adapter"
	"github.com/MKhiriev/go-otp-keeper/internal/client"
	"github.com/MKhiriev/go-otp-keeper/internal/config"
	"github.com/MKhiriev/go-otp-keeper/internal/logger"
	"github.com/MKhiriev/go-otp-keeper/internal/service"
	"github.com/MKhiriev/go-otp-keeper/internal/store"
	"github.com/MKhiriev/go-otp-keeper/internal/tui"
	"github.com/MKhiriev/go-otp-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo.String())

	log, logFile := logger.NewClientLogger("otp-keeper-client", "")
	defer logFile.Close()

	if err := run(buildInfo, log); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintln(os.Stderr, err)
		logFile.Close()
		os.Exit(1)
	}
}

func run(buildInfo models.AppBuildInfo, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.GetClientConfig()
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	backend, err := adapter.NewHTTPBackendAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		return fmt.Errorf("create backend adapter: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("create local storage: %w", err)
	}
	defer storages.Close()

	services := service.NewClientServices(storages, backend, cfg, clockwork.NewRealClock(), log)

	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		return fmt.Errorf("error creating ui: %w", err)
	}

	app, err := client.NewApp(services, ui, func(err error) bool {
		return errors.Is(err, tui.ErrUserQuit)
	}, log)
	if err != nil {
		return fmt.Errorf("init client app error: %w", err)
	}

	return app.Run(ctx)
}
