package workers

import (
	"context"

	"github.com/MKhiriev/go-otp-keeper/internal/logger"
)

type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

// NewWorkers groups workers; nil entries are skipped.
func NewWorkers(logger *logger.Logger, workers ...Worker) *Workers {
	w := &Workers{logger: logger}
	for _, worker := range workers {
		if worker != nil {
			w.workers = append(w.workers, worker)
		}
	}
	return w
}

// Start starts every worker in registration order.
func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
	if w.logger != nil {
		w.logger.Info().Int("count", len(w.workers)).Msg("background workers started")
	}
}

// Stop stops the workers in reverse order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
	if w.logger != nil {
		w.logger.Info().Msg("background workers stopped")
	}
}
