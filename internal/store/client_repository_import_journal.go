package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-otp-keeper/internal/logger"
	"github.com/MKhiriev/go-otp-keeper/models"
)

type importJournalRepository struct {
	*DB
	logger *logger.Logger
}

func NewImportJournalRepository(db *DB, logger *logger.Logger) ImportJournalRepository {
	return &importJournalRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *importJournalRepository) SaveImportRun(ctx context.Context, run models.ImportRun) error {
	query, args, err := buildSaveImportRunQuery(run)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("func", "importJournalRepository.SaveImportRun").
			Str("run_id", run.ID).
			Msg("failed to insert import run")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrImportRunNotSaved
	}

	r.logger.Debug().
		Str("func", "importJournalRepository.SaveImportRun").
		Str("run_id", run.ID).
		Int("attempted", run.Outcome.Attempted).
		Int("failed", run.Outcome.Failed).
		Msg("import run recorded")

	return nil
}

func (r *importJournalRepository) ListImportRuns(ctx context.Context, limit uint64) ([]models.ImportRun, error) {
	query, args, err := buildListImportRunsQuery(limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "importJournalRepository.ListImportRuns").Msg("failed to query import runs")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	runs := make([]models.ImportRun, 0)
	for rows.Next() {
		var (
			run                 models.ImportRun
			startedAt, finishAt int64
		)
		if err = rows.Scan(&run.ID, &run.Source, &startedAt, &finishAt, &run.Outcome.Attempted, &run.Outcome.Failed); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		run.StartedAt = time.UnixMilli(startedAt)
		run.FinishedAt = time.UnixMilli(finishAt)
		runs = append(runs, run)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return runs, nil
}
