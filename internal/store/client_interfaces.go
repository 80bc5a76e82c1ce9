package store

import (
	"context"

	"github.com/MKhiriev/go-otp-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// ImportJournalRepository records committed import runs on the local device.
type ImportJournalRepository interface {
	// SaveImportRun appends one finished run.
	SaveImportRun(ctx context.Context, run models.ImportRun) error
	// ListImportRuns returns the most recent runs first. limit == 0 means all.
	ListImportRuns(ctx context.Context, limit uint64) ([]models.ImportRun, error)
}
