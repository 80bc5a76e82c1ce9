// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-otp-keeper/models"
)

const importRunsTable = "import_runs"

var importRunColumns = []string{"id", "source", "started_at", "finished_at", "attempted", "failed"}

// sqlite uses "?" placeholders, which is squirrel's default.
var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildSaveImportRunQuery(run models.ImportRun) (string, []any, error) {
	return sqlite.
		Insert(importRunsTable).
		Columns(importRunColumns...).
		Values(
			run.ID,
			run.Source,
			run.StartedAt.UnixMilli(),
			run.FinishedAt.UnixMilli(),
			run.Outcome.Attempted,
			run.Outcome.Failed,
		).
		ToSql()
}

func buildListImportRunsQuery(limit uint64) (string, []any, error) {
	q := sqlite.
		Select(importRunColumns...).
		From(importRunsTable).
		OrderBy("started_at DESC", "id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	return q.ToSql()
}
