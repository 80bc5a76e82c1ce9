// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-otp-keeper/internal/adapter"
	"github.com/MKhiriev/go-otp-keeper/internal/app"
	"github.com/MKhiriev/go-otp-keeper/internal/logger"
	"github.com/MKhiriev/go-otp-keeper/internal/store"
	"github.com/MKhiriev/go-otp-keeper/internal/utils"
	"github.com/MKhiriev/go-otp-keeper/models"
)

var (
	otpURIPattern = regexp.MustCompile(`^otpauth://(totp|hotp)/(?:[a-zA-Z0-9%]+:)?([^?]+)\?(.*secret).*`)
	lineSplitter  = regexp.MustCompile(`\r\n|\r|\n`)
)

const defaultImportConcurrency = 4

type importService struct {
	adapter adapter.BackendAdapter
	journal store.ImportJournalRepository

	concurrency int
	clock       clockwork.Clock
	ids         *utils.UUIDGenerator

	logger *logger.Logger
}

// NewImportService wires the import pipeline. concurrency bounds the number
// of in-flight decode and create-account calls per batch; values below one
// fall back to the default.
func NewImportService(backend adapter.BackendAdapter, journal store.ImportJournalRepository,
	concurrency int, clock clockwork.Clock, logger *logger.Logger) ImportService {
	if concurrency < 1 {
		concurrency = defaultImportConcurrency
	}
	return &importService{
		adapter:     backend,
		journal:     journal,
		concurrency: concurrency,
		clock:       clock,
		ids:         utils.NewUUIDGenerator(),
		logger:      logger,
	}
}

func (s *importService) IsOTPURI(line string) bool {
	return otpURIPattern.MatchString(line)
}

func (s *importService) Parse(ctx context.Context, text string) ([]models.DecodeResult, error) {
	type candidate struct {
		line int
		uri  string
	}

	var candidates []candidate
	for i, line := range lineSplitter.Split(text, -1) {
		if s.IsOTPURI(line) {
			candidates = append(candidates, candidate{line: i, uri: line})
		}
	}

	results := make([]models.DecodeResult, len(candidates))
	var g errgroup.Group
	g.SetLimit(s.concurrency)

	for i, c := range candidates {
		g.Go(func() error {
			results[i] = s.decode(ctx, c.line, c.uri)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("func", "importService.Parse").
		Int("recognised", len(candidates)).
		Msg("import text parsed")

	return results, nil
}

func (s *importService) decode(ctx context.Context, line int, uri string) models.DecodeResult {
	draft, err := s.adapter.DecodeOTPURI(ctx, uri)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("func", "importService.decode").
			Int("line", line).
			Msg("uri could not be decoded")
		return models.Rejected(line, uri, err)
	}
	return models.Decoded(line, uri, draft)
}

func (s *importService) ParseFile(ctx context.Context, path string) ([]models.DecodeResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read import file: %w", err)
	}
	return s.Parse(ctx, string(data))
}

func (s *importService) Process(ctx context.Context, rows []models.DecodeResult) models.ImportOutcome {
	failed := make([]bool, len(rows))

	var g errgroup.Group
	g.SetLimit(s.concurrency)

	var outcome models.ImportOutcome
	for i, row := range rows {
		if !row.Draft.Import {
			continue
		}
		outcome.Attempted++

		if row.Rejected {
			failed[i] = true
			continue
		}

		g.Go(func() error {
			failed[i] = !s.submit(ctx, row.Draft)
			return nil
		})
	}
	_ = g.Wait()

	for _, f := range failed {
		if f {
			outcome.Failed++
		}
	}

	return outcome
}

// submit creates one account and classifies the backend's answer.
func (s *importService) submit(ctx context.Context, draft models.DraftAccount) bool {
	answer, err := s.adapter.CreateAccount(ctx, draft)
	ok := accepted(answer, err)

	ev := s.logger.Debug()
	if !ok {
		ev = s.logger.Warn().Err(err).Str("answer", answer)
	}
	ev.Str("func", "importService.submit").
		Str("secret_fp", utils.Fingerprint(draft.Secret)).
		Bool("accepted", ok).
		Msg("account submitted")

	return ok
}

// accepted reports whether a create-account answer is a success. Any error
// (transport, non-2xx, non-string body) is a failure.
func accepted(answer string, err error) bool {
	return err == nil && !strings.Contains(answer, app.MsgInvalidMarker)
}

func (s *importService) NewSession(source string, results []models.DecodeResult) *ImportSession {
	return newImportSession(s.ids.Generate(), source, results)
}

func (s *importService) Commit(ctx context.Context, session *ImportSession) (models.ImportOutcome, error) {
	rows, err := session.begin()
	if err != nil {
		return models.ImportOutcome{}, err
	}

	ctx = utils.WithRequestID(ctx, session.ID)
	run := models.ImportRun{ID: session.ID, Source: session.Source, StartedAt: s.clock.Now()}

	run.Outcome = s.Process(ctx, rows)
	run.FinishedAt = s.clock.Now()

	s.logger.Info().
		Str("func", "importService.Commit").
		Str("run_id", run.ID).
		Int("attempted", run.Outcome.Attempted).
		Int("failed", run.Outcome.Failed).
		Msg("import committed")

	if err = s.journal.SaveImportRun(context.WithoutCancel(ctx), run); err != nil {
		return run.Outcome, errors.Join(ErrImportNotRecorded, err)
	}

	return run.Outcome, nil
}

func (s *importService) History(ctx context.Context, limit uint64) ([]models.ImportRun, error) {
	runs, err := s.journal.ListImportRuns(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list import runs: %w", err)
	}
	return runs, nil
}
