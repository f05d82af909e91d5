// Package service contains the bulk import workflows for records
package service

import (
	"bufio"
	"context"
	"io"
	"strings"
	"unicode/utf8"

	"pairmatch/internal/core/csvline"
	"pairmatch/internal/core/textclean"
	perr "pairmatch/internal/platform/errors"
	"pairmatch/internal/platform/logger"

	"pairmatch/internal/modkit/repokit"
	"pairmatch/internal/services/records/domain"
	"pairmatch/internal/services/records/repo"
)

const (
	// defaultColumnIndex is the zero-based column read when none is given
	defaultColumnIndex = 22

	// batchSize is how many accepted records accumulate before a flush
	batchSize = 1000

	// minStreamContentLen is the streaming importer's length floor;
	// values this short or shorter are dropped
	minStreamContentLen = 10

	// maxLineBytes bounds a single CSV line
	maxLineBytes = 1 << 20
)

// Service defines the service contract for records
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New creates a new records service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("records.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("records.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// ImportStream parses r as line-delimited CSV and replaces all stored
// records with the accepted values from the chosen column. Accepted values
// must be non-blank and longer than minStreamContentLen after cleaning
func (s *Svc) ImportStream(ctx context.Context, r io.Reader, columnIndex, maxRecords int) (int, error) {
	accept := func(v string) bool {
		return v != "" && utf8.RuneCountInString(v) > minStreamContentLen
	}
	return s.importLines(ctx, bufio.NewScanner(r), columnIndex, maxRecords, accept)
}

// ImportString is the in-memory variant; it only rejects blank values
func (s *Svc) ImportString(ctx context.Context, data string, columnIndex, maxRecords int) (int, error) {
	accept := func(v string) bool { return v != "" }
	return s.importLines(ctx, bufio.NewScanner(strings.NewReader(data)), columnIndex, maxRecords, accept)
}

func (s *Svc) importLines(
	ctx context.Context,
	sc *bufio.Scanner,
	columnIndex, maxRecords int,
	accept func(string) bool,
) (int, error) {
	if columnIndex < 0 {
		columnIndex = defaultColumnIndex
	}

	sc.Buffer(make([]byte, 64*1024), maxLineBytes)

	var (
		batch    = make([]string, 0, batchSize)
		imported int
		cleared  bool
		skipped  int
		header   = true
	)

	// every flush runs in its own transaction; the destructive replace
	// happens exactly once, with the first flush, so a failed import
	// never leaves the table empty
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		msg := "insert record batch"
		if !cleared {
			msg = "replace records"
		}
		err := repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
			txRepo := s.binder.Bind(q)
			if !cleared {
				if err := txRepo.DeleteAllEvaluations(ctx); err != nil {
					return err
				}
				if err := txRepo.DeleteAllDescriptions(ctx); err != nil {
					return err
				}
			}
			return txRepo.InsertBatch(ctx, batch)
		})
		if err != nil {
			return perr.FromPostgres(err, msg)
		}
		cleared = true
		batch = batch[:0]
		return nil
	}

	for sc.Scan() {
		if header {
			header = false
			continue
		}
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := csvline.ParseLine(line)
		val, ok := csvline.Field(fields, columnIndex)
		if !ok {
			skipped++
			continue
		}
		val = textclean.Clean(val)
		if !accept(val) {
			skipped++
			continue
		}

		batch = append(batch, val)
		imported++

		if len(batch) >= batchSize {
			if err := flush(); err != nil {
				return imported - len(batch), err
			}
		}
		// the record limit stops line consumption exactly at the limit,
		// not at a batch boundary
		if maxRecords > 0 && imported >= maxRecords {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return imported - len(batch), perr.Wrap(err, perr.ErrorCodeInvalidArgument, "read import stream")
	}

	if imported == 0 {
		return 0, perr.InvalidArgf("no valid descriptions found in column %d", columnIndex+1)
	}
	if err := flush(); err != nil {
		return imported - len(batch), err
	}

	if skipped > 0 {
		logger.C(ctx).Debug().
			Int("imported", imported).
			Int("skipped", skipped).
			Int("column", columnIndex).
			Msg("import finished with skipped lines")
	}
	return imported, nil
}

// Count returns the number of stored records
func (s *Svc) Count(ctx context.Context) (int64, error) {
	n, err := s.Repo.Count(ctx)
	if err != nil {
		return 0, perr.Wrap(err, perr.ErrorCodeDB, "count records")
	}
	return n, nil
}

// List returns up to limit records ordered by id
func (s *Svc) List(ctx context.Context, limit int) ([]domain.Record, error) {
	out, err := s.Repo.List(ctx, limit)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "list records")
	}
	return out, nil
}
