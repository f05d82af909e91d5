// Package repo provides postgres access for records
package repo

import (
	"context"

	"pairmatch/internal/modkit/repokit"
	"pairmatch/internal/services/records/domain"
)

// Repo defines the repository contract for records
type Repo interface {
	// DeleteAllEvaluations clears judgments ahead of a record replace;
	// must run before DeleteAllDescriptions while the FKs are RESTRICT
	DeleteAllEvaluations(ctx context.Context) error
	DeleteAllDescriptions(ctx context.Context) error
	InsertBatch(ctx context.Context, contents []string) error
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context, limit int) ([]domain.Record, error)
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func scanRecord(r repokit.Row) (domain.Record, error) {
	var rec domain.Record
	err := r.Scan(&rec.ID, &rec.Content)
	return rec, err
}

func (r *queries) DeleteAllEvaluations(ctx context.Context) error {
	_, err := repokit.Exec(ctx, r.q, `DELETE FROM evaluations`)
	return err
}

func (r *queries) DeleteAllDescriptions(ctx context.Context) error {
	_, err := repokit.Exec(ctx, r.q, `DELETE FROM descriptions`)
	return err
}

func (r *queries) InsertBatch(ctx context.Context, contents []string) error {
	if len(contents) == 0 {
		return nil
	}
	const sql = `INSERT INTO descriptions (content) SELECT unnest($1::text[])`
	_, err := repokit.Exec(ctx, r.q, sql, contents)
	return err
}

func (r *queries) Count(ctx context.Context) (int64, error) {
	return repokit.Scalar[int64](ctx, r.q, `SELECT COUNT(*) FROM descriptions`)
}

func (r *queries) List(ctx context.Context, limit int) ([]domain.Record, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	const sql = `SELECT id, content FROM descriptions ORDER BY id LIMIT $1`
	return repokit.Many(ctx, r.q, scanRecord, sql, limit)
}
