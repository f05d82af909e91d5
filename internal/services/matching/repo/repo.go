// Package repo provides postgres access for matching sessions
package repo

import (
	"context"

	"pairmatch/internal/modkit/repokit"
	"pairmatch/internal/services/matching/domain"

	"github.com/google/uuid"
)

// EvaluatedPair is one already-judged identifier pair, order as stored
type EvaluatedPair struct {
	Description1ID int64
	Description2ID int64
}

// Repo defines the repository contract for matching
type Repo interface {
	CountEvaluations(ctx context.Context, sessionID uuid.UUID) (int, error)
	ListDescriptions(ctx context.Context) ([]domain.Description, error)
	ListEvaluatedPairs(ctx context.Context, sessionID uuid.UUID) ([]EvaluatedPair, error)
	InsertEvaluation(ctx context.Context, in domain.SubmitEvaluationInput) error
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

func scanDescription(r repokit.Row) (domain.Description, error) {
	var d domain.Description
	err := r.Scan(&d.ID, &d.Content)
	return d, err
}

func scanEvaluatedPair(r repokit.Row) (EvaluatedPair, error) {
	var p EvaluatedPair
	err := r.Scan(&p.Description1ID, &p.Description2ID)
	return p, err
}

func (r *queries) CountEvaluations(ctx context.Context, sessionID uuid.UUID) (int, error) {
	const sql = `SELECT COUNT(*) FROM evaluations WHERE session_id = $1`
	return repokit.Scalar[int](ctx, r.q, sql, sessionID)
}

func (r *queries) ListDescriptions(ctx context.Context) ([]domain.Description, error) {
	const sql = `SELECT id, content FROM descriptions ORDER BY id`
	return repokit.Many(ctx, r.q, scanDescription, sql)
}

func (r *queries) ListEvaluatedPairs(ctx context.Context, sessionID uuid.UUID) ([]EvaluatedPair, error) {
	const sql = `SELECT description1_id, description2_id FROM evaluations WHERE session_id = $1`
	return repokit.Many(ctx, r.q, scanEvaluatedPair, sql, sessionID)
}

func (r *queries) InsertEvaluation(ctx context.Context, in domain.SubmitEvaluationInput) error {
	const sql = `
INSERT INTO evaluations (session_id, description1_id, description2_id, is_match)
VALUES ($1, $2, $3, $4)
`
	_, err := repokit.Exec(ctx, r.q, sql, in.SessionID, in.Description1ID, in.Description2ID, in.IsMatch)
	return err
}
