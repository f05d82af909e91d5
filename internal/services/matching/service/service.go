// Package service contains the pair selection and judgment workflows
package service

import (
	"context"
	"math/rand"
	"time"

	perr "pairmatch/internal/platform/errors"

	"pairmatch/internal/modkit/repokit"
	"pairmatch/internal/services/matching/domain"
	"pairmatch/internal/services/matching/repo"

	"github.com/google/uuid"
)

// maxDrawAttempts bounds the rejection sampling loop per request
const maxDrawAttempts = 100

// Service defines the service contract for matching
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner

	// intn is a seam so tests can drive the draws deterministically
	intn func(n int) int
}

// Option mutates Svc during construction
type Option func(*Svc)

// WithRandIntn replaces the random index source
func WithRandIntn(fn func(n int) int) Option {
	return func(s *Svc) { s.intn = fn }
}

// New creates a new matching service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], opts ...Option) *Svc {
	if db == nil {
		panic("matching.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("matching.Service requires a non nil Repo binder")
	}
	s := &Svc{Repo: binder.Bind(db), binder: binder, db: db}
	for _, o := range opts {
		o(s)
	}
	if s.intn == nil {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		s.intn = rng.Intn
	}
	return s
}

// pairKey is the unordered identity of a judged pair
type pairKey struct{ lo, hi int64 }

func keyOf(a, b int64) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{lo: a, hi: b}
}

// NextPair draws the next unjudged pair for the session, or reports why none
// could be served. Read-only; the judgment write happens separately, so two
// concurrent fetches for one session may see the same pair
func (s *Svc) NextPair(ctx context.Context, sessionID uuid.UUID) (domain.NextResult, error) {
	completed, err := s.Repo.CountEvaluations(ctx, sessionID)
	if err != nil {
		return domain.NextResult{}, perr.Wrap(err, perr.ErrorCodeDB, "count evaluations")
	}
	if completed >= domain.TotalPairsPerSession {
		return domain.NextResult{Status: domain.StatusComplete}, nil
	}

	descs, err := s.Repo.ListDescriptions(ctx)
	if err != nil {
		return domain.NextResult{}, perr.Wrap(err, perr.ErrorCodeDB, "list descriptions")
	}
	if len(descs) < 2 {
		return domain.NextResult{Status: domain.StatusNotEnoughRecords}, nil
	}

	judged, err := s.Repo.ListEvaluatedPairs(ctx, sessionID)
	if err != nil {
		return domain.NextResult{}, perr.Wrap(err, perr.ErrorCodeDB, "list evaluated pairs")
	}
	seen := make(map[pairKey]struct{}, len(judged))
	for _, p := range judged {
		seen[keyOf(p.Description1ID, p.Description2ID)] = struct{}{}
	}

	for attempt := 0; attempt < maxDrawAttempts; attempt++ {
		a := s.intn(len(descs))
		b := s.intn(len(descs))
		if descs[a].ID == descs[b].ID {
			continue
		}
		if _, dup := seen[keyOf(descs[a].ID, descs[b].ID)]; dup {
			continue
		}
		return domain.NextResult{
			Status: domain.StatusPair,
			Pair: &domain.Pair{
				Description1:     descs[a],
				Description2:     descs[b],
				CurrentPairIndex: completed + 1,
				TotalPairs:       domain.TotalPairsPerSession,
			},
		}, nil
	}

	return domain.NextResult{Status: domain.StatusExhausted}, nil
}

// SubmitEvaluation appends one judgment row. Resubmission is not deduplicated
func (s *Svc) SubmitEvaluation(ctx context.Context, in domain.SubmitEvaluationInput) error {
	if in.SessionID == uuid.Nil {
		return perr.InvalidArgf("session id is required")
	}
	if err := s.Repo.InsertEvaluation(ctx, in); err != nil {
		// FK violations surface as invalid argument, not 500
		return perr.FromPostgres(err, "insert evaluation")
	}
	return nil
}

// Progress reports the session's judgment count against the fixed target
func (s *Svc) Progress(ctx context.Context, sessionID uuid.UUID) (domain.Progress, error) {
	completed, err := s.Repo.CountEvaluations(ctx, sessionID)
	if err != nil {
		return domain.Progress{}, perr.Wrap(err, perr.ErrorCodeDB, "count evaluations")
	}
	pct := float64(completed) / float64(domain.TotalPairsPerSession) * 100
	if pct > 100 {
		pct = 100
	}
	return domain.Progress{
		SessionID: sessionID,
		Completed: completed,
		Total:     domain.TotalPairsPerSession,
		Percent:   pct,
	}, nil
}
