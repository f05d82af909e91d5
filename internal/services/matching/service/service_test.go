package service

import (
	"context"
	"errors"
	"testing"

	"pairmatch/internal/modkit/repokit"
	"pairmatch/internal/services/matching/domain"
	"pairmatch/internal/services/matching/repo"

	"github.com/google/uuid"
)

type fakeRepo struct {
	count      int
	countErr   error
	descs      []domain.Description
	judged     []repo.EvaluatedPair
	inserted   []domain.SubmitEvaluationInput
	insertErr  error
	countCalls int
}

func (f *fakeRepo) CountEvaluations(_ context.Context, _ uuid.UUID) (int, error) {
	f.countCalls++
	return f.count, f.countErr
}

func (f *fakeRepo) ListDescriptions(_ context.Context) ([]domain.Description, error) {
	return f.descs, nil
}

func (f *fakeRepo) ListEvaluatedPairs(_ context.Context, _ uuid.UUID) ([]repo.EvaluatedPair, error) {
	return f.judged, nil
}

func (f *fakeRepo) InsertEvaluation(_ context.Context, in domain.SubmitEvaluationInput) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, in)
	return nil
}

type fakeTx struct{}

func (fakeTx) Exec(_ context.Context, _ string, _ ...any) (repokit.CommandTag, error) {
	return nil, nil
}

func (fakeTx) Query(_ context.Context, _ string, _ ...any) (repokit.Rows, error) {
	return nil, nil
}

func (fakeTx) QueryRow(_ context.Context, _ string, _ ...any) repokit.Row { return nil }

func (fakeTx) Tx(_ context.Context, fn func(q repokit.Queryer) error) error { return fn(fakeTx{}) }

func newSvc(f *fakeRepo, opts ...Option) *Svc {
	binder := repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return f })
	return New(fakeTx{}, binder, opts...)
}

// sequenced returns an intn seam that replays the given draws then repeats
// the last one
func sequenced(draws ...int) func(int) int {
	i := 0
	return func(n int) int {
		d := draws[i]
		if i < len(draws)-1 {
			i++
		}
		if d >= n {
			d = n - 1
		}
		return d
	}
}

func descs(n int) []domain.Description {
	out := make([]domain.Description, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, domain.Description{ID: int64(i + 1), Content: "record"})
	}
	return out
}

func TestNextPairCompleteAtTarget(t *testing.T) {
	f := &fakeRepo{count: domain.TotalPairsPerSession, descs: descs(10)}
	res, err := newSvc(f).NextPair(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != domain.StatusComplete {
		t.Fatalf("got status %q", res.Status)
	}
	if res.Pair != nil {
		t.Fatalf("expected nil pair on completion")
	}
}

func TestNextPairNotEnoughRecords(t *testing.T) {
	f := &fakeRepo{count: 0, descs: descs(1)}
	res, err := newSvc(f).NextPair(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != domain.StatusNotEnoughRecords {
		t.Fatalf("got status %q", res.Status)
	}
}

func TestNextPairSkipsSelfAndJudged(t *testing.T) {
	f := &fakeRepo{
		count: 3,
		descs: descs(4),
		// pair (1,2) already judged in reversed stored order
		judged: []repo.EvaluatedPair{{Description1ID: 2, Description2ID: 1}},
	}
	// draws: (0,0) self, (0,1) judged as unordered (1,2), (2,3) fresh
	s := newSvc(f, WithRandIntn(sequenced(0, 0, 0, 1, 2, 3)))

	res, err := s.NextPair(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != domain.StatusPair {
		t.Fatalf("got status %q", res.Status)
	}
	p := res.Pair
	if p.Description1.ID != 3 || p.Description2.ID != 4 {
		t.Fatalf("got pair (%d,%d)", p.Description1.ID, p.Description2.ID)
	}
	if p.CurrentPairIndex != 4 {
		t.Fatalf("got index %d, want completed+1", p.CurrentPairIndex)
	}
	if p.TotalPairs != domain.TotalPairsPerSession {
		t.Fatalf("got total %d", p.TotalPairs)
	}
}

func TestNextPairExhaustsAttemptBudget(t *testing.T) {
	f := &fakeRepo{
		count:  0,
		descs:  descs(2),
		judged: []repo.EvaluatedPair{{Description1ID: 1, Description2ID: 2}},
	}
	// every draw lands on the single already-judged pair
	s := newSvc(f, WithRandIntn(sequenced(0, 1)))

	res, err := s.NextPair(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != domain.StatusExhausted {
		t.Fatalf("got status %q", res.Status)
	}
}

func TestNextPairNeverServesSamePairTwice(t *testing.T) {
	// simulate a full session against 5 records; every served pair is
	// recorded as judged before the next draw
	f := &fakeRepo{count: 0, descs: descs(5)}
	s := newSvc(f)

	served := map[[2]int64]bool{}
	for i := 0; i < 10; i++ {
		res, err := s.NextPair(context.Background(), uuid.New())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status == domain.StatusExhausted {
			break
		}
		if res.Status != domain.StatusPair {
			t.Fatalf("got status %q", res.Status)
		}
		a, b := res.Pair.Description1.ID, res.Pair.Description2.ID
		if a == b {
			t.Fatalf("record paired with itself: %d", a)
		}
		lo, hi := a, b
		if lo > hi {
			lo, hi = hi, lo
		}
		if served[[2]int64{lo, hi}] {
			t.Fatalf("pair (%d,%d) served twice", lo, hi)
		}
		served[[2]int64{lo, hi}] = true
		f.judged = append(f.judged, repo.EvaluatedPair{Description1ID: a, Description2ID: b})
		f.count++
	}
}

func TestSubmitEvaluationInserts(t *testing.T) {
	f := &fakeRepo{}
	s := newSvc(f)
	in := domain.SubmitEvaluationInput{
		SessionID:      uuid.New(),
		Description1ID: 1,
		Description2ID: 2,
		IsMatch:        true,
	}
	if err := s.SubmitEvaluation(context.Background(), in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.inserted) != 1 {
		t.Fatalf("got %d inserts", len(f.inserted))
	}
	if f.inserted[0] != in {
		t.Fatalf("inserted %+v, want %+v", f.inserted[0], in)
	}
}

func TestSubmitEvaluationRejectsNilSession(t *testing.T) {
	s := newSvc(&fakeRepo{})
	err := s.SubmitEvaluation(context.Background(), domain.SubmitEvaluationInput{
		Description1ID: 1,
		Description2ID: 2,
	})
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestSubmitEvaluationPropagatesInsertError(t *testing.T) {
	f := &fakeRepo{insertErr: errors.New("boom")}
	s := newSvc(f)
	err := s.SubmitEvaluation(context.Background(), domain.SubmitEvaluationInput{
		SessionID:      uuid.New(),
		Description1ID: 1,
		Description2ID: 2,
	})
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestProgress(t *testing.T) {
	f := &fakeRepo{count: 25}
	id := uuid.New()
	p, err := newSvc(f).Progress(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.SessionID != id {
		t.Fatalf("got session %s", p.SessionID)
	}
	if p.Completed != 25 || p.Total != domain.TotalPairsPerSession {
		t.Fatalf("got %d/%d", p.Completed, p.Total)
	}
	if p.Percent != 50 {
		t.Fatalf("got percent %v", p.Percent)
	}
}

func TestProgressCapsAtHundredPercent(t *testing.T) {
	f := &fakeRepo{count: 80}
	p, err := newSvc(f).Progress(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Percent != 100 {
		t.Fatalf("got percent %v", p.Percent)
	}
}
