package repo

import (
	"context"
	"errors"
	"testing"

	"pairmatch/internal/modkit/repokit"

	"github.com/google/uuid"
)

type stubRows struct {
	data [][]any
	idx  int
}

func newStubRows(data [][]any) *stubRows { return &stubRows{data: data, idx: -1} }

func (r *stubRows) Columns() []string { return nil }

func (r *stubRows) Next() bool {
	r.idx++
	return r.idx < len(r.data)
}

func (r *stubRows) Scan(dest ...any) error {
	row := r.data[r.idx]
	if len(dest) != len(row) {
		return errors.New("dest arity mismatch")
	}
	for i := range dest {
		switch p := dest[i].(type) {
		case *int64:
			*p = row[i].(int64)
		case *string:
			*p = row[i].(string)
		default:
			return errors.New("unsupported dest type")
		}
	}
	return nil
}

func (r *stubRows) Err() error { return nil }
func (r *stubRows) Close()     {}

type stubRow struct{ n int }

func (r stubRow) Scan(dest ...any) error {
	if p, ok := dest[0].(*int); ok {
		*p = r.n
	}
	return nil
}

type stubQuerier struct {
	rows    repokit.Rows
	scalar  int
	lastSQL string
	args    []any
}

func (q *stubQuerier) Exec(_ context.Context, sql string, args ...any) (repokit.CommandTag, error) {
	q.lastSQL = sql
	q.args = args
	return nil, nil
}

func (q *stubQuerier) Query(_ context.Context, sql string, args ...any) (repokit.Rows, error) {
	q.lastSQL = sql
	q.args = args
	return q.rows, nil
}

func (q *stubQuerier) QueryRow(_ context.Context, sql string, _ ...any) repokit.Row {
	q.lastSQL = sql
	return stubRow{n: q.scalar}
}

func TestCountEvaluationsScansScalar(t *testing.T) {
	q := &stubQuerier{scalar: 12}
	r := NewPG().Bind(q)
	n, err := r.CountEvaluations(context.Background(), uuid.New())
	if err != nil || n != 12 {
		t.Fatalf("got %d, %v", n, err)
	}
}

func TestListDescriptionsMapsRows(t *testing.T) {
	q := &stubQuerier{rows: newStubRows([][]any{
		{int64(1), "first"},
		{int64(2), "second"},
	})}
	r := NewPG().Bind(q)
	out, err := r.ListDescriptions(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 || out[1].ID != 2 || out[1].Content != "second" {
		t.Fatalf("got %+v", out)
	}
}

func TestListEvaluatedPairsMapsRows(t *testing.T) {
	id := uuid.New()
	q := &stubQuerier{rows: newStubRows([][]any{{int64(3), int64(7)}})}
	r := NewPG().Bind(q)
	out, err := r.ListEvaluatedPairs(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0].Description1ID != 3 || out[0].Description2ID != 7 {
		t.Fatalf("got %+v", out)
	}
	if len(q.args) != 1 || q.args[0] != id {
		t.Fatalf("session id not forwarded: %v", q.args)
	}
}
