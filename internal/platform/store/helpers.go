package store

import (
	"context"

	perr "pairmatch/internal/platform/errors"
)

// Query helpers shared by repositories. Scan funcs receive a Row facade
// positioned on the current result row, so the same func serves One and Many

// Exec runs a statement and returns its CommandTag
func Exec(ctx context.Context, q RowQuerier, sql string, args ...any) (CommandTag, error) {
	return q.Exec(ctx, sql, args...)
}

// Scalar reads the first column of the first row into T
func Scalar[T any](ctx context.Context, q RowQuerier, sql string, args ...any) (T, error) {
	var v T
	if err := q.QueryRow(ctx, sql, args...).Scan(&v); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// Many maps every result row through scan
func Many[T any](ctx context.Context, q RowQuerier, scan func(Row) (T, error), sql string, args ...any) ([]T, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []T
	cur := rowCursor{rows: rows}
	for rows.Next() {
		item, err := scan(cur)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

// One maps exactly one row through scan. No rows yields ErrNotFound;
// more than one row is a programming error surfaced loudly
func One[T any](ctx context.Context, q RowQuerier, scan func(Row) (T, error), sql string, args ...any) (T, error) {
	var zero T
	items, err := Many(ctx, q, scan, sql, args...)
	if err != nil {
		return zero, err
	}
	switch len(items) {
	case 0:
		return zero, perr.ErrNotFound
	case 1:
		return items[0], nil
	default:
		return zero, perr.Internalf("query returned %d rows, expected one", len(items))
	}
}

// rowCursor exposes the Row scan contract over the current Rows position
type rowCursor struct{ rows Rows }

func (c rowCursor) Scan(dest ...any) error { return c.rows.Scan(dest...) }
