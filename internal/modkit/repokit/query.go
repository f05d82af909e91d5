package repokit

import (
	"context"

	"pairmatch/internal/platform/store"
)

// Thin re-exports of the store query helpers so repos only import repokit

// Exec runs a statement and returns its CommandTag
func Exec(ctx context.Context, q Queryer, sql string, args ...any) (CommandTag, error) {
	return store.Exec(ctx, q, sql, args...)
}

// Scalar reads the first column of the first row into T
func Scalar[T any](ctx context.Context, q Queryer, sql string, args ...any) (T, error) {
	return store.Scalar[T](ctx, q, sql, args...)
}

// One maps exactly one row through scan; no rows yields store's not-found error
func One[T any](ctx context.Context, q Queryer, scan func(Row) (T, error), sql string, args ...any) (T, error) {
	return store.One(ctx, q, scan, sql, args...)
}

// Many maps every result row through scan
func Many[T any](ctx context.Context, q Queryer, scan func(Row) (T, error), sql string, args ...any) ([]T, error) {
	return store.Many(ctx, q, scan, sql, args...)
}
