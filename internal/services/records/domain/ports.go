package domain

import (
	"context"
	"io"
)

// ServicePort defines the service contract for records
type ServicePort interface {
	// ImportStream replaces all records with those parsed from r.
	// columnIndex is zero-based; maxRecords of 0 means unlimited
	ImportStream(ctx context.Context, r io.Reader, columnIndex, maxRecords int) (int, error)

	// ImportString is the in-memory variant used by tooling; unlike the
	// streaming importer it only rejects blank values
	ImportString(ctx context.Context, data string, columnIndex, maxRecords int) (int, error)

	Count(ctx context.Context) (int64, error)
	List(ctx context.Context, limit int) ([]Record, error)
}
