// Package migrate applies the database schema at startup
package migrate

import (
	"context"
	"fmt"

	"pairmatch/internal/modkit/repokit"
)

// schema is idempotent; every statement is IF NOT EXISTS so reruns are safe.
// FKs are RESTRICT so descriptions with judgments cannot be deleted outside
// the import replace path
const schema = `
CREATE TABLE IF NOT EXISTS descriptions (
	id         BIGSERIAL PRIMARY KEY,
	content    TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS evaluations (
	id              BIGSERIAL PRIMARY KEY,
	session_id      UUID NOT NULL,
	description1_id BIGINT NOT NULL REFERENCES descriptions(id) ON DELETE RESTRICT,
	description2_id BIGINT NOT NULL REFERENCES descriptions(id) ON DELETE RESTRICT,
	is_match        BOOLEAN NOT NULL,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_evaluations_session_id ON evaluations (session_id);
CREATE INDEX IF NOT EXISTS idx_evaluations_description1_id ON evaluations (description1_id);
CREATE INDEX IF NOT EXISTS idx_evaluations_description2_id ON evaluations (description2_id);
`

// Apply runs the schema against the given querier
func Apply(ctx context.Context, q repokit.Queryer) error {
	if _, err := q.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
