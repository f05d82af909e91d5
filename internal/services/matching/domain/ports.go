package domain

import (
	"context"

	"github.com/google/uuid"
)

// ServicePort defines the service contract for matching sessions
type ServicePort interface {
	NextPair(ctx context.Context, sessionID uuid.UUID) (NextResult, error)
	SubmitEvaluation(ctx context.Context, in SubmitEvaluationInput) error
	Progress(ctx context.Context, sessionID uuid.UUID) (Progress, error)
}
