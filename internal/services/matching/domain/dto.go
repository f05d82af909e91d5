package domain

import "github.com/google/uuid"

// SubmitEvaluationInput is one judgment as accepted over the wire
// SessionID comes from the URL, the rest from the body
type SubmitEvaluationInput struct {
	SessionID      uuid.UUID `json:"-"`
	Description1ID int64     `json:"description1_id" validate:"required,gt=0"`
	Description2ID int64     `json:"description2_id" validate:"required,gt=0"`
	IsMatch        bool      `json:"is_match"`
}
