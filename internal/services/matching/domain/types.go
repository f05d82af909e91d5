// Package domain holds matching session types shared across layers
package domain

import "github.com/google/uuid"

// TotalPairsPerSession is the fixed number of judgments a session collects
const TotalPairsPerSession = 50

// Description is one text record shown to the user
type Description struct {
	ID      int64  `json:"id"`
	Content string `json:"content"`
}

// Pair is the next two records to judge plus progress counters
type Pair struct {
	Description1     Description `json:"description1"`
	Description2     Description `json:"description2"`
	CurrentPairIndex int         `json:"current_pair_index"`
	TotalPairs       int         `json:"total_pairs"`
}

// NextStatus tags the outcome of a next-pair draw
type NextStatus string

const (
	// StatusPair means a fresh pair was found
	StatusPair NextStatus = "pair"

	// StatusComplete means the session reached its judgment target
	StatusComplete NextStatus = "complete"

	// StatusNotEnoughRecords means fewer than two records exist
	StatusNotEnoughRecords NextStatus = "not_enough_records"

	// StatusExhausted means the draw budget ran out without a fresh pair
	StatusExhausted NextStatus = "exhausted"
)

// NextResult is the tagged outcome of a next-pair request
// Pair is non nil only when Status is StatusPair
type NextResult struct {
	Status NextStatus `json:"status"`
	Pair   *Pair      `json:"pair,omitempty"`
}

// Progress reports how far a session has come
type Progress struct {
	SessionID uuid.UUID `json:"session_id"`
	Completed int       `json:"completed"`
	Total     int       `json:"total"`
	Percent   float64   `json:"percent"`
}

// Session identifies a judging session
type Session struct {
	SessionID uuid.UUID `json:"session_id"`
}
