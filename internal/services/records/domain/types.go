// Package domain holds record import types shared across layers
package domain

// Record is one stored text record
type Record struct {
	ID      int64  `json:"id"`
	Content string `json:"content"`
}

// ImportResult reports a finished bulk import
type ImportResult struct {
	Imported int `json:"imported"`
}

// CountResult reports the stored record count
type CountResult struct {
	Count int64 `json:"count"`
}
