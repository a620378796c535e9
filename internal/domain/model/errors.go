package model

import "errors"

// Sentinel error kinds for this package. Callers match with errors.Is.
var (
	// ErrInvalidRecord marks a ranking record that fails construction-time
	// invariants (blank company, rank < 1, non-finite score, bad category).
	ErrInvalidRecord = errors.New("invalid ranking record")
)
