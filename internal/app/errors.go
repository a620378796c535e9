package app

import "errors"

// Sentinel error kinds for the analysis service.
var (
	// ErrInvalidThreshold marks configuration outside the sane range.
	// Fatal: surfaced before any analysis runs.
	ErrInvalidThreshold = errors.New("invalid analysis threshold")

	// ErrNoStore is returned by dataset operations when the service was
	// built without a record store.
	ErrNoStore = errors.New("no record store configured")
)
