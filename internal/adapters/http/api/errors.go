package api

import "errors"

var (
	// ErrEmptyBatch indicates a request body with no records.
	ErrEmptyBatch = errors.New("record batch is empty")

	// ErrInvalidBody indicates an unparsable JSON request body.
	ErrInvalidBody = errors.New("invalid request body")

	// ErrInvalidQuery indicates a malformed query parameter.
	ErrInvalidQuery = errors.New("invalid query parameter")
)
