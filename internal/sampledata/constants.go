package sampledata

// HTTP status code constants.
const (
	StatusOK       = 200
	StatusAccepted = 202
)
