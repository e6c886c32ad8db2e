package usecase

import "errors"

var (
	// ErrInvalidFilter is returned when a tier filter is not all, low, medium or high.
	ErrInvalidFilter = errors.New("invalid filter")

	// ErrProfileNotFound is returned when no ESG profile matches the requested loan.
	ErrProfileNotFound = errors.New("esg profile not found")
)
