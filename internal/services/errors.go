package services

import "errors"

// Sentinel errors for the engine's three failure kinds. Callers match them
// with errors.Is; wrapped messages carry the detail.
var (
	// ErrNotFound is returned by point lookups with no matching record.
	ErrNotFound = errors.New("not found")

	// ErrValidation is returned when a draft fails the pre-persistence
	// checks. It always blocks a create before the store is touched.
	ErrValidation = errors.New("validation failed")

	// ErrStorage is returned when the durable store could not complete a
	// read or write. The in-flight mutation is aborted and the previously
	// persisted state is left unchanged.
	ErrStorage = errors.New("storage failure")
)
