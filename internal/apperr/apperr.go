package apperr

import "errors"

// Sentinel errors for the failure classes the HTTP layer needs to tell apart.
// Wrap with fmt.Errorf("...: %w", Err...) and test with errors.Is.
var (
	// ErrValidation marks malformed or incomplete input: missing attempt
	// fields, wrong incorrect-answer count, answer/question length mismatch.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a quiz or attempt that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrQuizMissing marks an attempt whose referenced quiz has been
	// deleted. Distinct from ErrNotFound on the attempt itself: the
	// attempt's embedded answer snapshot is still valid and displayable.
	ErrQuizMissing = errors.New("referenced quiz missing")

	// ErrPersistence marks a storage failure (store unreachable, write failed).
	ErrPersistence = errors.New("persistence failure")

	// ErrService marks a failure of the explanation collaborator
	// (timeout, quota, malformed response).
	ErrService = errors.New("explanation service failure")
)
