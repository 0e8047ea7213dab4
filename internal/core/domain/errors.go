package domain

import "errors"

// Domain errors represent patch-level failures.
// These are distinct from infrastructure errors such as I/O.
var (
	// ErrNotFound indicates a requested entity (a document, a plan)
	// does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAnchorNotFound indicates none of a directive's primary or
	// fallback patterns matched. Recoverable only by editing the
	// document or the plan by hand; never silently skipped.
	ErrAnchorNotFound = errors.New("anchor not found")

	// ErrMissingPrerequisite indicates a structural marker the whole
	// plan depends on is absent. The document is not in the expected
	// baseline shape and needs manual intervention.
	ErrMissingPrerequisite = errors.New("missing structural prerequisite")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)
