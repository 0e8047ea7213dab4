package domain

import "fmt"

// OutcomeStatus is the tag of a PatchOutcome.
type OutcomeStatus int

const (
	// StatusApplied means every directive succeeded and Text holds the
	// new document content.
	StatusApplied OutcomeStatus = iota

	// StatusAlreadyApplied means a plan guard was satisfied; the
	// document is untouched and nothing should be written.
	StatusAlreadyApplied

	// StatusFailed means a prerequisite or an anchor was missing; the
	// document is untouched and nothing must be written.
	StatusFailed
)

// String returns a human-readable status name.
func (s OutcomeStatus) String() string {
	switch s {
	case StatusApplied:
		return "applied"
	case StatusAlreadyApplied:
		return "already applied"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// PatchOutcome is the tagged result of applying a plan to a document.
// Exactly one variant holds per invocation.
type PatchOutcome struct {
	// Status is the variant tag.
	Status OutcomeStatus

	// Text is the new document content. Valid only for StatusApplied.
	Text string

	// Err is the failure cause, wrapping ErrAnchorNotFound or
	// ErrMissingPrerequisite. Valid only for StatusFailed.
	Err error

	// Directive is the index of the failing directive, or -1 when the
	// failure preceded directive application. Valid only for
	// StatusFailed.
	Directive int
}

// Applied builds a successful outcome carrying the new text.
func Applied(text string) PatchOutcome {
	return PatchOutcome{Status: StatusApplied, Text: text, Directive: -1}
}

// AlreadyApplied builds the no-op outcome.
func AlreadyApplied() PatchOutcome {
	return PatchOutcome{Status: StatusAlreadyApplied, Directive: -1}
}

// Failed builds a failure outcome for the directive at the given index
// (-1 for pre-directive failures such as missing prerequisites).
func Failed(err error, directive int) PatchOutcome {
	return PatchOutcome{Status: StatusFailed, Err: err, Directive: directive}
}
