package driving

import (
	"context"

	"github.com/custodia-labs/docpatch-cli/internal/core/domain"
)

// PatchRunner runs patch plans against documents from a source.
type PatchRunner interface {
	// Run loads the document at uri, applies the plan, and persists the
	// result when — and only when — the outcome is Applied. A Failed
	// outcome is returned in the report, not as an error; the error
	// value covers infrastructure problems (the document could not be
	// read or written).
	Run(ctx context.Context, plan *domain.PatchPlan, uri string) (*RunReport, error)

	// DryRun behaves like Run but never writes, whatever the outcome.
	DryRun(ctx context.Context, plan *domain.PatchPlan, uri string) (*RunReport, error)
}

// RunReport describes what a run did, for display.
type RunReport struct {
	// Plan is the plan name.
	Plan string

	// URI is the document that was patched.
	URI string

	// Outcome is the engine's result.
	Outcome domain.PatchOutcome

	// Written reports whether the document was persisted.
	Written bool

	// Before is the document text as loaded.
	Before string

	// After is the document text after the run: the new text for an
	// Applied outcome, otherwise identical to Before.
	After string
}
