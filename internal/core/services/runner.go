package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/docpatch-cli/internal/core/domain"
	"github.com/custodia-labs/docpatch-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docpatch-cli/internal/core/ports/driving"
	"github.com/custodia-labs/docpatch-cli/internal/logger"
)

// Ensure PatchRunner implements the interface.
var _ driving.PatchRunner = (*PatchRunner)(nil)

// PatchRunner loads documents from a source, applies plans, and
// persists successful results. The engine itself never touches
// storage; this service owns the commit contract: a Failed or
// AlreadyApplied outcome results in zero bytes written.
type PatchRunner struct {
	source driven.DocumentSource
}

// NewPatchRunner creates a runner over the given document source.
func NewPatchRunner(source driven.DocumentSource) *PatchRunner {
	return &PatchRunner{source: source}
}

// Run applies the plan to the document at uri and writes the result on
// an Applied outcome.
func (r *PatchRunner) Run(ctx context.Context, plan *domain.PatchPlan, uri string) (*driving.RunReport, error) {
	return r.run(ctx, plan, uri, true)
}

// DryRun applies the plan but never writes.
func (r *PatchRunner) DryRun(ctx context.Context, plan *domain.PatchPlan, uri string) (*driving.RunReport, error) {
	return r.run(ctx, plan, uri, false)
}

func (r *PatchRunner) run(ctx context.Context, plan *domain.PatchPlan, uri string, persist bool) (*driving.RunReport, error) {
	if r.source == nil {
		return nil, fmt.Errorf("%w: no document source configured", domain.ErrInvalidInput)
	}
	if plan == nil {
		return nil, fmt.Errorf("%w: nil plan", domain.ErrInvalidInput)
	}

	text, err := r.source.ReadText(ctx, uri)
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", uri, err)
	}
	logger.Debug("plan %s: loaded %s (%d bytes)", plan.Name, uri, len(text))

	outcome := ApplyPlan(text, plan)

	report := &driving.RunReport{
		Plan:    plan.Name,
		URI:     uri,
		Outcome: outcome,
		Before:  text,
		After:   text,
	}

	if outcome.Status != domain.StatusApplied {
		return report, nil
	}
	report.After = outcome.Text

	if !persist {
		logger.Debug("plan %s: dry run, not writing %s", plan.Name, uri)
		return report, nil
	}

	if err := r.source.WriteText(ctx, uri, outcome.Text); err != nil {
		return nil, fmt.Errorf("failed to write document %s: %w", uri, err)
	}
	report.Written = true
	logger.Debug("plan %s: wrote %s (%d bytes)", plan.Name, uri, len(outcome.Text))

	return report, nil
}
