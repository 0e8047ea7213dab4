package services

import (
	"fmt"

	"github.com/custodia-labs/docpatch-cli/internal/core/domain"
	"github.com/custodia-labs/docpatch-cli/internal/logger"
)

// ApplyPlan applies a patch plan to a document text and returns the
// tagged outcome. It is a pure function: it never performs I/O and
// never mutates its inputs, so a Failed outcome leaves the caller
// holding the original text untouched. Persistence is the caller's
// job, and only an Applied outcome may be persisted.
//
// The sequence is:
//
//  1. Plan guards. If any guard is satisfied the plan has already been
//     applied (or there is nothing for it to do) and the outcome is
//     AlreadyApplied, without consulting directives.
//  2. Prerequisites. Every structural prerequisite must match or the
//     outcome is Failed wrapping ErrMissingPrerequisite.
//  3. Directives, in order, each against the CURRENT working text.
//     Re-resolving on every step is what keeps offsets valid as
//     insertions shift the buffer; no offset arithmetic is carried
//     between directives. A directive whose skip guard is satisfied is
//     skipped. An anchor miss fails the whole plan.
//
// The engine assumes a single caller per document; see the package
// documentation for the concurrency model.
func ApplyPlan(text string, plan *domain.PatchPlan) domain.PatchOutcome {
	if plan == nil || len(plan.Directives) == 0 {
		return domain.Failed(fmt.Errorf("%w: plan has no directives", domain.ErrInvalidInput), -1)
	}

	for _, g := range plan.Guards {
		if g.Satisfied(text) {
			logger.Debug("plan %s: guard %q satisfied, already applied", plan.Name, g.Pattern.Description)
			return domain.AlreadyApplied()
		}
	}

	for _, p := range plan.Prerequisites {
		if !p.Pattern.Regexp.MatchString(text) {
			return domain.Failed(
				fmt.Errorf("%w: %s", domain.ErrMissingPrerequisite, p.Pattern.Description), -1)
		}
	}

	working := text
	for i, d := range plan.Directives {
		if d.SkipIf != nil && d.SkipIf.Satisfied(working) {
			logger.Debug("plan %s: directive %d skipped, %q already present", plan.Name, i, d.SkipIf.Pattern.Description)
			continue
		}

		match, ok := ResolveAnchor(working, d.Anchor)
		if !ok {
			return domain.Failed(
				fmt.Errorf("%w: %s", domain.ErrAnchorNotFound, d.Anchor.Primary.Description), i)
		}
		if match.Fallback() {
			logger.Debug("plan %s: directive %d matched fallback %q", plan.Name, i, match.Description)
		}

		working = splice(working, match, mode(d, match), d.Payload)
	}

	return domain.Applied(working)
}

// mode picks the effective insertion mode: the matched pattern's
// override when set, the directive's mode otherwise.
func mode(d domain.EditDirective, m domain.AnchorMatch) domain.InsertMode {
	if m.Mode != domain.ModeInherit {
		return m.Mode
	}
	return d.Mode
}

// splice produces a new text with payload combined at the match span.
func splice(text string, m domain.AnchorMatch, mode domain.InsertMode, payload string) string {
	switch mode {
	case domain.InsertAfter:
		return text[:m.End] + payload + text[m.End:]
	case domain.ReplaceSpan:
		return text[:m.Start] + payload + text[m.End:]
	default: // InsertBefore
		return text[:m.Start] + payload + text[m.Start:]
	}
}
