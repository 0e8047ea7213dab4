package plans

import "github.com/custodia-labs/docpatch-cli/internal/core/domain"

// FixOptionsBoot repairs the options script's boot sequence: when the
// script still ends with a call to the removed load() function but an
// init() function exists, the final load() call is rewritten to
// init(). A script that defines load(), or that never calls it, needs
// nothing.
func FixOptionsBoot() *domain.PatchPlan {
	return &domain.PatchPlan{
		Name:         "fix-options-boot",
		Summary:      "Rewrite a stale final load(); call to init();",
		DocumentName: "options.js",
		Guards: []domain.Guard{
			{Pattern: domain.Literal("function load(", "load() definition")},
			{Pattern: domain.Literal("load();", "load() call"), Absent: true},
		},
		Prerequisites: []domain.Prerequisite{
			{Pattern: domain.Literal("function init(", "init() definition")},
		},
		Directives: []domain.EditDirective{
			{
				// Only the last occurrence, to avoid touching any
				// other text.
				Anchor:  domain.Anchor(last(domain.Literal("load();", "final load() call"))),
				Mode:    domain.ReplaceSpan,
				Payload: "init();",
			},
		},
	}
}
