package plans

import "github.com/custodia-labs/docpatch-cli/internal/core/domain"

// initBannerMarker is the comment banner that opens the script's Init
// section. Note the four-space indent on the second line.
const initBannerMarker = "// ---------------------------------------------------------------------------\n    // Init"

// standaloneLoadCall matches a line consisting solely of a load();
// call, the boot invocation at the end of the script.
const standaloneLoadCall = `(?m)^\s*load\(\);\s*$`

// RestoreLoadFn reinstates a lost load() definition (and, when also
// missing, saveDictionary()) immediately before the script's Init
// banner.
func RestoreLoadFn() *domain.PatchPlan {
	return &domain.PatchPlan{
		Name:         "restore-load-fn",
		Summary:      "Reinsert load()/saveDictionary() before the Init banner",
		DocumentName: "options.js",
		Guards: []domain.Guard{
			{Pattern: domain.Literal("function load(", "load() definition")},
		},
		Prerequisites: []domain.Prerequisite{
			{Pattern: domain.Literal(initBannerMarker, "Init banner")},
		},
		Directives: []domain.EditDirective{
			{
				Anchor:  domain.Anchor(domain.Literal(initBannerMarker, "Init banner")),
				Mode:    domain.InsertBefore,
				Payload: loadFunction,
			},
			{
				Anchor:  domain.Anchor(domain.Literal(initBannerMarker, "Init banner")),
				Mode:    domain.InsertBefore,
				Payload: saveDictionaryFunction,
				SkipIf:  &domain.Guard{Pattern: domain.Literal("function saveDictionary(", "saveDictionary() definition")},
			},
		},
	}
}

// RestoreLoadCall reinstates a lost load() definition immediately
// before the final standalone load(); call, for scripts without the
// Init banner.
func RestoreLoadCall() *domain.PatchPlan {
	return &domain.PatchPlan{
		Name:         "restore-load-call",
		Summary:      "Reinsert load()/saveDictionary() before the final load(); call",
		DocumentName: "options.js",
		Guards: []domain.Guard{
			{Pattern: domain.Regex(`\bfunction\s+load\s*\(`, "load() definition")},
		},
		Prerequisites: []domain.Prerequisite{
			{Pattern: domain.Regex(standaloneLoadCall, "standalone load(); call")},
		},
		Directives: []domain.EditDirective{
			{
				Anchor:  domain.Anchor(last(domain.Regex(standaloneLoadCall, "final standalone load(); call"))),
				Mode:    domain.InsertBefore,
				Payload: loadFunction,
			},
			{
				Anchor:  domain.Anchor(last(domain.Regex(standaloneLoadCall, "final standalone load(); call"))),
				Mode:    domain.InsertBefore,
				Payload: saveDictionaryFunction,
				SkipIf:  &domain.Guard{Pattern: domain.Regex(`\bfunction\s+saveDictionary\s*\(`, "saveDictionary() definition")},
			},
		},
	}
}
