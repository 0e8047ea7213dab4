package domain

// InsertMode says how a directive's payload combines with its anchor.
type InsertMode int

const (
	// ModeInherit is the zero value; on a Pattern it means "use the
	// directive's mode". Directives themselves must use a concrete mode.
	ModeInherit InsertMode = iota

	// InsertBefore places the payload immediately before the matched span.
	InsertBefore

	// InsertAfter places the payload immediately after the matched span.
	InsertAfter

	// ReplaceSpan substitutes the payload for the matched span.
	ReplaceSpan
)

// String returns a human-readable mode name.
func (m InsertMode) String() string {
	switch m {
	case InsertBefore:
		return "insert-before"
	case InsertAfter:
		return "insert-after"
	case ReplaceSpan:
		return "replace-span"
	default:
		return "inherit"
	}
}

// Guard is an idempotency check against a document's text.
// With Absent false (the usual case) the guard is satisfied when the
// pattern is present: the content it marks has already been inserted.
// With Absent true the guard is satisfied when the pattern is missing,
// which plans use for "nothing here to patch" states.
type Guard struct {
	// Pattern is the marker expression.
	Pattern Pattern

	// Absent inverts the check.
	Absent bool
}

// Satisfied reports whether the guard holds for the given text.
func (g Guard) Satisfied(text string) bool {
	found := g.Pattern.Regexp.MatchString(text)
	if g.Absent {
		return !found
	}
	return found
}

// Prerequisite is a structural marker the whole plan depends on, such
// as a required closing tag. A missing prerequisite means the document
// is not in the expected baseline shape, which is reported distinctly
// from a simple anchor miss.
type Prerequisite struct {
	// Pattern must match the document text before any directive runs.
	Pattern Pattern
}

// EditDirective is one unit of change: an anchor, an insertion mode,
// an opaque payload, and an optional skip guard. A directive is
// constructed by a plan and consumed exactly once by the engine.
type EditDirective struct {
	// Anchor locates the edit position.
	Anchor AnchorPattern

	// Mode is the default insertion mode; a matched pattern may
	// override it.
	Mode InsertMode

	// Payload is the text to insert. The engine treats it as opaque.
	Payload string

	// SkipIf, when non-nil and satisfied, causes the engine to skip
	// this directive and continue with the rest of the plan. Used for
	// content that may already be present independently of the plan
	// guard, e.g. a style block or a helper function.
	SkipIf *Guard
}
