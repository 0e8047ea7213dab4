package domain

// PatchPlan is an ordered sequence of edit directives applied as a
// unit against one document, plus the idempotency guards and
// structural prerequisites checked before any directive runs.
//
// Directives are applied strictly in the order given. Left-to-right
// document order is NOT assumed: each directive re-resolves its anchor
// against the current buffer, so a later directive sees the effects of
// earlier insertions. Directives must not anchor on content a
// still-pending directive is supposed to insert; doing so resolves to
// not-found, which is the safe failure mode.
type PatchPlan struct {
	// Name identifies the plan in diagnostics and on the CLI.
	Name string

	// Summary is a one-line description for listings.
	Summary string

	// DocumentName is the default file the plan operates on, relative
	// to the patch directory (e.g. "options.html").
	DocumentName string

	// Guards short-circuit the run: if any guard is satisfied the plan
	// reports AlreadyApplied without consulting directives.
	Guards []Guard

	// Prerequisites must all match before any directive runs.
	Prerequisites []Prerequisite

	// Directives are applied in order.
	Directives []EditDirective
}
