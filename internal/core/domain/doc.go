// Package domain defines the core entities for docpatch.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: the text buffer being patched
//   - Pattern / AnchorPattern / AnchorMatch: anchor search and resolution
//   - EditDirective: one insertion or replacement tied to one anchor
//   - PatchPlan: an ordered list of directives plus idempotency guards
//   - PatchOutcome: the tagged result of applying a plan
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
