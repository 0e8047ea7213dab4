package domain

import "regexp"

// Pattern is a single search expression over a document's text.
type Pattern struct {
	// Regexp is the compiled expression. Case-insensitivity is part of
	// the expression itself (via the (?i) flag) where a plan needs it.
	Regexp *regexp.Regexp

	// Description names the pattern in diagnostics, e.g.
	// "Client Name label".
	Description string

	// Last selects the last occurrence instead of the first.
	Last bool

	// Mode optionally overrides the directive's insertion mode when this
	// pattern is the one that matched. The zero value inherits the
	// directive mode.
	Mode InsertMode
}

// Regex builds a Pattern from a regular expression. The expression must
// compile; built-in plans and tests use fixed expressions.
func Regex(expr, description string) Pattern {
	return Pattern{Regexp: regexp.MustCompile(expr), Description: description}
}

// Literal builds a Pattern matching an exact substring.
func Literal(text, description string) Pattern {
	return Pattern{Regexp: regexp.MustCompile(regexp.QuoteMeta(text)), Description: description}
}

// AnchorPattern is a search specification: a primary pattern and an
// ordered list of fallbacks. Patterns are tried in order and the first
// match wins; later patterns are never consulted once one has matched.
type AnchorPattern struct {
	// Primary is tried first.
	Primary Pattern

	// Fallbacks are tried in listed order when Primary does not match.
	Fallbacks []Pattern
}

// Anchor builds an AnchorPattern from a primary pattern and optional
// fallbacks.
func Anchor(primary Pattern, fallbacks ...Pattern) AnchorPattern {
	return AnchorPattern{Primary: primary, Fallbacks: fallbacks}
}

// Patterns returns the primary followed by the fallbacks, in trial order.
func (a AnchorPattern) Patterns() []Pattern {
	return append([]Pattern{a.Primary}, a.Fallbacks...)
}

// AnchorMatch is the result of resolving an AnchorPattern against a
// document text. Offsets are relative to the text at resolution time;
// once the buffer has been edited a match is stale and must not be
// reused.
type AnchorMatch struct {
	// Start is the byte offset where the matched span begins.
	Start int

	// End is the byte offset just past the matched span.
	End int

	// PatternIndex records which pattern matched: 0 for the primary,
	// n for the n-th fallback.
	PatternIndex int

	// Description is the matched pattern's description.
	Description string

	// Mode is the matched pattern's mode override (zero if none).
	Mode InsertMode
}

// Fallback reports whether the match came from a fallback pattern
// rather than the primary.
func (m AnchorMatch) Fallback() bool {
	return m.PatternIndex > 0
}
