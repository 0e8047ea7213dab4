package services

import "github.com/custodia-labs/docpatch-cli/internal/core/domain"

// ResolveAnchor resolves an anchor pattern against a document text.
// The primary pattern is tried first, then each fallback in listed
// order; the first pattern that matches wins and later ones are never
// consulted. The second return value is false when every pattern is
// exhausted — absence is a value, not an error; the caller decides
// whether it is fatal.
//
// Resolution is stateless and side-effect free: the same inputs always
// yield the same match. A pattern either selects its first occurrence
// or, when marked Last, its final one. The matched span is exactly
// what the pattern expresses; no wider span is inferred.
func ResolveAnchor(text string, anchor domain.AnchorPattern) (domain.AnchorMatch, bool) {
	for i, p := range anchor.Patterns() {
		loc := find(text, p)
		if loc == nil {
			continue
		}
		return domain.AnchorMatch{
			Start:        loc[0],
			End:          loc[1],
			PatternIndex: i,
			Description:  p.Description,
			Mode:         p.Mode,
		}, true
	}
	return domain.AnchorMatch{}, false
}

// find returns the [start, end) span of p in text, or nil.
func find(text string, p domain.Pattern) []int {
	if !p.Last {
		return p.Regexp.FindStringIndex(text)
	}
	locs := p.Regexp.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}
	return locs[len(locs)-1]
}
