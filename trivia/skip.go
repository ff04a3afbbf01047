package trivia

import "github.com/shapewright/fmtcore/synast"

// SkipSet is the set of spans the engine must emit byte-identical to the
// input (spec.md §3 "Skip set"), keyed by span start offset since spans
// never overlap within a sibling list.
type SkipSet map[int]synast.Span

// Contains reports whether sp's start offset is in the set.
func (s SkipSet) Contains(sp synast.Span) bool {
	_, ok := s[sp.Lo]
	return ok
}

// Add records sp as skipped.
func (s SkipSet) Add(sp synast.Span) {
	s[sp.Lo] = sp
}

// DiscoverSkip scans an item's attributes for a skip directive (spec.md
// §4.1: "attributes matching a configured spelling attached to an item
// cause that item's span to be added to the Skip set") and, if found,
// adds span to set.
func DiscoverSkip(set SkipSet, span synast.Span, attrs []synast.Attribute) {
	for _, a := range attrs {
		if a.IsSkipDirective() {
			set.Add(span)
			return
		}
	}
}
