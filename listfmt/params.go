package listfmt

// Params configures one call to Format. One field set is shared by every
// construct that reuses the List Formatter (call arguments, array
// elements, struct fields, where-predicates, import braces, match arms),
// matching spec.md §4.3's "single most reused algorithm" framing.
type Params struct {
	// Tactic is the requested family; Format only ever falls back to a
	// *more* vertical tactic than requested, never a more horizontal one.
	Tactic Tactic

	// Separator is emitted between items, usually ",".
	Separator string

	// SeparatorPlace names where Separator lands when the list wraps.
	// Format does not read it: in every layout, Separator is emitted
	// directly after the item it follows, at the end of that item's
	// line; a Front placement at the start of the continuation line is
	// not produced.
	SeparatorPlace SeparatorPlace
	// SeparatorAtItemEnd is true for ordinary comma lists, where the
	// separator trails the item it follows. Format does not read it.
	SeparatorAtItemEnd bool

	// TrailingComma governs whether the final item gets a trailing
	// Separator.
	TrailingComma TrailingCommaPolicy

	// Padding is inserted just inside the opening and closing delimiter
	// on a Horizontal layout, e.g. " " for `{ a, b }` vs "" for `(a, b)`.
	Padding string

	// Opener/Closer are the list's delimiters, e.g. "(" / ")".
	Opener, Closer string

	// OpenerOwnLine and CloserOwnLine name whether the opening/closing
	// delimiter sits on its own line when the list wraps. Format does
	// not read them: a wrapped list always ends its first line with
	// Opener and puts Closer on a line of its own.
	OpenerOwnLine, CloserOwnLine bool

	// MustFit marks this list as required to fit; if no tactic in the
	// requested family fits, Format returns a WidthExceeded failure
	// instead of silently overflowing (spec.md §4.3 "Failure").
	MustFit bool
}

// DefaultCallArgs returns the Params used for an ordinary parenthesized,
// comma-separated argument list.
func DefaultCallArgs(trailing TrailingCommaPolicy) Params {
	return Params{
		Tactic:              HorizontalVertical,
		Separator:           ",",
		SeparatorAtItemEnd:  true,
		TrailingComma:       trailing,
		Opener:              "(",
		Closer:              ")",
	}
}

// DefaultBraceGroup returns the Params used for a brace-delimited group
// with inner padding, e.g. struct literal fields or import groups.
func DefaultBraceGroup(trailing TrailingCommaPolicy) Params {
	return Params{
		Tactic:              HorizontalVertical,
		Separator:           ",",
		SeparatorAtItemEnd:  true,
		TrailingComma:       trailing,
		Padding:             " ",
		Opener:              "{",
		Closer:              "}",
	}
}
