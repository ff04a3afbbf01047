// Package synast defines the minimal AST contract the shaping engine
// consumes: a closed set of tagged node kinds, each carrying its original
// byte span. Producing this tree — lexing and parsing source text into
// it — is the external parser's job (spec.md §1, §6); this package only
// declares the shape that parser must hand the core.
//
// Node kinds are closed, sealed interfaces dispatched by a type switch
// rather than open to arbitrary implementations, per spec.md §9's design
// note: "the union of node kinds is closed and known at build time. Use a
// single large match over a variant tag rather than a virtual-dispatch
// registry."
package synast

// Span is a half-open byte range [Lo, Hi) into the original source text.
// The zero Span denotes a synthetic node with no source position (for
// example, one built directly in code rather than by a parser; a use
// item produced by import merging takes the span of the first use it
// merged).
type Span struct {
	Lo, Hi int
}

// IsZero reports whether s is the zero Span.
func (s Span) IsZero() bool { return s.Lo == 0 && s.Hi == 0 }

// Join returns the smallest Span containing both s and other. A zero
// operand is ignored; joining two zero Spans yields the zero Span.
func (s Span) Join(other Span) Span {
	switch {
	case s.IsZero():
		return other
	case other.IsZero():
		return s
	}
	lo, hi := s.Lo, s.Hi
	if other.Lo < lo {
		lo = other.Lo
	}
	if other.Hi > hi {
		hi = other.Hi
	}
	return Span{Lo: lo, Hi: hi}
}

// Node is implemented by every syntax tree element the core operates on.
type Node interface {
	// NodeSpan returns the node's original byte span.
	NodeSpan() Span
}

// Attribute is an attribute (or legacy cfg-attribute) attached to an
// item, e.g. `#[derive(Debug)]` or a tool/skip marker.
type Attribute struct {
	Span Span
	// Path is the attribute's dotted path, e.g. "derive" or "rustfmt::skip".
	Path string
	// Args holds the attribute's argument list, verbatim, unparsed
	// beyond top-level comma splitting — attribute argument grammar is
	// the parser's concern, not the shaping engine's.
	Args []string
}

func (a Attribute) NodeSpan() Span { return a.Span }

// IsSkipDirective reports whether a matches one of the two spellings
// spec.md §6 says the core must treat identically: the modern
// tool-attribute spelling and the legacy cfg-guarded spelling.
func (a Attribute) IsSkipDirective() bool {
	switch a.Path {
	case "rustfmt::skip", "rustfmt_skip":
		return true
	}
	return false
}

// IsMacroExport reports whether a marks a module as a reordering barrier
// for ReorderModules (spec.md §4.5).
func (a Attribute) IsMacroExport() bool {
	return a.Path == "macro_export"
}
