package synast

// File is the root of a parsed compilation unit: a flat list of top-level
// items plus any inner (`#![...]`) attributes, exactly what spec.md §6's
// parser interface promises ("a list of top-level items and any inner
// attributes").
type File struct {
	Span        Span
	InnerAttrs  []Attribute
	Items       []Item
	// Trivia after the last item, up to EOF, is not stored on File: the
	// Trivia Extractor returns it separately as the tail Trivia of
	// ExtractAll, since there is no following node to attach it to.
}

func (f *File) NodeSpan() Span { return f.Span }
