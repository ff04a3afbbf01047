package listfmt

// Item is one element of a delimited sequence handed to Format: a call
// argument, array element, struct field, where-predicate, import brace
// member, or match arm. The inner text is pre-rendered by the caller
// (typically a Node Rewriter having already recursed into the element
// with a sub-Shape); the List Formatter only ever measures and arranges
// whole items, never recurses into their text itself.
type Item struct {
	// Text is the element's rendered text. If it contains a newline, the
	// element is a multi-line sub-layout, which (per spec.md §4.3) forces
	// the whole list into Vertical layout.
	Text string

	// LeadingComment and TrailingComment, when non-empty, are comments
	// attached to this item by the Trivia Extractor. Per spec.md §4.3, a
	// leading or trailing comment on any item forces that item onto its
	// own line in Mixed tactic and forbids Horizontal tactic entirely.
	LeadingComment  string
	TrailingComment string
}

// HasComment reports whether this item carries a leading or trailing
// comment.
func (it Item) HasComment() bool {
	return it.LeadingComment != "" || it.TrailingComment != ""
}

// Multiline reports whether this item's rendered text spans more than
// one line.
func (it Item) Multiline() bool {
	for _, r := range it.Text {
		if r == '\n' {
			return true
		}
	}
	return false
}
