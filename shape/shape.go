// Package shape implements the width-budget / indentation model that every
// rewriter in this module consumes and produces. A Shape is the only piece
// of layout context threaded through the rewriters: it is immutable, and
// every derived operation returns a new value rather than mutating in
// place, mirroring the way protocompile's printer/dom package threads a
// line-limit and indent string through Dom/Chunk.format without ever
// mutating the caller's copy.
package shape

import (
	"strings"

	"github.com/shapewright/fmtcore/internal/width"
)

// Indent is the current indentation of a Shape, split into two
// independently-tracked components.
type Indent struct {
	// Block is the physical leading indentation, a multiple of the
	// configured tab width, measured in columns regardless of whether it
	// will ultimately be materialized as hard tabs or spaces.
	Block uint32

	// Alignment is additional columns past Block, used only for Visual
	// layouts where successive items must line up under an opening
	// delimiter (e.g. call arguments aligned under '(').
	Alignment uint32
}

// String renders the indentation prefix for this Indent.
//
// tabSpaces is the configured column width of one block-indent level;
// hardTabs selects whether the block component is materialized as literal
// tab characters (one per level) followed by alignment spaces, or as pure
// spaces throughout.
func (ind Indent) String(tabSpaces uint32, hardTabs bool) string {
	var b strings.Builder
	if hardTabs {
		levels := uint32(0)
		if tabSpaces > 0 {
			levels = ind.Block / tabSpaces
		}
		b.WriteString(strings.Repeat("\t", int(levels)))
		b.WriteString(strings.Repeat(" ", int(ind.Block%max(tabSpaces, 1))))
	} else {
		b.WriteString(strings.Repeat(" ", int(ind.Block)))
	}
	b.WriteString(strings.Repeat(" ", int(ind.Alignment)))
	return b.String()
}

// Columns returns the total number of columns this Indent occupies,
// irrespective of hard-tab rendering (tabs always count as tabSpaces
// columns for budget purposes, matching the column-accounting rule used
// throughout width-budget formatters).
func (ind Indent) Columns() uint32 {
	return ind.Block + ind.Alignment
}

// Shape is the layout context passed into a rewriter. It is a plain value:
// copying it is always safe and children receive independent derived
// copies, so no rewriter can observe a sibling's in-progress mutation.
type Shape struct {
	// Width is the number of columns remaining on the current logical
	// line. Once a rewriter's emitted text would push Width negative, the
	// construct has overflowed its budget.
	Width int

	// Indent is the current block/alignment indentation.
	Indent Indent

	// Offset is the number of columns already written on the current
	// line before this construct begins. It can differ from Indent when
	// a construct starts mid-line (e.g. the right-hand side of an
	// assignment).
	Offset uint32
}

// Root returns the Shape a Document Assembler hands to a top-level item:
// the full configured width budget, zero indent, zero offset.
func Root(maxWidth uint32) Shape {
	return Shape{Width: int(maxWidth)}
}

// BlockIndent returns a derived Shape with Block indentation increased by
// extra columns, Alignment reset to zero (a new block context starts
// without inheriting the parent's visual alignment), and Width reduced by
// the same amount.
func (s Shape) BlockIndent(extra uint32) Shape {
	out := s
	out.Indent.Block += extra
	out.Indent.Alignment = 0
	out.Width -= int(extra)
	out.Offset = out.Indent.Columns()
	return out
}

// VisualIndent returns a derived Shape whose Alignment is set to extra
// columns past the current Block indent, for layouts where subsequent
// items must align under an opening delimiter.
func (s Shape) VisualIndent(extra uint32) Shape {
	out := s
	out.Indent.Alignment = extra
	out.Width = s.Width - (int(extra) - int(s.Indent.Alignment))
	out.Offset = out.Indent.Columns()
	return out
}

// SubWidth returns a derived Shape with n fewer columns of budget
// remaining. Used when a construct consumes columns on the current line
// without changing indentation (e.g. a keyword plus a space before a
// nested expression).
func (s Shape) SubWidth(n int) Shape {
	out := s
	out.Width -= n
	if n > 0 {
		out.Offset += uint32(n)
	}
	return out
}

// WithOffset returns a derived Shape with Offset set explicitly. Used when
// a rewriter knows precisely how many columns precede it on the current
// line (e.g. "let x = " before an initializer expression).
func (s Shape) WithOffset(offset uint32) Shape {
	out := s
	out.Offset = offset
	return out
}

// Overflowed reports whether this Shape's budget has already been
// exhausted.
func (s Shape) Overflowed() bool {
	return s.Width < 0
}

// Fits reports whether text, measured at the configured tab width, fits
// within the remaining width budget when appended starting at the current
// Offset.
func (s Shape) Fits(text string, tabSpaces uint32) bool {
	if s.Overflowed() {
		return false
	}
	w := width.Width(text, int(tabSpaces))
	return w <= s.Width
}

// Remaining returns the number of columns left on the current line, taking
// Offset into account. It never returns a negative value.
func (s Shape) Remaining() int {
	if s.Width < 0 {
		return 0
	}
	return s.Width
}

