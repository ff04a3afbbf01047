package listfmt

import (
	"strings"

	"github.com/shapewright/fmtcore/report"
	"github.com/shapewright/fmtcore/shape"
)

// Format lays out items between Params.Opener and Params.Closer under the
// given Shape, selecting the most horizontal Tactic in the requested
// family that fits, falling back progressively toward Vertical (spec.md
// §4.3). It is the single most reused algorithm in the formatter: every
// construct that has "a delimited, separated sequence of sub-items" -
// call arguments, array/tuple elements, struct literal fields, use-group
// leaves, where-clause bounds, match arms - drives its layout through
// this one function, grounded on the teacher's
// experimental/printer/dom.{Chunk,splitForWidth} shape of "try tighter
// splits first, fall back to one-per-line".
//
// Format returns the rendered text and ReasonNone on success. When
// Params.MustFit is set and no tactic lets every item and the
// delimiters fit within shape.Width, it returns ReasonWidthExceeded and
// the best (most vertical) attempt, so the caller can still emit
// something and let the Diagnostic surface the overflow.
func Format(s shape.Shape, items []Item, p Params) (string, report.Reason) {
	if len(items) == 0 {
		return p.Opener + p.Closer, report.ReasonNone
	}

	anyComment := false
	anyMultiline := false
	for _, it := range items {
		if it.HasComment() {
			anyComment = true
		}
		if it.Multiline() {
			anyMultiline = true
		}
	}

	tactic := p.Tactic
	// A multi-line item can never be laid out Horizontal or
	// HorizontalVertical; a commented item forbids Horizontal outright
	// and forces Mixed (or worse) so the comment gets its own line.
	if anyMultiline && tactic < Vertical {
		tactic = Vertical
	}
	if anyComment && tactic == Horizontal {
		tactic = Mixed
	}

	if tactic == Horizontal || tactic == HorizontalVertical {
		if out, ok := tryHorizontal(s, items, p); ok {
			return out, report.ReasonNone
		}
		if tactic == Horizontal {
			// Horizontal was explicitly requested and failed to fit;
			// the caller (e.g. a short single-expression block) asked
			// for no fallback.
			if p.MustFit {
				return renderVertical(s, items, p), report.ReasonWidthExceeded
			}
		}
		tactic = Mixed
	}

	if tactic == Mixed {
		if out, ok := tryMixed(s, items, p); ok {
			return out, report.ReasonNone
		}
		tactic = Vertical
	}

	out := renderVertical(s, items, p)
	if p.MustFit && !fitsVertical(s, items, p) {
		return out, report.ReasonWidthExceeded
	}
	return out, report.ReasonNone
}

// tryHorizontal renders the whole list on one line, provided no item
// carries a comment (a comment always needs a line to itself) and the
// result fits the Shape.
func tryHorizontal(s shape.Shape, items []Item, p Params) (string, bool) {
	for _, it := range items {
		if it.HasComment() || it.Multiline() {
			return "", false
		}
	}
	var b strings.Builder
	b.WriteString(p.Opener)
	b.WriteString(p.Padding)
	for i, it := range items {
		if i > 0 {
			b.WriteString(p.Separator)
			b.WriteString(" ")
		}
		b.WriteString(it.Text)
	}
	if p.TrailingComma == Always && len(items) > 0 {
		b.WriteString(p.Separator)
	}
	b.WriteString(p.Padding)
	b.WriteString(p.Closer)
	out := b.String()
	if !s.Fits(out, 0) {
		return "", false
	}
	return out, true
}

// tryMixed packs items onto as few lines as possible, breaking before
// whichever item would overflow the current line, and always giving a
// commented or multi-line item its own line. It fits only if every
// produced line individually fits the Shape.
func tryMixed(s shape.Shape, items []Item, p Params) (string, bool) {
	inner := s.BlockIndent(0)
	var lines []string
	var cur strings.Builder
	curLen := 0
	flush := func() {
		if cur.Len() > 0 {
			lines = append(lines, cur.String())
			cur.Reset()
			curLen = 0
		}
	}
	for i, it := range items {
		isLast := i == len(items)-1
		sep := p.Separator
		if isLast && p.TrailingComma == Never {
			sep = ""
		}
		if isLast && p.TrailingComma == VerticalOnly {
			sep = p.Separator
		}

		forceOwnLine := it.HasComment() || it.Multiline()
		piece := it.Text + sep
		if forceOwnLine {
			flush()
			if it.LeadingComment != "" {
				lines = append(lines, it.LeadingComment)
			}
			lines = append(lines, piece)
			if it.TrailingComment != "" {
				lines[len(lines)-1] += " " + it.TrailingComment
			}
			continue
		}

		candidateLen := curLen
		if curLen > 0 {
			candidateLen++ // joining space
		}
		candidateLen += len(piece)
		if curLen > 0 && !inner.SubWidth(candidateLen).Overflowed() {
			if curLen > 0 {
				cur.WriteString(" ")
			}
			cur.WriteString(piece)
			curLen = candidateLen
		} else {
			flush()
			cur.WriteString(piece)
			curLen = len(piece)
		}
	}
	flush()

	for _, l := range lines {
		if !inner.Fits(l, 0) {
			return "", false
		}
	}

	var b strings.Builder
	b.WriteString(p.Opener)
	b.WriteString("\n")
	ind := inner.Indent.String(0, false)
	for _, l := range lines {
		b.WriteString(ind)
		b.WriteString(l)
		b.WriteString("\n")
	}
	b.WriteString(s.Indent.String(0, false))
	b.WriteString(p.Closer)
	return b.String(), true
}

// renderVertical puts every item on its own line, the tactic of last
// resort that always "succeeds" in the sense of producing output, even
// if an individual item is itself too wide (that overflow is reported
// by the caller's own Shape check on the item's own rendering, not
// re-detected here).
func renderVertical(s shape.Shape, items []Item, p Params) string {
	inner := s.BlockIndent(0)
	ind := inner.Indent.String(0, false)
	var b strings.Builder
	b.WriteString(p.Opener)
	b.WriteString("\n")
	for i, it := range items {
		isLast := i == len(items)-1
		if it.LeadingComment != "" {
			b.WriteString(ind)
			b.WriteString(it.LeadingComment)
			b.WriteString("\n")
		}
		b.WriteString(ind)
		b.WriteString(it.Text)
		if !isLast || p.TrailingComma != Never {
			b.WriteString(p.Separator)
		}
		if it.TrailingComment != "" {
			b.WriteString(" ")
			b.WriteString(it.TrailingComment)
		}
		b.WriteString("\n")
	}
	b.WriteString(s.Indent.String(0, false))
	b.WriteString(p.Closer)
	return b.String()
}

// fitsVertical reports whether every line renderVertical would produce
// fits the Shape, used only to decide whether a MustFit list should be
// reported as overflowing even in its most compact (Vertical) form.
func fitsVertical(s shape.Shape, items []Item, p Params) bool {
	inner := s.BlockIndent(0)
	for _, it := range items {
		if !inner.Fits(it.Text+p.Separator, 0) {
			return false
		}
	}
	return true
}
