// Package engine implements the Document Assembler (spec.md §4.8) and
// exposes the public API (spec.md §6): format_source and check_source.
// Grounded on the teacher's compiler.go top-level orchestration style —
// resolve inputs once, drive a pipeline over top-level units, accumulate
// diagnostics instead of aborting on the first failure.
package engine

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/shapewright/fmtcore/config"
	"github.com/shapewright/fmtcore/internal/xlog"
	"github.com/shapewright/fmtcore/report"
	"github.com/shapewright/fmtcore/rewrite"
	"github.com/shapewright/fmtcore/shape"
	"github.com/shapewright/fmtcore/synast"
	"github.com/shapewright/fmtcore/trivia"
)

// Assembler drives rewriting top-to-bottom over a parsed compilation
// unit, stitching rewritten items back together with preserved trivia.
type Assembler struct {
	ctx     *rewrite.Context
	markers []string
	log     *logrus.Entry
}

// NewAssembler builds an Assembler for one file. markers is the
// configured report_todo/report_fixme word list.
func NewAssembler(source []byte, cfg config.Config, markers []string, filename string) *Assembler {
	handler := report.NewHandler()
	return &Assembler{
		ctx: &rewrite.Context{
			Config:  cfg,
			Source:  source,
			Skip:    trivia.SkipSet{},
			Handler: handler,
		},
		markers: markers,
		log:     xlog.WithFile(xlog.Discard(), filename),
	}
}

// Assemble renders file and returns the final output text. It always
// produces output, even when individual items overflowed their budget —
// diagnostics recorded on the Assembler's Handler describe what, if
// anything, went wrong.
func (a *Assembler) Assemble(file *synast.File) string {
	spans := make([]synast.Span, len(file.Items))
	for i, it := range file.Items {
		spans[i] = it.NodeSpan()
		rewrite.DiscoverSkip(a.ctx.Skip, spans[i], it.Attrs())
	}

	ex := trivia.New(a.ctx.Source, a.markers, a.ctx.Config.NormalizeComments)
	idx, tail, warnings := ex.ExtractAll(spans)
	a.ctx.Trivia = idx
	a.ctx.Tail = tail
	for _, w := range warnings {
		a.log.Tracef("marker %s at offset %d: %s", w.Marker, w.Offset, w.Text)
	}

	// Trivia is extracted above against the file's original,
	// monotonically increasing spans before anything permutes item
	// order: GroupImports/GroupModules reorder and merge RenderUnits,
	// not bare items, so each reordered or merged use/mod keeps the
	// leading comments and blank-line count it was recovered with.
	units := make([]rewrite.RenderUnit, len(file.Items))
	for i, it := range file.Items {
		units[i] = rewrite.RenderUnit{Item: it, Span: spans[i], Trivia: a.ctx.TriviaFor(spans[i])}
	}
	units = rewrite.GroupImports(a.ctx.Config, units)
	units = rewrite.GroupModules(a.ctx.Config, units)

	root := shape.Root(a.ctx.Config.MaxWidth)
	var b strings.Builder

	for i, u := range units {
		a.emitTrivia(&b, u.Trivia, i > 0)

		if a.ctx.IsSkipped(u.Span) {
			b.WriteString(a.ctx.Verbatim(u.Span))
			b.WriteString("\n")
			continue
		}

		r := rewrite.Item(a.ctx, root, u.Item)
		if !r.Ok {
			a.ctx.Handler.Report(report.Diagnostic{Reason: r.Reason, Message: "item rewrite failed"})
			if r.Reason != report.ReasonUnformattable {
				a.ctx.Handler.MarkFailed()
			} else {
				r.Text = a.ctx.Verbatim(u.Span)
			}
		} else if r.Reason == report.ReasonWidthExceeded {
			a.ctx.Handler.Report(report.OverflowDiagnostic(report.Position{}, r.Text, len(r.Text), int(a.ctx.Config.MaxWidth)))
			if a.ctx.Config.ErrorOnLineOverflow {
				a.ctx.Handler.MarkFailed()
			}
		}
		b.WriteString(r.Text)
		b.WriteString("\n")
	}

	a.emitTailTrivia(&b, a.ctx.Tail, len(units) > 0)
	return b.String()
}

// emitTrivia writes tr's leading blank lines (clamped) and leading
// comments ahead of the node they're attached to.
func (a *Assembler) emitTrivia(b *strings.Builder, tr trivia.Trivia, hasPrev bool) {
	if hasPrev {
		n := a.ctx.Config.ClampBlankLines(tr.LeadingBlankLines)
		for i := uint32(0); i < n; i++ {
			b.WriteString("\n")
		}
	}
	for _, c := range tr.LeadingComments {
		b.WriteString(renderComment(a.ctx.Config, c))
		b.WriteString("\n")
	}
}

func (a *Assembler) emitTailTrivia(b *strings.Builder, tail trivia.Trivia, hasPrev bool) {
	if hasPrev {
		n := a.ctx.Config.ClampBlankLines(tail.LeadingBlankLines)
		for i := uint32(0); i < n; i++ {
			b.WriteString("\n")
		}
	}
	for _, c := range tail.LeadingComments {
		b.WriteString(renderComment(a.ctx.Config, c))
		b.WriteString("\n")
	}
}

// renderComment renders one recovered comment, wrapping its text at
// CommentWidth when WrapComments is set (spec.md §6). Block comments
// are left unwrapped: their span can already carry internal newlines
// the extractor didn't normalize, and re-flowing them risks breaking
// their own original line structure.
func renderComment(cfg config.Config, c trivia.Comment) string {
	if c.Kind == trivia.Block {
		return "/* " + c.Text + " */"
	}
	prefix := "// "
	switch c.Kind {
	case trivia.Doc:
		prefix = "/// "
	case trivia.InnerDoc:
		prefix = "//! "
	}
	if !cfg.WrapComments || cfg.CommentWidth == 0 || uint32(len(prefix)+len(c.Text)) <= cfg.CommentWidth {
		return prefix + c.Text
	}
	budget := int(cfg.CommentWidth) - len(prefix)
	if budget < 1 {
		budget = 1
	}
	lines := wrapCommentText(c.Text, budget)
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}

func wrapCommentText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{text}
	}
	var lines []string
	var cur strings.Builder
	for _, w := range words {
		switch {
		case cur.Len() == 0:
			cur.WriteString(w)
		case cur.Len()+1+len(w) > width:
			lines = append(lines, cur.String())
			cur.Reset()
			cur.WriteString(w)
		default:
			cur.WriteString(" ")
			cur.WriteString(w)
		}
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
