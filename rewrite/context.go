package rewrite

import (
	"github.com/shapewright/fmtcore/config"
	"github.com/shapewright/fmtcore/internal/spanindex"
	"github.com/shapewright/fmtcore/report"
	"github.com/shapewright/fmtcore/synast"
	"github.com/shapewright/fmtcore/trivia"
)

// Context is threaded explicitly through every rewriter call instead of
// being stashed in process-wide storage (spec.md §9 "Global state: none
// is required... thread them explicitly as parameters so rewriters
// remain pure with respect to inputs"). It is read-only from a
// rewriter's point of view except for Handler, which accumulates
// diagnostics.
type Context struct {
	Config  config.Config
	Source  []byte
	Trivia  *spanindex.Index[trivia.Trivia]
	Tail    trivia.Trivia
	Skip    trivia.SkipSet
	Handler *report.Handler
}

// TriviaFor returns the Trivia attached to span's start, or the zero
// Trivia if nothing was recovered there.
func (c *Context) TriviaFor(span synast.Span) trivia.Trivia {
	t, _ := c.Trivia.Lookup(span.Lo)
	return t
}

// IsSkipped reports whether span must be emitted byte-identical to the
// input.
func (c *Context) IsSkipped(span synast.Span) bool {
	return c.Skip.Contains(span)
}

// Verbatim returns the original source bytes covered by span, used both
// for Skip-set passthrough and for the Unformattable-node fallback
// (spec.md §4.7 "unrecognized macro shapes are emitted verbatim").
func (c *Context) Verbatim(span synast.Span) string {
	if span.Lo < 0 || span.Hi > len(c.Source) || span.Lo > span.Hi {
		return ""
	}
	return string(c.Source[span.Lo:span.Hi])
}
