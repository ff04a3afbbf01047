// Package rewrite implements the Node Rewriters (spec.md §4.4–§4.7): one
// function per syntactic construct, each given a node and a shape.Shape
// and returning a Result. Grounded on the teacher's
// experimental/printer's recursive "format this Dom, return rendered
// text or escalate" shape, adapted from a Dom-tree-printer to a
// source-node-rewriter since this core's node set is a full language
// grammar rather than a print-tree.
package rewrite

import "github.com/shapewright/fmtcore/report"

// Result is the sum type every rewriter returns: either rendered text or
// a Failure carrying a Reason (spec.md §3 "RewriteResult"). It is a
// plain value, not a long-range control transfer (spec.md §9) — callers
// inspect Ok and decide whether to retry with a relaxed budget, escalate
// to a wider tactic, or propagate the failure themselves.
type Result struct {
	Text   string
	Ok     bool
	Reason report.Reason
}

// Done wraps successfully rendered text.
func Done(text string) Result {
	return Result{Text: text, Ok: true}
}

// Fail wraps a failure with its Reason. reason should never be
// report.ReasonNone; use Done for success.
func Fail(reason report.Reason) Result {
	return Result{Ok: false, Reason: reason}
}

// Or returns r if it succeeded, otherwise evaluates and returns fallback.
// Used to chain "try the tighter layout, then fall back" without nested
// if/else at every call site.
func (r Result) Or(fallback func() Result) Result {
	if r.Ok {
		return r
	}
	return fallback()
}
