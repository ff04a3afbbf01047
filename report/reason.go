package report

import "fmt"

// Reason classifies why a rewrite produced a Failure, or why the engine
// recorded a Diagnostic instead of (or in addition to) emitting output.
// This is the taxonomy from spec.md §7.
type Reason int8

const (
	// ReasonNone is the zero value; never used on a real Diagnostic.
	ReasonNone Reason = iota
	// ReasonUnparseable means the source failed the parser's grammar;
	// the core aborts before running and produces no output.
	ReasonUnparseable
	// ReasonWidthExceeded means no layout fit the configured width; the
	// core emits the least-overflowing layout and records this.
	ReasonWidthExceeded
	// ReasonCommentLost means an internal invariant check found trivia
	// that could not be reattached — a bug class, not a user error.
	ReasonCommentLost
	// ReasonUnformattable means a node variant the rewriters do not
	// support was encountered; its original bytes were emitted verbatim.
	ReasonUnformattable
	// ReasonConfigInvalid means an option value was out of its domain.
	// This is surfaced only at configuration validation, never from
	// inside the shaping engine itself.
	ReasonConfigInvalid
)

var _table_Reason_String = [...]string{
	ReasonNone:          "None",
	ReasonUnparseable:    "Unparseable",
	ReasonWidthExceeded:  "WidthExceeded",
	ReasonCommentLost:    "CommentLost",
	ReasonUnformattable:  "Unformattable",
	ReasonConfigInvalid:  "ConfigInvalid",
}

// String implements fmt.Stringer.
func (r Reason) String() string {
	if int(r) < 0 || int(r) >= len(_table_Reason_String) {
		return fmt.Sprintf("Reason(%d)", int(r))
	}
	return _table_Reason_String[r]
}
