package report

import (
	"errors"
	"sync"
)

// ErrUnparseable is the sentinel returned when the external parser could
// not produce a syntax tree at all. This is the one Reason that aborts
// the run before the shaping engine executes (spec.md §6, §7).
var ErrUnparseable = errors.New("fmtcore: source failed to parse")

// ErrConfigInvalid is returned by config.Config.Validate when an option's
// value is outside its documented domain. It never originates from
// inside the shaping engine (spec.md §7).
var ErrConfigInvalid = errors.New("fmtcore: invalid configuration")

// Handler accumulates Diagnostics over the course of formatting one
// compilation unit without aborting, mirroring reporter.Handler's
// accumulate-don't-abort contract (reporter/reporter.go in the teacher):
// every rewriter failure becomes a Diagnostic, and the assembler keeps
// going so that it can still produce the best available output.
type Handler struct {
	mu          sync.Mutex
	diagnostics []Diagnostic
	hadErrors   bool
}

// NewHandler constructs an empty Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Report records a Diagnostic. ReasonUnformattable and ReasonUnparseable
// also mark the run as having had errors; any other Reason is only
// recorded (the engine always emits a best-effort output for it) and is
// still surfaced to the caller.
func (h *Handler) Report(d Diagnostic) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.diagnostics = append(h.diagnostics, d)
	if d.Reason == ReasonUnformattable || d.Reason == ReasonUnparseable {
		h.hadErrors = true
	}
}

// Diagnostics returns a snapshot of every Diagnostic reported so far, in
// report order.
func (h *Handler) Diagnostics() []Diagnostic {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Diagnostic, len(h.diagnostics))
	copy(out, h.diagnostics)
	return out
}

// HadErrors reports whether any Diagnostic with a hard Reason (as opposed
// to a purely informational one) has been recorded.
func (h *Handler) HadErrors() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.hadErrors
}

// HasOverflow reports whether any ReasonWidthExceeded Diagnostic has been
// recorded. The engine's own error_on_line_overflow handling does not
// call it: the assembler marks the run failed when it records the
// overflow.
func (h *Handler) HasOverflow() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, d := range h.diagnostics {
		if d.Reason == ReasonWidthExceeded {
			return true
		}
	}
	return false
}

// HasUnformatted reports whether any ReasonCommentLost or
// ReasonUnformattable Diagnostic has been recorded (the overflow-adjacent
// category error_on_unformatted cares about: comments/strings that
// overflowed a boundary they are normally exempt from).
func (h *Handler) HasUnformatted() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, d := range h.diagnostics {
		if d.Reason == ReasonCommentLost || d.Reason == ReasonUnformattable {
			return true
		}
	}
	return false
}

// MarkFailed forces HadErrors to true regardless of which Reasons were
// reported, used by the engine when error_on_line_overflow or
// error_on_unformatted promotes a normally-recoverable Diagnostic into a
// hard failure for this run.
func (h *Handler) MarkFailed() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.hadErrors = true
}
