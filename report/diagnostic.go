package report

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Position is a 1-indexed line/column location in source text.
type Position struct {
	Line, Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Diagnostic is a single finding recorded by the engine while formatting
// one compilation unit. Unlike an aborting error, a Diagnostic never
// prevents the engine from producing output (see spec.md §7): it is
// informational, collected alongside the rendered text.
type Diagnostic struct {
	Reason   Reason
	Pos      Position
	Message  string
	// Context, when non-empty, is a human-readable rendering of the
	// offending region. For WidthExceeded (see OverflowDiagnostic) it is
	// the overlong line followed by a caret line marking where max_width
	// ran out. The engine fills it in for no other Reason; MismatchDiff
	// can render a unified diff for a caller that wants one.
	Context string
}

func (d Diagnostic) String() string {
	if d.Context == "" {
		return fmt.Sprintf("%s: %s: %s", d.Pos, d.Reason, d.Message)
	}
	return fmt.Sprintf("%s: %s: %s\n%s", d.Pos, d.Reason, d.Message, d.Context)
}

// OverflowDiagnostic builds a ReasonWidthExceeded Diagnostic for a single
// line that exceeded maxWidth, with a caret-annotated context showing
// exactly where the budget ran out.
func OverflowDiagnostic(pos Position, line string, measured, maxWidth int) Diagnostic {
	caret := strings.Repeat(" ", min(maxWidth, len(line))) + "^ line exceeds max_width here"
	return Diagnostic{
		Reason:  ReasonWidthExceeded,
		Pos:     pos,
		Message: fmt.Sprintf("line is %d columns wide, exceeding max_width=%d", measured, maxWidth),
		Context: line + "\n" + caret,
	}
}

// MismatchDiff renders a unified diff between the formatted output (got)
// and the original source (want), for use by check_source when the two
// differ. This is the same difflib call shape as
// internal/golden.CompareAndDiff, minus the ANSI colorization (a
// diagnostic's Context is meant to be logged or displayed verbatim, not
// necessarily to a color terminal).
func MismatchDiff(got, want string) string {
	if got == want {
		return ""
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "original",
		ToFile:   "formatted",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}
	return diff
}
