package listfmt

import "fmt"

// Tactic is the List Formatter's chosen packing strategy (spec.md §4.3).
// Hand-written String()/GoString() stringer tables follow the same
// table-indexed shape as the teacher's generated
// experimental/printer/dom.SplitKind (split.go) — this repo does not run
// code generation, so the tables are written out directly.
type Tactic int8

const (
	Horizontal Tactic = iota
	HorizontalVertical
	Mixed
	Vertical
)

var _table_Tactic_String = [...]string{
	Horizontal:          "Horizontal",
	HorizontalVertical:  "HorizontalVertical",
	Mixed:               "Mixed",
	Vertical:            "Vertical",
}

func (t Tactic) String() string {
	if int(t) < 0 || int(t) >= len(_table_Tactic_String) {
		return fmt.Sprintf("Tactic(%d)", int(t))
	}
	return _table_Tactic_String[t]
}

// SeparatorPlace controls where a binary-operator-like separator is
// emitted when a list wraps across lines.
type SeparatorPlace int8

const (
	// Aloneline places the separator on its own line (rare; mainly for
	// some macro matcher layouts).
	Aloneline SeparatorPlace = iota
	// Front places the separator at the start of the continuation line.
	Front
	// Back places the separator at the end of the preceding line.
	Back
)

var _table_SeparatorPlace_String = [...]string{
	Aloneline: "Aloneline",
	Front:     "Front",
	Back:      "Back",
}

func (s SeparatorPlace) String() string {
	if int(s) < 0 || int(s) >= len(_table_SeparatorPlace_String) {
		return fmt.Sprintf("SeparatorPlace(%d)", int(s))
	}
	return _table_SeparatorPlace_String[s]
}

// TrailingCommaPolicy controls whether a trailing separator follows the
// last item of a list.
type TrailingCommaPolicy int8

const (
	Always TrailingCommaPolicy = iota
	Never
	VerticalOnly
)

var _table_TrailingCommaPolicy_String = [...]string{
	Always:       "Always",
	Never:        "Never",
	VerticalOnly: "Vertical",
}

func (p TrailingCommaPolicy) String() string {
	if int(p) < 0 || int(p) >= len(_table_TrailingCommaPolicy_String) {
		return fmt.Sprintf("TrailingCommaPolicy(%d)", int(p))
	}
	return _table_TrailingCommaPolicy_String[p]
}
