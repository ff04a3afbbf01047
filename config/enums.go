package config

import "fmt"

// NewlineStyle selects the line ending written at output.
type NewlineStyle int8

const (
	NewlineAuto NewlineStyle = iota
	NewlineNative
	NewlineUnix
	NewlineWindows
)

var _table_NewlineStyle_String = [...]string{
	NewlineAuto:    "Auto",
	NewlineNative:  "Native",
	NewlineUnix:    "Unix",
	NewlineWindows: "Windows",
}

func (v NewlineStyle) String() string { return stringOf(int(v), _table_NewlineStyle_String[:]) }

// IndentStyle selects the default list-formatter tactic for a construct.
type IndentStyle int8

const (
	IndentBlock IndentStyle = iota
	IndentVisual
)

var _table_IndentStyle_String = [...]string{
	IndentBlock:  "Block",
	IndentVisual: "Visual",
}

func (v IndentStyle) String() string { return stringOf(int(v), _table_IndentStyle_String[:]) }

// Heuristics selects how aggressively single-line thresholds apply to
// structs/ifs/calls.
type Heuristics int8

const (
	HeuristicsDefault Heuristics = iota
	HeuristicsOff
	HeuristicsMax
)

var _table_Heuristics_String = [...]string{
	HeuristicsDefault: "Default",
	HeuristicsOff:     "Off",
	HeuristicsMax:     "Max",
}

func (v Heuristics) String() string { return stringOf(int(v), _table_Heuristics_String[:]) }

// BinopSeparator selects operator placement when a binary expression
// wraps across lines.
type BinopSeparator int8

const (
	BinopFront BinopSeparator = iota
	BinopBack
)

var _table_BinopSeparator_String = [...]string{
	BinopFront: "Front",
	BinopBack:  "Back",
}

func (v BinopSeparator) String() string { return stringOf(int(v), _table_BinopSeparator_String[:]) }

// TrailingCommaPolicy selects when a list emits a trailing separator.
type TrailingCommaPolicy int8

const (
	TrailingAlways TrailingCommaPolicy = iota
	TrailingNever
	TrailingVertical
)

var _table_TrailingComma_String = [...]string{
	TrailingAlways:   "Always",
	TrailingNever:    "Never",
	TrailingVertical: "Vertical",
}

func (v TrailingCommaPolicy) String() string { return stringOf(int(v), _table_TrailingComma_String[:]) }

// BraceStyle selects item-level brace placement.
type BraceStyle int8

const (
	BraceSameLineWhere BraceStyle = iota
	BraceAlwaysNextLine
	BracePreferSameLine
)

var _table_BraceStyle_String = [...]string{
	BraceSameLineWhere:  "SameLineWhere",
	BraceAlwaysNextLine: "AlwaysNextLine",
	BracePreferSameLine: "PreferSameLine",
}

func (v BraceStyle) String() string { return stringOf(int(v), _table_BraceStyle_String[:]) }

// ControlBraceStyle selects control-flow (if/while/for/loop/match) brace
// placement.
type ControlBraceStyle int8

const (
	ControlBraceAlwaysSameLine ControlBraceStyle = iota
	ControlBraceAlwaysNextLine
	ControlBraceClosingNextLine
)

var _table_ControlBraceStyle_String = [...]string{
	ControlBraceAlwaysSameLine:  "AlwaysSameLine",
	ControlBraceAlwaysNextLine:  "AlwaysNextLine",
	ControlBraceClosingNextLine: "ClosingNextLine",
}

func (v ControlBraceStyle) String() string {
	return stringOf(int(v), _table_ControlBraceStyle_String[:])
}

// ImportLayout selects the inner layout tactic for a merged import group.
type ImportLayout int8

const (
	ImportHorizontal ImportLayout = iota
	ImportHorizontalVertical
	ImportMixed
	ImportVertical
)

var _table_ImportLayout_String = [...]string{
	ImportHorizontal:         "Horizontal",
	ImportHorizontalVertical: "HorizontalVertical",
	ImportMixed:              "Mixed",
	ImportVertical:           "Vertical",
}

func (v ImportLayout) String() string { return stringOf(int(v), _table_ImportLayout_String[:]) }

// FnArgsDensity selects the default function-argument list layout.
type FnArgsDensity int8

const (
	FnArgsCompressed FnArgsDensity = iota
	FnArgsTall
	FnArgsVertical
)

var _table_FnArgsDensity_String = [...]string{
	FnArgsCompressed: "Compressed",
	FnArgsTall:       "Tall",
	FnArgsVertical:   "Vertical",
}

func (v FnArgsDensity) String() string { return stringOf(int(v), _table_FnArgsDensity_String[:]) }

// TypePunctuationDensity selects spacing around '+'/'=' in type
// expressions.
type TypePunctuationDensity int8

const (
	TypePunctuationWide TypePunctuationDensity = iota
	TypePunctuationCompressed
)

var _table_TypePunctuationDensity_String = [...]string{
	TypePunctuationWide:       "Wide",
	TypePunctuationCompressed: "Compressed",
}

func (v TypePunctuationDensity) String() string {
	return stringOf(int(v), _table_TypePunctuationDensity_String[:])
}

// Edition is the syntax edition flag.
type Edition int8

const (
	EditionOne Edition = iota
	EditionTwo
)

var _table_Edition_String = [...]string{
	EditionOne: "E1",
	EditionTwo: "E2",
}

func (v Edition) String() string { return stringOf(int(v), _table_Edition_String[:]) }

// Version is the formatting rules version.
type Version int8

const (
	VersionOne Version = iota
	VersionTwo
)

var _table_Version_String = [...]string{
	VersionOne: "One",
	VersionTwo: "Two",
}

func (v Version) String() string { return stringOf(int(v), _table_Version_String[:]) }

func stringOf(v int, table []string) string {
	if v < 0 || v >= len(table) {
		return fmt.Sprintf("?(%d)", v)
	}
	return table[v]
}
