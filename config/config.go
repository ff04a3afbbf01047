// Package config defines the resolved configuration record the shaping
// engine consumes. Config loading — CLI flags, file discovery, merging
// nearest-ancestor config files — is explicitly out of scope per spec.md
// §1 ("the core receives a resolved configuration record"); this package
// only models the record itself and its one in-scope responsibility,
// validating that every field's value lies in its documented domain
// (spec.md §7's ConfigInvalid, "surfaced at configuration load, never
// inside the shaping engine").
package config

import (
	"fmt"

	"github.com/shapewright/fmtcore/report"
)

// Config mirrors the option table in spec.md §6, field for field.
type Config struct {
	MaxWidth    uint32
	TabSpaces   uint32
	HardTabs    bool
	NewlineStyle          NewlineStyle
	IndentStyle           IndentStyle
	UseSmallHeuristics    Heuristics
	BinopSeparator        BinopSeparator
	CombineControlExpr    bool
	TrailingComma         TrailingCommaPolicy
	MatchBlockTrailingComma bool
	BraceStyle            BraceStyle
	ControlBraceStyle     ControlBraceStyle
	EmptyItemSingleLine   bool
	FnSingleLine          bool
	WhereSingleLine       bool
	ImportsIndent         IndentStyle
	ImportsLayout         ImportLayout
	MergeImports          bool
	ReorderImports        bool
	ReorderModules        bool
	ReorderImplItems      bool
	WrapComments          bool
	CommentWidth          uint32
	NormalizeComments     bool
	NormalizeDocAttributes bool
	FormatStrings         bool
	FormatMacroBodies     bool
	FormatMacroMatchers   bool
	ForceExplicitABI      bool
	CondenseWildcardSuffixes bool
	RemoveNestedParens    bool
	UseFieldInitShorthand bool
	UseTryShorthand       bool
	TrailingSemicolon     bool
	BlankLinesUpperBound  uint32
	BlankLinesLowerBound  uint32
	FnArgsDensity         FnArgsDensity
	StructFieldAlignThreshold uint32
	EnumDiscrimAlignThreshold uint32
	ForceMultilineBlocks  bool
	OverflowDelimitedExpr bool
	SpacesAroundRanges    bool
	SpaceAfterColon       bool
	SpaceBeforeColon      bool
	TypePunctuationDensity TypePunctuationDensity
	MatchArmBlocks        bool
	DisableAllFormatting  bool
	SkipChildren          bool
	Edition               Edition
	Version               Version
	Ignore                []string
	RequiredVersion       string
	HideParseErrors       bool
	ErrorOnLineOverflow   bool
	ErrorOnUnformatted    bool
	LicenseTemplatePath   string
}

// Default returns the documented default configuration (the values a
// formatter ships with before any project config file is merged in —
// that merge happens upstream of the core, per spec.md §1).
func Default() Config {
	return Config{
		MaxWidth:                100,
		TabSpaces:                4,
		HardTabs:                 false,
		NewlineStyle:             NewlineAuto,
		IndentStyle:              IndentBlock,
		UseSmallHeuristics:       HeuristicsDefault,
		BinopSeparator:           BinopFront,
		CombineControlExpr:       true,
		TrailingComma:            TrailingVertical,
		MatchBlockTrailingComma:  false,
		BraceStyle:               BraceSameLineWhere,
		ControlBraceStyle:        ControlBraceAlwaysSameLine,
		EmptyItemSingleLine:      true,
		FnSingleLine:             false,
		WhereSingleLine:          false,
		ImportsIndent:            IndentBlock,
		ImportsLayout:            ImportMixed,
		MergeImports:             false,
		ReorderImports:           true,
		ReorderModules:           true,
		ReorderImplItems:         false,
		WrapComments:             false,
		CommentWidth:             80,
		NormalizeComments:        false,
		NormalizeDocAttributes:   false,
		FormatStrings:            false,
		FormatMacroBodies:        true,
		FormatMacroMatchers:      true,
		ForceExplicitABI:         true,
		CondenseWildcardSuffixes: false,
		RemoveNestedParens:       true,
		UseFieldInitShorthand:    false,
		UseTryShorthand:          false,
		TrailingSemicolon:        true,
		BlankLinesUpperBound:     1,
		BlankLinesLowerBound:     0,
		FnArgsDensity:            FnArgsTall,
		StructFieldAlignThreshold: 0,
		EnumDiscrimAlignThreshold: 0,
		ForceMultilineBlocks:     false,
		OverflowDelimitedExpr:    false,
		SpacesAroundRanges:       false,
		SpaceAfterColon:          true,
		SpaceBeforeColon:         false,
		TypePunctuationDensity:   TypePunctuationWide,
		MatchArmBlocks:           true,
		DisableAllFormatting:     false,
		SkipChildren:             false,
		Edition:                  EditionTwo,
		Version:                  VersionTwo,
		HideParseErrors:          false,
		ErrorOnLineOverflow:      false,
		ErrorOnUnformatted:       false,
	}
}

// Validate reports whether every field of c lies within its documented
// domain, returning report.ErrConfigInvalid (wrapped with the offending
// field name) on the first violation found.
func (c Config) Validate() error {
	switch {
	case c.MaxWidth == 0:
		return fmt.Errorf("%w: max_width must be > 0", report.ErrConfigInvalid)
	case c.TabSpaces == 0:
		return fmt.Errorf("%w: tab_spaces must be > 0", report.ErrConfigInvalid)
	case c.CommentWidth == 0 && c.WrapComments:
		return fmt.Errorf("%w: comment_width must be > 0 when wrap_comments is set", report.ErrConfigInvalid)
	case c.BlankLinesLowerBound > c.BlankLinesUpperBound:
		return fmt.Errorf("%w: blank_lines_lower_bound must be <= blank_lines_upper_bound", report.ErrConfigInvalid)
	}
	for _, pat := range c.Ignore {
		if pat == "" {
			return fmt.Errorf("%w: ignore contains an empty pattern", report.ErrConfigInvalid)
		}
	}
	return nil
}

// ClampBlankLines clamps n, a count of consecutive blank lines observed
// between two items, into [BlankLinesLowerBound, BlankLinesUpperBound].
// The lower bound only applies between items, never at the start or end
// of a file (spec.md §8, property 6) — callers at a file boundary should
// not call this at all.
func (c Config) ClampBlankLines(n uint32) uint32 {
	if n < c.BlankLinesLowerBound {
		return c.BlankLinesLowerBound
	}
	if n > c.BlankLinesUpperBound {
		return c.BlankLinesUpperBound
	}
	return n
}
