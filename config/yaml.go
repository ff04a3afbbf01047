package config

import "gopkg.in/yaml.v3"

// overrides is the YAML-facing mirror of Config used by golden test
// fixture front matter (see engine/golden_test.go), where only the handful of
// options a given fixture cares about need to be spelled out. Fields are
// pointers so "absent from the YAML" is distinguishable from "explicitly
// set to the zero value".
type overrides struct {
	MaxWidth              *uint32 `yaml:"max_width"`
	TabSpaces             *uint32 `yaml:"tab_spaces"`
	HardTabs              *bool   `yaml:"hard_tabs"`
	UseSmallHeuristics    *string `yaml:"use_small_heuristics"`
	BinopSeparator        *string `yaml:"binop_separator"`
	TrailingComma         *string `yaml:"trailing_comma"`
	IndentStyle           *string `yaml:"indent_style"`
	FnArgsDensity         *string `yaml:"fn_args_density"`
	ReorderImports        *bool   `yaml:"reorder_imports"`
	MergeImports          *bool   `yaml:"merge_imports"`
	OverflowDelimitedExpr *bool   `yaml:"overflow_delimited_expr"`
	UseTryShorthand       *bool   `yaml:"use_try_shorthand"`
	ErrorOnLineOverflow   *bool   `yaml:"error_on_line_overflow"`
}

// ApplyYAML parses a YAML document of overrides and applies them on top
// of base, returning the merged Config. Unknown keys are ignored (a
// fixture only ever needs to name the handful of options it's exercising).
func ApplyYAML(base Config, doc []byte) (Config, error) {
	if len(doc) == 0 {
		return base, nil
	}
	var ov overrides
	if err := yaml.Unmarshal(doc, &ov); err != nil {
		return Config{}, err
	}
	out := base
	if ov.MaxWidth != nil {
		out.MaxWidth = *ov.MaxWidth
	}
	if ov.TabSpaces != nil {
		out.TabSpaces = *ov.TabSpaces
	}
	if ov.HardTabs != nil {
		out.HardTabs = *ov.HardTabs
	}
	if ov.UseSmallHeuristics != nil {
		out.UseSmallHeuristics = parseHeuristics(*ov.UseSmallHeuristics)
	}
	if ov.BinopSeparator != nil {
		out.BinopSeparator = parseBinopSeparator(*ov.BinopSeparator)
	}
	if ov.TrailingComma != nil {
		out.TrailingComma = parseTrailingComma(*ov.TrailingComma)
	}
	if ov.IndentStyle != nil {
		out.IndentStyle = parseIndentStyle(*ov.IndentStyle)
	}
	if ov.FnArgsDensity != nil {
		out.FnArgsDensity = parseFnArgsDensity(*ov.FnArgsDensity)
	}
	if ov.ReorderImports != nil {
		out.ReorderImports = *ov.ReorderImports
	}
	if ov.MergeImports != nil {
		out.MergeImports = *ov.MergeImports
	}
	if ov.OverflowDelimitedExpr != nil {
		out.OverflowDelimitedExpr = *ov.OverflowDelimitedExpr
	}
	if ov.UseTryShorthand != nil {
		out.UseTryShorthand = *ov.UseTryShorthand
	}
	if ov.ErrorOnLineOverflow != nil {
		out.ErrorOnLineOverflow = *ov.ErrorOnLineOverflow
	}
	return out, nil
}

func parseHeuristics(s string) Heuristics {
	switch s {
	case "Off":
		return HeuristicsOff
	case "Max":
		return HeuristicsMax
	default:
		return HeuristicsDefault
	}
}

func parseBinopSeparator(s string) BinopSeparator {
	if s == "Back" {
		return BinopBack
	}
	return BinopFront
}

func parseTrailingComma(s string) TrailingCommaPolicy {
	switch s {
	case "Always":
		return TrailingAlways
	case "Never":
		return TrailingNever
	default:
		return TrailingVertical
	}
}

func parseIndentStyle(s string) IndentStyle {
	if s == "Visual" {
		return IndentVisual
	}
	return IndentBlock
}

func parseFnArgsDensity(s string) FnArgsDensity {
	switch s {
	case "Compressed":
		return FnArgsCompressed
	case "Vertical":
		return FnArgsVertical
	default:
		return FnArgsTall
	}
}
