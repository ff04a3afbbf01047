package rewrite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shapewright/fmtcore/config"
	"github.com/shapewright/fmtcore/rewrite"
	"github.com/shapewright/fmtcore/shape"
	"github.com/shapewright/fmtcore/synast"
)

func TestMacroVerbatimPassthrough(t *testing.T) {
	ctx := newContext(config.Default())
	m := &synast.MacroCall{Name: "vec", Delim: "[", Verbatim: "1, 2, 3"}
	r := rewrite.Macro(ctx, shape.Root(100), m)
	assert.Equal(t, "vec![1, 2, 3]", r.Text)
}

func TestMacroArgsListFormatted(t *testing.T) {
	ctx := newContext(config.Default())
	m := &synast.MacroCall{
		Name:  "println",
		Delim: "(",
		Args: []synast.Expr{
			&synast.Literal{Text: `"{}"`},
			&synast.Path{Segments: []string{"x"}},
		},
	}
	r := rewrite.Macro(ctx, shape.Root(100), m)
	assert.Equal(t, `println!("{}", x)`, r.Text)
}

func TestMacroBraceDelimPadded(t *testing.T) {
	ctx := newContext(config.Default())
	m := &synast.MacroCall{
		Name:  "hashmap",
		Delim: "{",
		Args: []synast.Expr{
			&synast.Literal{Text: "1"},
		},
	}
	r := rewrite.Macro(ctx, shape.Root(100), m)
	assert.Equal(t, "hashmap!{ 1 }", r.Text)
}
