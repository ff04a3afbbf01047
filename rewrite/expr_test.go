package rewrite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shapewright/fmtcore/config"
	"github.com/shapewright/fmtcore/internal/spanindex"
	"github.com/shapewright/fmtcore/report"
	"github.com/shapewright/fmtcore/rewrite"
	"github.com/shapewright/fmtcore/shape"
	"github.com/shapewright/fmtcore/synast"
	"github.com/shapewright/fmtcore/trivia"
)

func newContext(cfg config.Config) *rewrite.Context {
	return &rewrite.Context{
		Config:  cfg,
		Trivia:  spanindex.New[trivia.Trivia](),
		Skip:    trivia.SkipSet{},
		Handler: report.NewHandler(),
	}
}

func TestExprLiteral(t *testing.T) {
	ctx := newContext(config.Default())
	r := rewrite.Expr(ctx, shape.Root(80), &synast.Literal{Text: "42"})
	assert.True(t, r.Ok)
	assert.Equal(t, "42", r.Text)
}

func TestExprCallFits(t *testing.T) {
	ctx := newContext(config.Default())
	call := &synast.Call{
		Target: &synast.Path{Segments: []string{"foo"}},
		Args: []synast.Expr{
			&synast.Literal{Text: "1"},
			&synast.Literal{Text: "2"},
		},
	}
	r := rewrite.Expr(ctx, shape.Root(80), call)
	assert.True(t, r.Ok)
	assert.Equal(t, "foo(1, 2)", r.Text)
}

func TestExprBinaryWrapsWhenTooWide(t *testing.T) {
	ctx := newContext(config.Default())
	bin := &synast.Binary{
		Op: "+",
		Operands: []synast.Expr{
			&synast.Path{Segments: []string{"alpha_variable_one"}},
			&synast.Path{Segments: []string{"beta_variable_two"}},
			&synast.Path{Segments: []string{"gamma_variable_three"}},
		},
	}
	r := rewrite.Expr(ctx, shape.Root(20), bin)
	assert.True(t, r.Ok)
	assert.Contains(t, r.Text, "\n")
}

func TestExprParenRemovesRedundant(t *testing.T) {
	ctx := newContext(config.Default())
	paren := &synast.Paren{Inner: &synast.Literal{Text: "1"}}
	r := rewrite.Expr(ctx, shape.Root(80), paren)
	assert.Equal(t, "1", r.Text)
}

func TestExprTryShorthand(t *testing.T) {
	cfg := config.Default()
	cfg.UseTryShorthand = true
	ctx := newContext(cfg)
	tryExpr := &synast.Try{Expr: &synast.Path{Segments: []string{"x"}}, Legacy: true}
	r := rewrite.Expr(ctx, shape.Root(80), tryExpr)
	assert.Equal(t, "x?", r.Text)
}

func TestBlockExprEmpty(t *testing.T) {
	ctx := newContext(config.Default())
	r := rewrite.BlockExpr(ctx, shape.Root(80), &synast.Block{})
	assert.Equal(t, "{}", r.Text)
}
