package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shapewright/fmtcore/config"
	"github.com/shapewright/fmtcore/engine"
	"github.com/shapewright/fmtcore/synast"
)

func TestFormatSourceSimpleFn(t *testing.T) {
	src := []byte("fn add(a: i32, b: i32) -> i32 { a + b }\n")
	file := &synast.File{
		Items: []synast.Item{
			fnAddBody(),
		},
	}
	res, err := engine.FormatSource(src, "lib.rs", config.Default(), file)
	require.NoError(t, err)
	assert.Contains(t, res.Rendered, "fn add(a: i32, b: i32) -> i32 {")
	assert.False(t, res.HadErrors)
}

func TestFormatSourceDisableAllFormatting(t *testing.T) {
	src := []byte("fn add() {}\n")
	cfg := config.Default()
	cfg.DisableAllFormatting = true
	res, err := engine.FormatSource(src, "lib.rs", cfg, &synast.File{})
	require.NoError(t, err)
	assert.Equal(t, string(src), res.Rendered)
}

func TestFormatSourceInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.MaxWidth = 0
	_, err := engine.FormatSource([]byte(""), "lib.rs", cfg, &synast.File{})
	assert.Error(t, err)
}

func TestCheckSourceDetectsDiff(t *testing.T) {
	src := []byte("fn   add (  )  {  }\n")
	file := &synast.File{Items: []synast.Item{
		&synast.Fn{Name: "add", Body: &synast.Block{}},
	}}
	ok, _, err := engine.CheckSource(src, "lib.rs", config.Default(), file)
	require.NoError(t, err)
	assert.False(t, ok)
}

func fnAddBody() *synast.Fn {
	return &synast.Fn{
		Name: "add",
		Params: []synast.Param{
			{Name: "a", Type: "i32"},
			{Name: "b", Type: "i32"},
		},
		ReturnType: "i32",
		Body: &synast.Block{
			Tail: &synast.Binary{
				Op: "+",
				Operands: []synast.Expr{
					&synast.Path{Segments: []string{"a"}},
					&synast.Path{Segments: []string{"b"}},
				},
			},
		},
	}
}
