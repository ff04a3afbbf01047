package rewrite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shapewright/fmtcore/config"
	"github.com/shapewright/fmtcore/rewrite"
	"github.com/shapewright/fmtcore/shape"
	"github.com/shapewright/fmtcore/synast"
)

func TestItemFnWithBody(t *testing.T) {
	ctx := newContext(config.Default())
	fn := &synast.Fn{
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
	r := rewrite.Item(ctx, shape.Root(100), fn)
	assert.True(t, r.Ok)
	assert.Equal(t, "fn add(a: i32, b: i32) -> i32 {\n    a + b\n}", r.Text)
}

func TestItemFnNoBodyIsDeclaration(t *testing.T) {
	ctx := newContext(config.Default())
	fn := &synast.Fn{Name: "stub", ReturnType: "i32"}
	r := rewrite.Item(ctx, shape.Root(100), fn)
	assert.True(t, r.Ok)
	assert.Equal(t, "fn stub() -> i32;", r.Text)
}

func TestItemConst(t *testing.T) {
	ctx := newContext(config.Default())
	c := &synast.Const{Name: "MAX", Type: "i32", Value: &synast.Literal{Text: "100"}}
	r := rewrite.Item(ctx, shape.Root(100), c)
	assert.Equal(t, "const MAX: i32 = 100;", r.Text)
}

func TestItemStaticMut(t *testing.T) {
	ctx := newContext(config.Default())
	s := &synast.Static{Mut: true, Name: "COUNTER", Type: "u32", Value: &synast.Literal{Text: "0"}}
	r := rewrite.Item(ctx, shape.Root(100), s)
	assert.Equal(t, "static mut COUNTER: u32 = 0;", r.Text)
}

func TestItemStructFieldsFitOnOneLine(t *testing.T) {
	ctx := newContext(config.Default())
	st := &synast.Struct{
		Name: "Point",
		Fields: []synast.Field{
			{Name: "x", Type: "i32"},
			{Name: "y", Type: "i32"},
		},
	}
	r := rewrite.Item(ctx, shape.Root(100), st)
	assert.Equal(t, "struct Point { x: i32, y: i32 }", r.Text)
}

func TestItemStructUnit(t *testing.T) {
	ctx := newContext(config.Default())
	st := &synast.Struct{Name: "Marker", Unit: true}
	r := rewrite.Item(ctx, shape.Root(100), st)
	assert.Equal(t, "struct Marker;", r.Text)
}

func TestItemStructTuple(t *testing.T) {
	ctx := newContext(config.Default())
	st := &synast.Struct{
		Name:  "Pair",
		Tuple: true,
		Fields: []synast.Field{
			{Type: "i32"},
			{Type: "i32"},
		},
	}
	r := rewrite.Item(ctx, shape.Root(100), st)
	assert.Equal(t, "struct Pair(i32, i32);", r.Text)
}

func TestItemUseSingleLeaf(t *testing.T) {
	ctx := newContext(config.Default())
	u := &synast.Use{Segments: []string{"std", "mem"}, Leaves: []string{"swap"}}
	r := rewrite.Item(ctx, shape.Root(100), u)
	assert.Equal(t, "use std::mem::swap;", r.Text)
}

func TestItemUseGroupSortedHorizontal(t *testing.T) {
	cfg := config.Default()
	cfg.ImportsLayout = config.ImportHorizontal
	ctx := newContext(cfg)
	u := &synast.Use{Segments: []string{"std", "collections"}, Leaves: []string{"HashSet", "HashMap"}}
	r := rewrite.Item(ctx, shape.Root(100), u)
	assert.Equal(t, "use std::collections::{ HashMap, HashSet };", r.Text)
}

func TestItemUseAlias(t *testing.T) {
	ctx := newContext(config.Default())
	u := &synast.Use{Segments: []string{"std", "io"}, Leaves: []string{"Result"}, Alias: "IoResult"}
	r := rewrite.Item(ctx, shape.Root(100), u)
	assert.Equal(t, "use std::io::Result as IoResult;", r.Text)
}

func TestItemTypeAlias(t *testing.T) {
	ctx := newContext(config.Default())
	ta := &synast.TypeAlias{Name: "Pair", Target: "(i32, i32)"}
	r := rewrite.Item(ctx, shape.Root(100), ta)
	assert.Equal(t, "type Pair = (i32, i32);", r.Text)
}

func TestItemEmptyImpl(t *testing.T) {
	ctx := newContext(config.Default())
	im := &synast.Impl{TypePath: "Foo"}
	r := rewrite.Item(ctx, shape.Root(100), im)
	assert.Equal(t, "impl Foo {\n}", r.Text)
}

func TestItemModDeclaration(t *testing.T) {
	ctx := newContext(config.Default())
	m := &synast.Mod{Name: "util"}
	r := rewrite.Item(ctx, shape.Root(100), m)
	assert.Equal(t, "mod util;", r.Text)
}
