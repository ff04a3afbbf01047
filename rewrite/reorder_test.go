package rewrite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shapewright/fmtcore/config"
	"github.com/shapewright/fmtcore/rewrite"
	"github.com/shapewright/fmtcore/synast"
)

func useUnit(segments []string, leaves []string, alias string) rewrite.RenderUnit {
	return rewrite.RenderUnit{Item: &synast.Use{Segments: segments, Leaves: leaves, Alias: alias}}
}

func modUnit(name string, macroExport bool) rewrite.RenderUnit {
	m := &synast.Mod{Name: name}
	if macroExport {
		m.Attributes = []synast.Attribute{{Path: "macro_export"}}
	}
	return rewrite.RenderUnit{Item: m}
}

func TestGroupImportsReordersWithinContiguousRun(t *testing.T) {
	cfg := config.Default()
	cfg.MergeImports = false
	cfg.ReorderImports = true

	units := []rewrite.RenderUnit{
		useUnit([]string{"std", "vec"}, nil, ""),
		useUnit([]string{"std", "fmt"}, nil, ""),
		rewrite.RenderUnit{Item: &synast.Fn{Name: "between"}},
		useUnit([]string{"core", "mem"}, nil, ""),
		useUnit([]string{"alloc", "rc"}, nil, ""),
	}

	out := rewrite.GroupImports(cfg, units)
	assert.Len(t, out, 5)
	assert.Equal(t, []string{"std", "fmt"}, out[0].Item.(*synast.Use).Segments)
	assert.Equal(t, []string{"std", "vec"}, out[1].Item.(*synast.Use).Segments)
	if _, ok := out[2].Item.(*synast.Fn); !ok {
		t.Fatalf("expected the non-use item to interrupt the run and stay in place, got %T", out[2].Item)
	}
	assert.Equal(t, []string{"alloc", "rc"}, out[3].Item.(*synast.Use).Segments)
	assert.Equal(t, []string{"core", "mem"}, out[4].Item.(*synast.Use).Segments)
}

func TestGroupImportsMergesSharedPrefix(t *testing.T) {
	cfg := config.Default()
	cfg.MergeImports = true
	cfg.ReorderImports = true

	units := []rewrite.RenderUnit{
		useUnit([]string{"std", "collections"}, []string{"HashMap"}, ""),
		useUnit([]string{"std", "collections"}, []string{"HashSet"}, ""),
		useUnit([]string{"std", "collections"}, []string{"BTreeMap"}, ""),
	}

	out := rewrite.GroupImports(cfg, units)
	if assert.Len(t, out, 1) {
		merged := out[0].Item.(*synast.Use)
		assert.Equal(t, []string{"std", "collections"}, merged.Segments)
		assert.Equal(t, []string{"BTreeMap", "HashMap", "HashSet"}, merged.Leaves)
	}
}

func TestGroupImportsKeepsAliasedUseSeparate(t *testing.T) {
	cfg := config.Default()
	cfg.MergeImports = true
	cfg.ReorderImports = false

	units := []rewrite.RenderUnit{
		useUnit([]string{"std", "io"}, []string{"Result"}, ""),
		useUnit([]string{"std", "io"}, []string{"Result"}, "IoResult"),
	}

	out := rewrite.GroupImports(cfg, units)
	assert.Len(t, out, 2)
}

func TestGroupImportsNoopWhenBothFlagsOff(t *testing.T) {
	cfg := config.Default()
	cfg.MergeImports = false
	cfg.ReorderImports = false

	units := []rewrite.RenderUnit{
		useUnit([]string{"std", "vec"}, nil, ""),
		useUnit([]string{"std", "fmt"}, nil, ""),
	}

	out := rewrite.GroupImports(cfg, units)
	assert.Equal(t, units, out)
}

func TestGroupModulesSortsContiguousRun(t *testing.T) {
	cfg := config.Default()
	cfg.ReorderModules = true

	units := []rewrite.RenderUnit{
		modUnit("zeta", false),
		modUnit("alpha", false),
		rewrite.RenderUnit{Item: &synast.Fn{Name: "between"}},
		modUnit("delta", false),
		modUnit("bravo", false),
	}

	out := rewrite.GroupModules(cfg, units)
	assert.Len(t, out, 5)
	assert.Equal(t, "alpha", out[0].Item.(*synast.Mod).Name)
	assert.Equal(t, "zeta", out[1].Item.(*synast.Mod).Name)
	if _, ok := out[2].Item.(*synast.Fn); !ok {
		t.Fatalf("expected the non-mod item to stay in place, got %T", out[2].Item)
	}
	assert.Equal(t, "bravo", out[3].Item.(*synast.Mod).Name)
	assert.Equal(t, "delta", out[4].Item.(*synast.Mod).Name)
}

func TestGroupModulesMacroExportIsABarrier(t *testing.T) {
	cfg := config.Default()
	cfg.ReorderModules = true

	units := []rewrite.RenderUnit{
		modUnit("zeta", false),
		modUnit("gamma", true),
		modUnit("alpha", false),
	}

	out := rewrite.GroupModules(cfg, units)
	if assert.Len(t, out, 3) {
		assert.Equal(t, "zeta", out[0].Item.(*synast.Mod).Name)
		assert.Equal(t, "gamma", out[1].Item.(*synast.Mod).Name)
		assert.Equal(t, "alpha", out[2].Item.(*synast.Mod).Name)
	}
}
