package engine_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shapewright/fmtcore/config"
	"github.com/shapewright/fmtcore/engine"
	"github.com/shapewright/fmtcore/internal/golden"
	"github.com/shapewright/fmtcore/synast"
)

// fixtures maps a corpus case's base name (testdata/fmt/<name>.input) to a
// builder of the tree FormatSource renders. Parsing Rust source is out of
// scope for this module (spec.md §1), so each fixture's tree is built
// directly rather than recovered from the .input file's text — the .input
// file instead holds a short description of the case, optionally preceded
// by YAML config-override front matter.
var fixtures = map[string]func() *synast.File{
	"simple_fn": func() *synast.File {
		return &synast.File{Items: []synast.Item{
			&synast.Fn{
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
			},
		}}
	},
	"const_basic": func() *synast.File {
		return &synast.File{Items: []synast.Item{
			&synast.Const{Name: "MAX", Type: "i32", Value: &synast.Literal{Text: "100"}},
		}}
	},
	"struct_fields": func() *synast.File {
		return &synast.File{Items: []synast.Item{
			&synast.Struct{
				Name: "Point",
				Fields: []synast.Field{
					{Name: "x", Type: "i32"},
					{Name: "y", Type: "i32"},
				},
			},
		}}
	},
}

// splitFrontMatter pulls a leading "---\n...\n---\n" YAML block off of
// text, returning the YAML document bytes (nil if absent).
func splitFrontMatter(text string) []byte {
	const delim = "---\n"
	if !strings.HasPrefix(text, delim) {
		return nil
	}
	rest := text[len(delim):]
	end := strings.Index(rest, delim)
	if end < 0 {
		return nil
	}
	return []byte(rest[:end])
}

func TestGoldenFormat(t *testing.T) {
	c := golden.Corpus{
		Root:       "testdata/fmt",
		Refresh:    "FMTCORE_REFRESH",
		Extensions: []string{"input"},
		Outputs:    []golden.Output{{Extension: "golden"}},
	}
	c.Run(t, func(t *testing.T, path, text string, outputs []string) {
		name := strings.TrimSuffix(filepath.Base(path), ".input")
		build, ok := fixtures[name]
		require.Truef(t, ok, "golden: no fixture builder registered for %q", name)

		cfg, err := config.ApplyYAML(config.Default(), splitFrontMatter(text))
		require.NoError(t, err)

		res, err := engine.FormatSource(nil, name+".rs", cfg, build())
		require.NoError(t, err)
		outputs[0] = res.Rendered
	})
}
