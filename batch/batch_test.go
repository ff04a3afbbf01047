package batch_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shapewright/fmtcore/batch"
	"github.com/shapewright/fmtcore/config"
	"github.com/shapewright/fmtcore/synast"
)

func TestFormatFilesRunsAll(t *testing.T) {
	files := []batch.File{
		{Name: "a.rs", Source: []byte("const A: i32 = 1;\n"), Tree: &synast.File{
			Items: []synast.Item{&synast.Const{Name: "A", Type: "i32", Value: &synast.Literal{Text: "1"}}},
		}},
		{Name: "b.rs", Source: []byte("const B: i32 = 2;\n"), Tree: &synast.File{
			Items: []synast.Item{&synast.Const{Name: "B", Type: "i32", Value: &synast.Literal{Text: "2"}}},
		}},
	}
	results, err := batch.FormatFiles(context.Background(), files, config.Default(), 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, r := range results {
		assert.NoError(t, r.Err)
		assert.Contains(t, r.Result.Rendered, "const")
	}
}

func TestFormatFilesSkipsIgnored(t *testing.T) {
	cfg := config.Default()
	cfg.Ignore = []string{"*.gen.rs"}
	files := []batch.File{
		{Name: "skip.gen.rs", Source: []byte("const A: i32 = 1;\n"), Tree: &synast.File{}},
	}
	results, err := batch.FormatFiles(context.Background(), files, cfg, 1)
	require.NoError(t, err)
	assert.Empty(t, results[0].Result.Rendered)
}
