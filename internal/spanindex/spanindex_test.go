package spanindex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shapewright/fmtcore/internal/spanindex"
)

func TestIndex(t *testing.T) {
	ix := spanindex.New[string]()
	ix.Insert(spanindex.Span{Lo: 10, Hi: 15}, "b")
	ix.Insert(spanindex.Span{Lo: 0, Hi: 5}, "a")
	ix.Insert(spanindex.Span{Lo: 20, Hi: 25}, "c")

	assert.Equal(t, 3, ix.Len())

	key, ok := ix.Lookup(10)
	assert.True(t, ok)
	assert.Equal(t, "b", key)

	span, key, ok := ix.NextFrom(6)
	assert.True(t, ok)
	assert.Equal(t, spanindex.Span{Lo: 10, Hi: 15}, span)
	assert.Equal(t, "b", key)

	var seen []string
	ix.Ascend(func(_ spanindex.Span, key string) bool {
		seen = append(seen, key)
		return true
	})
	assert.Equal(t, []string{"a", "b", "c"}, seen)
}
