package shape_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shapewright/fmtcore/shape"
)

func TestBlockIndent(t *testing.T) {
	s := shape.Root(100)
	nested := s.BlockIndent(4)
	assert.Equal(t, uint32(4), nested.Indent.Block)
	assert.Equal(t, uint32(0), nested.Indent.Alignment)
	assert.Equal(t, 96, nested.Width)
}

func TestVisualIndent(t *testing.T) {
	s := shape.Root(100).BlockIndent(4)
	aligned := s.VisualIndent(6)
	assert.Equal(t, uint32(6), aligned.Indent.Alignment)
	assert.Equal(t, uint32(4), aligned.Indent.Block)
	assert.Equal(t, 90, aligned.Width)
}

func TestIndentString(t *testing.T) {
	ind := shape.Indent{Block: 8, Alignment: 3}
	assert.Equal(t, "           ", ind.String(4, false))
	assert.Equal(t, "\t\t   ", ind.String(4, true))
}

func TestFits(t *testing.T) {
	s := shape.Root(10)
	assert.True(t, s.Fits("hello", 4))
	assert.False(t, s.Fits("hello world!", 4))
}

func TestOverflowed(t *testing.T) {
	s := shape.Root(3).SubWidth(5)
	assert.True(t, s.Overflowed())
	assert.Equal(t, 0, s.Remaining())
}
