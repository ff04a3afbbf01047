package width_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shapewright/fmtcore/internal/width"
)

func TestWidth(t *testing.T) {
	assert.Equal(t, 5, width.Width("hello", 4))
	assert.Equal(t, 0, width.Width("", 4))
	assert.Equal(t, 4, width.Width("\t", 4))
	assert.Equal(t, 5, width.Width("a\tb", 4))
}

func TestRuler(t *testing.T) {
	var r width.Ruler
	r.Measure('a')
	r.Measure('b')
	assert.Equal(t, 2, r.Width())
}
