package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shapewright/fmtcore/config"
)

func TestDefaultValidates(t *testing.T) {
	require.NoError(t, config.Default().Validate())
}

func TestValidateRejectsZeroWidth(t *testing.T) {
	c := config.Default()
	c.MaxWidth = 0
	require.Error(t, c.Validate())
}

func TestValidateRejectsBlankLineBounds(t *testing.T) {
	c := config.Default()
	c.BlankLinesLowerBound = 3
	c.BlankLinesUpperBound = 1
	require.Error(t, c.Validate())
}

func TestClampBlankLines(t *testing.T) {
	c := config.Default()
	c.BlankLinesLowerBound = 1
	c.BlankLinesUpperBound = 2
	assert.Equal(t, uint32(1), c.ClampBlankLines(0))
	assert.Equal(t, uint32(2), c.ClampBlankLines(5))
	assert.Equal(t, uint32(1), c.ClampBlankLines(1))
}

func TestApplyYAML(t *testing.T) {
	base := config.Default()
	out, err := config.ApplyYAML(base, []byte("max_width: 40\ntrailing_comma: Never\n"))
	require.NoError(t, err)
	assert.Equal(t, uint32(40), out.MaxWidth)
	assert.Equal(t, config.TrailingNever, out.TrailingComma)
}
