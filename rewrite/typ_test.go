package rewrite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shapewright/fmtcore/config"
	"github.com/shapewright/fmtcore/rewrite"
)

func TestNormalizeTypeWidePadsPunctuation(t *testing.T) {
	cfg := config.Default()
	cfg.TypePunctuationDensity = config.TypePunctuationWide
	got := rewrite.NormalizeType(cfg, "A+B")
	assert.Equal(t, "A + B", got)
}

func TestNormalizeTypeCompressedStripsPadding(t *testing.T) {
	cfg := config.Default()
	cfg.TypePunctuationDensity = config.TypePunctuationCompressed
	got := rewrite.NormalizeType(cfg, "A + B")
	assert.Equal(t, "A+B", got)
}

func TestNormalizeTypeAssocBinding(t *testing.T) {
	cfg := config.Default()
	cfg.TypePunctuationDensity = config.TypePunctuationWide
	got := rewrite.NormalizeType(cfg, "Item=T")
	assert.Equal(t, "Item = T", got)
}
