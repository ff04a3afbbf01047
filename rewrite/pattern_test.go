package rewrite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shapewright/fmtcore/config"
	"github.com/shapewright/fmtcore/rewrite"
)

func TestNormalizePatternCondensesTrailingWildcards(t *testing.T) {
	cfg := config.Default()
	cfg.CondenseWildcardSuffixes = true
	got := rewrite.NormalizePattern(cfg, "Foo(a, _, _)")
	assert.Equal(t, "Foo(a, ..)", got)
}

func TestNormalizePatternLeavesSingleWildcardAlone(t *testing.T) {
	cfg := config.Default()
	cfg.CondenseWildcardSuffixes = true
	got := rewrite.NormalizePattern(cfg, "Foo(_)")
	assert.Equal(t, "Foo(_)", got)
}

func TestNormalizePatternNoopWhenDisabled(t *testing.T) {
	cfg := config.Default()
	cfg.CondenseWildcardSuffixes = false
	got := rewrite.NormalizePattern(cfg, "Foo(a, _, _)")
	assert.Equal(t, "Foo(a, _, _)", got)
}

func TestNormalizePatternNoopWithoutTrailingWildcards(t *testing.T) {
	cfg := config.Default()
	cfg.CondenseWildcardSuffixes = true
	got := rewrite.NormalizePattern(cfg, "Foo(a, b)")
	assert.Equal(t, "Foo(a, b)", got)
}
