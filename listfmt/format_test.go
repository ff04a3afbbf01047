package listfmt_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shapewright/fmtcore/listfmt"
	"github.com/shapewright/fmtcore/report"
	"github.com/shapewright/fmtcore/shape"
)

func items(texts ...string) []listfmt.Item {
	out := make([]listfmt.Item, len(texts))
	for i, t := range texts {
		out[i] = listfmt.Item{Text: t}
	}
	return out
}

func TestFormatEmpty(t *testing.T) {
	s := shape.Root(80)
	out, reason := listfmt.Format(s, nil, listfmt.DefaultCallArgs(listfmt.Never))
	assert.Equal(t, "()", out)
	assert.Equal(t, report.ReasonNone, reason)
}

func TestFormatHorizontalFits(t *testing.T) {
	s := shape.Root(80)
	out, reason := listfmt.Format(s, items("a", "b", "c"), listfmt.DefaultCallArgs(listfmt.Never))
	assert.Equal(t, "(a, b, c)", out)
	assert.Equal(t, report.ReasonNone, reason)
}

func TestFormatFallsBackToVerticalWhenTooWide(t *testing.T) {
	s := shape.Root(10)
	p := listfmt.DefaultCallArgs(listfmt.Always)
	out, reason := listfmt.Format(s, items("alpha_one", "beta_two", "gamma_three"), p)
	assert.Equal(t, report.ReasonNone, reason)
	assert.True(t, strings.HasPrefix(out, "(\n"))
	assert.True(t, strings.Contains(out, "alpha_one,\n"))
	assert.True(t, strings.HasSuffix(out, ")"))
}

func TestFormatCommentForcesOwnLine(t *testing.T) {
	s := shape.Root(80)
	its := items("a", "b")
	its[0].TrailingComment = "// note"
	p := listfmt.DefaultCallArgs(listfmt.Never)
	out, reason := listfmt.Format(s, its, p)
	assert.Equal(t, report.ReasonNone, reason)
	assert.Contains(t, out, "// note")
	assert.True(t, strings.Contains(out, "\n"))
}

func TestFormatMultilineItemForcesVertical(t *testing.T) {
	s := shape.Root(80)
	its := items("a", "b\nc")
	p := listfmt.DefaultCallArgs(listfmt.Never)
	out, reason := listfmt.Format(s, its, p)
	assert.Equal(t, report.ReasonNone, reason)
	assert.True(t, strings.HasPrefix(out, "(\n"))
}

func TestFormatMustFitReportsOverflow(t *testing.T) {
	s := shape.Root(4)
	p := listfmt.DefaultCallArgs(listfmt.Never)
	p.MustFit = true
	_, reason := listfmt.Format(s, items("alpha_one_two_three_four_five"), p)
	assert.Equal(t, report.ReasonWidthExceeded, reason)
}

func TestFormatTrailingCommaAlwaysOnVertical(t *testing.T) {
	s := shape.Root(5)
	p := listfmt.DefaultCallArgs(listfmt.Always)
	out, _ := listfmt.Format(s, items("alpha", "beta"), p)
	lines := strings.Split(out, "\n")
	last := lines[len(lines)-2]
	assert.True(t, strings.HasSuffix(strings.TrimSpace(last), ","))
}
