package trivia_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shapewright/fmtcore/synast"
	"github.com/shapewright/fmtcore/trivia"
)

func TestExtractAllLeadingComment(t *testing.T) {
	src := []byte("fn a() {}\n\n// hello\nfn b() {}\n")
	spanA := synast.Span{Lo: 0, Hi: 9}
	spanB := synast.Span{Lo: 20, Hi: 29}

	ex := trivia.New(src, nil, false)
	idx, tail, warnings := ex.ExtractAll([]synast.Span{spanA, spanB})

	tr, ok := idx.Lookup(spanB.Lo)
	assert.True(t, ok)
	assert.Equal(t, uint32(1), tr.LeadingBlankLines)
	if assert.Len(t, tr.LeadingComments, 1) {
		assert.Equal(t, "hello", tr.LeadingComments[0].Text)
		assert.Equal(t, trivia.Line, tr.LeadingComments[0].Kind)
	}
	assert.Empty(t, warnings)
	assert.True(t, tail.Empty())
}

func TestExtractAllTrailingComment(t *testing.T) {
	src := []byte("let x = 1; // note\nlet y = 2;\n")
	spanA := synast.Span{Lo: 0, Hi: 10}
	spanB := synast.Span{Lo: 19, Hi: 29}

	ex := trivia.New(src, nil, false)
	idx, _, _ := ex.ExtractAll([]synast.Span{spanA, spanB})

	tr, ok := idx.Lookup(spanB.Lo)
	assert.True(t, ok)
	if assert.Len(t, tr.TrailingComments, 1) {
		assert.Equal(t, "note", tr.TrailingComments[0].Text)
	}
	assert.Empty(t, tr.LeadingComments)
}

func TestExtractAllTodoMarker(t *testing.T) {
	src := []byte("fn a() {}\n// TODO: fix this\nfn b() {}\n")
	spanA := synast.Span{Lo: 0, Hi: 9}
	spanB := synast.Span{Lo: 28, Hi: 37}

	ex := trivia.New(src, []string{"TODO"}, false)
	_, _, warnings := ex.ExtractAll([]synast.Span{spanA, spanB})
	if assert.Len(t, warnings, 1) {
		assert.Equal(t, "TODO", warnings[0].Marker)
	}
}

func TestDiscoverSkip(t *testing.T) {
	set := trivia.SkipSet{}
	sp := synast.Span{Lo: 5, Hi: 10}
	trivia.DiscoverSkip(set, sp, []synast.Attribute{{Path: "rustfmt::skip"}})
	assert.True(t, set.Contains(sp))
	assert.False(t, set.Contains(synast.Span{Lo: 99, Hi: 100}))
}
