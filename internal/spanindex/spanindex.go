// Package spanindex provides a sorted index of byte-offset spans, keyed by
// their starting offset, so that the Trivia Extractor can find "the node
// whose span starts immediately after this byte offset" without walking
// the whole tree. The teacher's internal/interval package solves the same
// kind of ordered-lookup problem with tidwall/btree's generic ordered Map;
// this package wraps the same type for the simpler single-key case the
// extractor needs.
package spanindex

import "github.com/tidwall/btree"

// Span is a half-open byte range [Lo, Hi).
type Span struct {
	Lo, Hi int
}

// Index is a sorted, ordered map from a span's starting offset to an
// arbitrary value, indexed once and queried many times — exactly the
// access pattern spec.md §9 calls for ("best served by sorted arrays of
// spans indexed into once, not by back-pointers").
//
// Ties at the same Lo (possible for zero-width spans) are broken by
// insertion order: the last Insert for a given Lo wins, matching
// btree.Map's own last-write-wins Set semantics.
type Index[K any] struct {
	tree  btree.Map[int, entryValue[K]]
	spans map[int]Span
}

type entryValue[K any] struct {
	span Span
	key  K
}

// New constructs an empty Index.
func New[K any]() *Index[K] {
	return &Index[K]{spans: make(map[int]Span)}
}

// Insert adds span -> key to the index, keyed by span.Lo.
func (ix *Index[K]) Insert(span Span, key K) {
	ix.tree.Set(span.Lo, entryValue[K]{span: span, key: key})
	ix.spans[span.Lo] = span
}

// Len returns the number of spans in the index.
func (ix *Index[K]) Len() int {
	return ix.tree.Len()
}

// Lookup returns the key for the span starting at exactly lo, if present.
func (ix *Index[K]) Lookup(lo int) (K, bool) {
	v, ok := ix.tree.Get(lo)
	return v.key, ok
}

// NextFrom returns the first indexed span whose Lo is >= offset, in
// source order, and its key. This is what the Trivia Extractor uses to
// find "the next node boundary after the trivia it is currently walking".
func (ix *Index[K]) NextFrom(offset int) (Span, K, bool) {
	var zero K
	it := ix.tree.Iter()
	if !it.Seek(offset) {
		return Span{}, zero, false
	}
	v := it.Value()
	return v.span, v.key, true
}

// Ascend calls fn for every (span, key) pair in ascending span order,
// stopping early if fn returns false.
func (ix *Index[K]) Ascend(fn func(Span, K) bool) {
	ix.tree.Scan(func(_ int, v entryValue[K]) bool {
		return fn(v.span, v.key)
	})
}
