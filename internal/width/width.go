// Copyright 2020-2024 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package width exports functions which measure the number of terminal
// window cells that a particular Unicode string can be expected to use up.
// The definition of "width" is taken from the Rust unicode-width library.
//
// See https://github.com/unicode-rs/unicode-width for details on how this
// is defined.
//
// This functionality should not be confused with the golang.org/x/text/width
// package, which is about conversion between full- and half-width variants
// of runes as present in East Asian computing.
package width

import "unicode"

// Width makes a best-effort guess at the width of s when displayed on a
// terminal. Tabstops ('\t') are treated specially: they are assumed to
// justify text to the next column that is a multiple of tabstop.
//
// This function treats characters in the Ambiguous category according to
// Unicode Standard Annex #11 as 1 column wide, consistent with the
// recommendation for non-CJK contexts.
func Width(s string, tabstop int) (width int) {
	var r Ruler
	for _, ch := range s {
		if ch == '\t' && tabstop > 0 {
			width += tabstop - width%tabstop
			r.width = width
			continue
		}
		width = r.Measure(ch)
	}
	return width
}

// Ruler tracks the state of an ongoing measurement.
//
// Unsurprisingly, measuring a Unicode string is stateful: combining marks
// attach to the preceding rune and contribute no width of their own. Being
// able to stop in the middle of a measurement, adjust the running width,
// and continue, is what Ruler is for.
//
// A zero Ruler is ready to use.
type Ruler struct {
	width int
}

// Measure pushes a rune onto the running tally and returns the new total.
func (r *Ruler) Measure(ch rune) int {
	r.width += runeWidth(ch)
	return r.width
}

// Width returns the width this ruler has measured so far.
func (r *Ruler) Width() int {
	return r.width
}

// runeWidth classifies a single rune per Unicode Standard Annex #11: zero
// width for combining marks and most control/format characters, two
// columns for wide/fullwidth East Asian characters, one column otherwise.
func runeWidth(ch rune) int {
	switch {
	case ch == 0:
		return 0
	case ch < 0x20 || ch == 0x7f:
		// C0 controls and DEL: callers that care about literal control
		// bytes in source text (e.g. a stray CR) should special-case
		// them before measuring.
		return 0
	case unicode.Is(unicode.Mn, ch), unicode.Is(unicode.Me, ch), unicode.Is(unicode.Cf, ch):
		// Nonspacing/enclosing marks and format characters attach to the
		// previous column without occupying one of their own.
		return 0
	case isEastAsianWide(ch):
		return 2
	default:
		return 1
	}
}

// isEastAsianWide reports whether ch falls in a block the Unicode East
// Asian Width property marks Wide (W) or Fullwidth (F). This is a
// deliberately coarse approximation of the full UAX #11 table, covering
// the ranges that appear in practice (CJK ideographs, kana, fullwidth
// forms, Hangul syllables).
func isEastAsianWide(ch rune) bool {
	switch {
	case ch >= 0x1100 && ch <= 0x115F, // Hangul Jamo
		ch >= 0x2E80 && ch <= 0xA4CF && ch != 0x303F, // CJK radicals..Yi
		ch >= 0xAC00 && ch <= 0xD7A3, // Hangul syllables
		ch >= 0xF900 && ch <= 0xFAFF, // CJK compatibility ideographs
		ch >= 0xFF00 && ch <= 0xFF60, // fullwidth forms
		ch >= 0xFFE0 && ch <= 0xFFE6,
		ch >= 0x20000 && ch <= 0x3FFFD: // CJK unified extensions, supplementary
		return true
	default:
		return false
	}
}
