// Package identifier classifies runes and runs of text as identifier-like
// using the Unicode XID_Start / XID_Continue properties, the same test the
// retrieval pack's sqlcode scanner (github.com/smasher164/xid) uses to
// recognize identifiers in SQL source. The Trivia Extractor and the import
// path sorter both need a cheap, lexer-independent answer to
// "is this run of text an identifier?" without re-running the real
// (external) lexer, so this package gives them one.
package identifier

import "github.com/smasher164/xid"

// IsStart reports whether r can begin an identifier.
func IsStart(r rune) bool {
	return xid.Start(r) || r == '_'
}

// IsContinue reports whether r can continue an identifier begun with a
// rune for which IsStart returned true.
func IsContinue(r rune) bool {
	return xid.Continue(r) || r == '_'
}

// Is reports whether s is, in its entirety, a single valid identifier.
func Is(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !IsStart(r) {
				return false
			}
			continue
		}
		if !IsContinue(r) {
			return false
		}
	}
	return true
}

// CommonPrefixLen returns the length, in runes, of the longest run of
// leading whitespace shared by every line in lines. Used by the Trivia
// Extractor to find the "common indentation" of a block of line comments
// before normalizing it; the extractor separately checks (via IsStart and
// IsContinue, plus a look at the punctuation that follows) whether a
// line starts with an identifier followed by code punctuation, which
// would mean the comment block contains code-like text that should not
// be re-indented blindly.
func CommonPrefixLen(lines []string) int {
	if len(lines) == 0 {
		return 0
	}
	best := -1
	for _, line := range lines {
		n := 0
		for _, r := range line {
			if r != ' ' && r != '\t' {
				break
			}
			n++
		}
		if n == len(line) {
			// blank/whitespace-only line: does not constrain the common
			// prefix.
			continue
		}
		if best == -1 || n < best {
			best = n
		}
	}
	if best == -1 {
		return 0
	}
	return best
}
