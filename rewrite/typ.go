package rewrite

import (
	"strings"

	"github.com/shapewright/fmtcore/config"
)

// NormalizeType renders a type position's punctuation spacing per
// TypePunctuationDensity (spec.md §6): Wide puts a space on both sides
// of a trait-bound `+` or associated-type `=`; Compressed omits it. The
// parser hands the shaping engine type positions as already-lexed text
// (synast's minimal AST contract keeps full type grammar out of this
// core's tree, per its own doc comment), so this operates on the
// rendered string rather than a type sub-tree.
func NormalizeType(cfg config.Config, t string) string {
	sep := " "
	if cfg.TypePunctuationDensity == config.TypePunctuationCompressed {
		sep = ""
	}
	var b strings.Builder
	for i := 0; i < len(t); i++ {
		switch t[i] {
		case '+', '=':
			b.WriteString(sep)
			b.WriteByte(t[i])
			b.WriteString(sep)
		case ' ':
			if sep == "" && i > 0 && (t[i-1] == '+' || t[i-1] == '=') {
				continue
			}
			if sep == "" && i+1 < len(t) && (t[i+1] == '+' || t[i+1] == '=') {
				continue
			}
			b.WriteByte(' ')
		default:
			b.WriteByte(t[i])
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
