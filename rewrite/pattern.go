package rewrite

import (
	"strings"

	"github.com/shapewright/fmtcore/config"
)

// NormalizePattern applies the one safe pattern-level rewrite spec.md
// names: condensing a run of trailing wildcard (`_`) tuple/tuple-struct
// sub-patterns to the rest pattern `..` when CondenseWildcardSuffixes is
// set (spec.md §6, glossary "Safe rewrite"). Like NormalizeType, this
// operates on the parser's pre-lexed pattern text rather than a pattern
// sub-tree (synast's minimal AST contract).
func NormalizePattern(cfg config.Config, p string) string {
	if !cfg.CondenseWildcardSuffixes {
		return p
	}
	open := strings.IndexByte(p, '(')
	shut := strings.LastIndexByte(p, ')')
	if open < 0 || shut <= open {
		return p
	}
	head, inner, tail := p[:open+1], p[open+1:shut], p[shut:]
	parts := strings.Split(inner, ",")
	for len(parts) > 1 && strings.TrimSpace(parts[len(parts)-1]) == "_" {
		parts = parts[:len(parts)-1]
	}
	if len(parts) == len(strings.Split(inner, ",")) {
		return p
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return head + strings.Join(parts, ", ") + ", .." + tail
}
