package rewrite

import (
	"sort"
	"strings"

	"github.com/shapewright/fmtcore/config"
	"github.com/shapewright/fmtcore/internal/identifier"
	"github.com/shapewright/fmtcore/synast"
	"github.com/shapewright/fmtcore/trivia"
)

// RenderUnit pairs an item with the span and leading trivia the
// assembler recovered for it at its original source position. Grouping
// passes (GroupImports, GroupModules) permute slices of RenderUnit
// rather than bare items, so that a reordered or merged item still
// carries its own leading comments and blank-line count with it instead
// of inheriting whatever happened to precede its new position.
type RenderUnit struct {
	Item   synast.Item
	Span   synast.Span
	Trivia trivia.Trivia
}

// pathLess orders two `::`-joined import/module paths segment by
// segment (spec.md §4.5's "sorted within a group"). Each segment is
// compared as a plain identifier when it classifies as one per
// identifier.Is (after stripping a raw-identifier `r#` escape), the
// same XID_Start/XID_Continue test the retrieval pack's sqlcode scanner
// uses, so that `r#type` sorts where `type` would rather than where a
// literal `r#` prefix would; a segment that isn't a valid identifier
// this way (generic arguments, turbofish, etc.) falls back to a plain
// byte comparison.
func pathLess(a, b []string) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] == b[i] {
			continue
		}
		na, nb := normalizeSegment(a[i]), normalizeSegment(b[i])
		if na != nb {
			return na < nb
		}
		return a[i] < b[i]
	}
	return len(a) < len(b)
}

func normalizeSegment(s string) string {
	trimmed := strings.TrimPrefix(s, "r#")
	if identifier.Is(trimmed) {
		return trimmed
	}
	return s
}

// GroupImports gathers each contiguous run of *synast.Use units in
// units and, per MergeImports/ReorderImports (spec.md §4.5 "Import
// merging" and "sorted within a group"), merges same-prefix uses into
// one and/or sorts the run. A run only ever spans consecutive Use
// units — any other item interrupts it, matching "within a group".
func GroupImports(cfg config.Config, units []RenderUnit) []RenderUnit {
	if !cfg.MergeImports && !cfg.ReorderImports {
		return units
	}
	out := make([]RenderUnit, 0, len(units))
	for i := 0; i < len(units); {
		if _, ok := units[i].Item.(*synast.Use); !ok {
			out = append(out, units[i])
			i++
			continue
		}
		j := i + 1
		for j < len(units) {
			if _, ok := units[j].Item.(*synast.Use); !ok {
				break
			}
			j++
		}
		out = append(out, groupImportRun(cfg, units[i:j])...)
		i = j
	}
	return out
}

type importGroup struct {
	sortKey []string
	uses    []*synast.Use
	first   RenderUnit
}

func groupImportRun(cfg config.Config, run []RenderUnit) []RenderUnit {
	if !cfg.MergeImports {
		if !cfg.ReorderImports {
			return run
		}
		out := append([]RenderUnit(nil), run...)
		sort.SliceStable(out, func(i, j int) bool {
			return pathLess(importSortKey(out[i].Item.(*synast.Use)), importSortKey(out[j].Item.(*synast.Use)))
		})
		return out
	}

	// bucketKey groups uses sharing both a path prefix and aliasing
	// status: an aliased use (`use a::b as c;`) keeps its own alias,
	// which this AST has no per-leaf slot for, so it is never folded
	// into a brace group with other uses — it only ever groups with
	// another use under the exact same alias.
	var groups []*importGroup
	byKey := map[string]*importGroup{}
	for _, u := range run {
		use := u.Item.(*synast.Use)
		key := strings.Join(use.Segments, "::")
		if use.Alias != "" {
			key += "\x00alias:" + use.Alias
		}
		g, ok := byKey[key]
		if !ok {
			g = &importGroup{sortKey: importSortKey(use), first: u}
			byKey[key] = g
			groups = append(groups, g)
		}
		g.uses = append(g.uses, use)
	}
	if cfg.ReorderImports {
		sort.SliceStable(groups, func(i, j int) bool {
			return pathLess(groups[i].sortKey, groups[j].sortKey)
		})
	}
	out := make([]RenderUnit, len(groups))
	for i, g := range groups {
		merged := MergeUseGroup(g.uses)
		merged.Span = g.first.Span
		if cfg.ReorderImports {
			sort.SliceStable(merged.Leaves, func(a, b int) bool {
				na, nb := normalizeSegment(merged.Leaves[a]), normalizeSegment(merged.Leaves[b])
				if na != nb {
					return na < nb
				}
				return merged.Leaves[a] < merged.Leaves[b]
			})
		}
		if g.uses[0].Alias != "" {
			merged.Alias = g.uses[0].Alias
		}
		out[i] = RenderUnit{Item: merged, Span: merged.Span, Trivia: g.first.Trivia}
	}
	return out
}

func importSortKey(u *synast.Use) []string {
	key := append([]string(nil), u.Segments...)
	if len(u.Leaves) > 0 {
		key = append(key, u.Leaves[0])
	}
	if u.Alias != "" {
		key = append(key, "as", u.Alias)
	}
	return key
}

// GroupModules gathers each contiguous run of *synast.Mod units in
// units and sorts it per ReorderModules (spec.md §4.5 "Module
// declarations are similarly sorted within a group"), except that a
// module carrying a macro_export-semantic attribute is a reordering
// barrier: it stays exactly where it is and splits the surrounding run
// into two independently sorted runs, since macro export order can be
// load-bearing for macro_rules! name resolution.
func GroupModules(cfg config.Config, units []RenderUnit) []RenderUnit {
	if !cfg.ReorderModules {
		return units
	}
	out := make([]RenderUnit, 0, len(units))
	for i := 0; i < len(units); {
		m, ok := units[i].Item.(*synast.Mod)
		if !ok || isMacroExportBarrier(m) {
			out = append(out, units[i])
			i++
			continue
		}
		j := i + 1
		for j < len(units) {
			nm, ok := units[j].Item.(*synast.Mod)
			if !ok || isMacroExportBarrier(nm) {
				break
			}
			j++
		}
		run := append([]RenderUnit(nil), units[i:j]...)
		sort.SliceStable(run, func(a, b int) bool {
			na := run[a].Item.(*synast.Mod).Name
			nb := run[b].Item.(*synast.Mod).Name
			sa, sb := normalizeSegment(na), normalizeSegment(nb)
			if sa != sb {
				return sa < sb
			}
			return na < nb
		})
		out = append(out, run...)
		i = j
	}
	return out
}

func isMacroExportBarrier(m *synast.Mod) bool {
	for _, a := range m.Attrs() {
		if a.IsMacroExport() {
			return true
		}
	}
	return false
}
