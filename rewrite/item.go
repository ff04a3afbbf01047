package rewrite

import (
	"sort"
	"strings"

	"github.com/shapewright/fmtcore/config"
	"github.com/shapewright/fmtcore/listfmt"
	"github.com/shapewright/fmtcore/report"
	"github.com/shapewright/fmtcore/shape"
	"github.com/shapewright/fmtcore/synast"
)

// Item dispatches on it's concrete type and renders it under s, per
// spec.md §4.5. Like Expr, this is one large type-switch over the
// closed ItemKind union rather than a dispatch registry (spec.md §9).
func Item(ctx *Context, s shape.Shape, it synast.Item) Result {
	if ctx.IsSkipped(it.NodeSpan()) {
		return Done(ctx.Verbatim(it.NodeSpan()))
	}
	switch n := it.(type) {
	case *synast.Fn:
		return fnItem(ctx, s, n)
	case *synast.Impl:
		return implItem(ctx, s, n)
	case *synast.Trait:
		return traitItem(ctx, s, n)
	case *synast.Struct:
		return structItem(ctx, s, n)
	case *synast.Enum:
		return enumItem(ctx, s, n)
	case *synast.TypeAlias:
		return typeAliasItem(ctx, s, n)
	case *synast.Use:
		return useItem(ctx, s, n)
	case *synast.ExternBlock:
		return externItem(ctx, s, n)
	case *synast.Mod:
		return modItem(ctx, s, n)
	case *synast.Const:
		return constItem(ctx, s, n)
	case *synast.Static:
		return staticItem(ctx, s, n)
	case *synast.MacroDef:
		return macroDefItem(ctx, s, n)
	default:
		return Fail(report.ReasonUnformattable)
	}
}

func attrsText(ctx *Context, attrs []synast.Attribute, ind string) string {
	var b strings.Builder
	for _, a := range attrs {
		if ctx.Config.NormalizeDocAttributes {
			if text, ok := docAttributeText(a); ok {
				b.WriteString(ind)
				b.WriteString("/// ")
				b.WriteString(text)
				b.WriteString("\n")
				continue
			}
		}
		b.WriteString(ind)
		b.WriteString("#[")
		b.WriteString(a.Path)
		if len(a.Args) > 0 {
			b.WriteString("(")
			b.WriteString(strings.Join(a.Args, ", "))
			b.WriteString(")")
		}
		b.WriteString("]\n")
	}
	return b.String()
}

// docAttributeText extracts the doc text out of a `#[doc = "..."]`
// attribute per NormalizeDocAttributes (spec.md §6), which rewrites it
// into an equivalent `///` line comment.
func docAttributeText(a synast.Attribute) (string, bool) {
	if a.Path != "doc" || len(a.Args) != 1 {
		return "", false
	}
	arg := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(a.Args[0]), "="))
	if len(arg) >= 2 && arg[0] == '"' && arg[len(arg)-1] == '"' {
		return arg[1 : len(arg)-1], true
	}
	return "", false
}

// colonSep renders the space pattern around a type-annotation ':' per
// SpaceBeforeColon/SpaceAfterColon (spec.md §6).
func colonSep(ctx *Context) string {
	sep := ""
	if ctx.Config.SpaceBeforeColon {
		sep += " "
	}
	sep += ":"
	if ctx.Config.SpaceAfterColon {
		sep += " "
	}
	return sep
}

// smallHeuristicsFits reports whether text may be tried as a compact,
// single-line rendering under UseSmallHeuristics (spec.md §4.4): Off
// disables every such heuristic outright (callers should always fall
// back to their multi-line form), Max widens the threshold by one
// indent level so compact forms win slightly more often, Default uses
// the plain Shape budget unchanged.
func smallHeuristicsFits(ctx *Context, s shape.Shape, text string) bool {
	switch ctx.Config.UseSmallHeuristics {
	case config.HeuristicsOff:
		return false
	case config.HeuristicsMax:
		return s.SubWidth(-int(ctx.Config.TabSpaces)).Fits(text, ctx.Config.TabSpaces)
	default:
		return s.Fits(text, ctx.Config.TabSpaces)
	}
}

func genericsText(generics []string) string {
	if len(generics) == 0 {
		return ""
	}
	return "<" + strings.Join(generics, ", ") + ">"
}

func whereText(ctx *Context, s shape.Shape, where []string) string {
	if len(where) == 0 {
		return ""
	}
	inline := " where " + strings.Join(where, ", ")
	if ctx.Config.WhereSingleLine && smallHeuristicsFits(ctx, s, inline) {
		return inline
	}
	inner := s.BlockIndent(ctx.Config.TabSpaces)
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(inner.Indent.String(ctx.Config.TabSpaces, ctx.Config.HardTabs))
	b.WriteString("where\n")
	for i, w := range where {
		b.WriteString(inner.Indent.String(ctx.Config.TabSpaces, ctx.Config.HardTabs))
		b.WriteString(w)
		if i < len(where)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// openBrace renders the " {" / "\n{" transition per BraceStyle and
// whether a where-clause pushed the signature onto multiple lines.
func openBrace(ctx *Context, multilineWhere bool) string {
	switch ctx.Config.BraceStyle {
	case config.BraceAlwaysNextLine:
		return "\n{"
	case config.BracePreferSameLine:
		return " {"
	default: // SameLineWhere
		if multilineWhere {
			return "{"
		}
		return " {"
	}
}

func fnItem(ctx *Context, s shape.Shape, n *synast.Fn) Result {
	var b strings.Builder
	b.WriteString(attrsText(ctx, n.Attributes, s.Indent.String(ctx.Config.TabSpaces, ctx.Config.HardTabs)))
	b.WriteString(s.Indent.String(ctx.Config.TabSpaces, ctx.Config.HardTabs))
	b.WriteString("fn ")
	b.WriteString(n.Name)
	b.WriteString(genericsText(n.Generics))

	items := make([]listfmt.Item, len(n.Params))
	for i, p := range n.Params {
		items[i] = listfmt.Item{Text: p.Name + colonSep(ctx) + NormalizeType(ctx.Config, p.Type)}
	}
	tactic := listfmt.HorizontalVertical
	if ctx.Config.FnArgsDensity == config.FnArgsVertical {
		tactic = listfmt.Vertical
	} else if ctx.Config.FnArgsDensity == config.FnArgsCompressed {
		tactic = listfmt.Mixed
	}
	p := listfmt.DefaultCallArgs(trailingCommaFor(ctx.Config.TrailingComma))
	p.Tactic = tactic
	argsOut, _ := listfmt.Format(s, items, p)
	b.WriteString(argsOut)

	if n.ReturnType != "" {
		b.WriteString(" -> ")
		b.WriteString(NormalizeType(ctx.Config, n.ReturnType))
	}

	whereOut := whereText(ctx, s, n.Where)
	b.WriteString(whereOut)

	if n.Body == nil {
		b.WriteString(";")
		return Done(b.String())
	}
	if ctx.Config.FnSingleLine {
		if single, ok := trySingleLineBlock(ctx, s, n.Body); ok {
			b.WriteString(" ")
			b.WriteString(single)
			return Done(b.String())
		}
	}
	brace := openBrace(ctx, strings.Contains(whereOut, "\n"))
	b.WriteString(strings.TrimSuffix(brace, "{"))
	body := BlockExpr(ctx, s, n.Body)
	b.WriteString(body.Text)
	return Done(b.String())
}

// trySingleLineBlock renders n on one line ("{ tail }") per
// FnSingleLine (spec.md §6), when it holds nothing but a single tail
// expression that itself renders without a newline and the whole thing
// fits s under UseSmallHeuristics.
func trySingleLineBlock(ctx *Context, s shape.Shape, n *synast.Block) (string, bool) {
	if !smallHeuristicsEnabled(ctx) || n == nil || len(n.Stmts) > 0 {
		return "", false
	}
	if n.Tail == nil {
		return "{}", true
	}
	tail := Expr(ctx, s, n.Tail)
	if strings.Contains(tail.Text, "\n") {
		return "", false
	}
	text := "{ " + tail.Text + " }"
	if !smallHeuristicsFits(ctx, s, text) {
		return "", false
	}
	return text, true
}

func smallHeuristicsEnabled(ctx *Context) bool {
	return ctx.Config.UseSmallHeuristics != config.HeuristicsOff
}

func implMembersText(ctx *Context, s shape.Shape, members []synast.ImplMember) string {
	ordered := members
	if ctx.Config.ReorderImplItems {
		ordered = make([]synast.ImplMember, len(members))
		copy(ordered, members)
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].Kind < ordered[j].Kind
		})
	}
	inner := s.BlockIndent(ctx.Config.TabSpaces)
	var b strings.Builder
	for _, m := range ordered {
		if m.Fn != nil {
			r := fnItem(ctx, inner, m.Fn)
			b.WriteString(r.Text)
		} else {
			b.WriteString(inner.Indent.String(ctx.Config.TabSpaces, ctx.Config.HardTabs))
			b.WriteString(m.Text)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func implItem(ctx *Context, s shape.Shape, n *synast.Impl) Result {
	var b strings.Builder
	b.WriteString(attrsText(ctx, n.Attributes, ""))
	b.WriteString("impl")
	b.WriteString(genericsText(n.Generics))
	b.WriteString(" ")
	if n.TraitPath != "" {
		b.WriteString(n.TraitPath)
		b.WriteString(" for ")
	}
	b.WriteString(n.TypePath)
	whereOut := whereText(ctx, s, n.Where)
	b.WriteString(whereOut)
	b.WriteString(openBrace(ctx, strings.Contains(whereOut, "\n")))
	b.WriteString("\n")
	b.WriteString(implMembersText(ctx, s, n.Members))
	b.WriteString(s.Indent.String(ctx.Config.TabSpaces, ctx.Config.HardTabs))
	b.WriteString("}")
	return Done(b.String())
}

func traitItem(ctx *Context, s shape.Shape, n *synast.Trait) Result {
	var b strings.Builder
	b.WriteString(attrsText(ctx, n.Attributes, ""))
	b.WriteString("trait ")
	b.WriteString(n.Name)
	b.WriteString(genericsText(n.Generics))
	whereOut := whereText(ctx, s, n.Where)
	b.WriteString(whereOut)
	b.WriteString(openBrace(ctx, strings.Contains(whereOut, "\n")))
	b.WriteString("\n")
	b.WriteString(implMembersText(ctx, s, n.Members))
	b.WriteString(s.Indent.String(ctx.Config.TabSpaces, ctx.Config.HardTabs))
	b.WriteString("}")
	return Done(b.String())
}

func structItem(ctx *Context, s shape.Shape, n *synast.Struct) Result {
	var b strings.Builder
	b.WriteString(attrsText(ctx, n.Attributes, ""))
	b.WriteString("struct ")
	b.WriteString(n.Name)
	b.WriteString(genericsText(n.Generics))

	if n.Unit {
		b.WriteString(whereText(ctx, s, n.Where))
		b.WriteString(";")
		return Done(b.String())
	}

	if n.Tuple {
		items := make([]listfmt.Item, len(n.Fields))
		for i, f := range n.Fields {
			items[i] = listfmt.Item{Text: NormalizeType(ctx.Config, f.Type)}
		}
		p := listfmt.DefaultCallArgs(trailingCommaFor(ctx.Config.TrailingComma))
		out, _ := listfmt.Format(s, items, p)
		b.WriteString(out)
		b.WriteString(whereText(ctx, s, n.Where))
		b.WriteString(";")
		return Done(b.String())
	}

	whereOut := whereText(ctx, s, n.Where)
	b.WriteString(whereOut)
	fieldWidth := alignedFieldWidth(ctx, n.Fields)
	items := make([]listfmt.Item, len(n.Fields))
	for i, f := range n.Fields {
		name := f.Name
		if fieldWidth > 0 && uint32(len(f.Name)) <= ctx.Config.StructFieldAlignThreshold {
			name += strings.Repeat(" ", fieldWidth-len(f.Name))
		}
		text := name + colonSep(ctx) + NormalizeType(ctx.Config, f.Type)
		if len(f.Attributes) > 0 {
			text = strings.TrimSuffix(attrsText(ctx, f.Attributes, ""), "\n") + "\n" + text
		}
		items[i] = listfmt.Item{Text: text}
	}
	p := listfmt.DefaultBraceGroup(trailingCommaFor(ctx.Config.TrailingComma))
	out, _ := listfmt.Format(s, items, p)
	b.WriteString(" ")
	b.WriteString(out)
	return Done(b.String())
}

// alignedFieldWidth computes the common column field names should line
// up at, for fields within StructFieldAlignThreshold (spec.md §4.5),
// mirroring alignedDiscrimWidth's treatment of enum discriminants.
func alignedFieldWidth(ctx *Context, fields []synast.Field) int {
	if ctx.Config.StructFieldAlignThreshold == 0 {
		return 0
	}
	maxW := 0
	for _, f := range fields {
		if uint32(len(f.Name)) > ctx.Config.StructFieldAlignThreshold {
			continue
		}
		if len(f.Name) > maxW {
			maxW = len(f.Name)
		}
	}
	return maxW
}

func enumItem(ctx *Context, s shape.Shape, n *synast.Enum) Result {
	var b strings.Builder
	b.WriteString(attrsText(ctx, n.Attributes, ""))
	b.WriteString("enum ")
	b.WriteString(n.Name)
	b.WriteString(genericsText(n.Generics))
	whereOut := whereText(ctx, s, n.Where)
	b.WriteString(whereOut)
	b.WriteString(openBrace(ctx, strings.Contains(whereOut, "\n")))
	b.WriteString("\n")

	inner := s.BlockIndent(ctx.Config.TabSpaces)
	discrimWidth := alignedDiscrimWidth(ctx, n.Variants)
	for _, v := range n.Variants {
		b.WriteString(attrsText(ctx, v.Attributes, inner.Indent.String(ctx.Config.TabSpaces, ctx.Config.HardTabs)))
		b.WriteString(inner.Indent.String(ctx.Config.TabSpaces, ctx.Config.HardTabs))
		name := v.Name
		if len(v.Fields) > 0 {
			items := make([]listfmt.Item, len(v.Fields))
			for i, f := range v.Fields {
				items[i] = listfmt.Item{Text: f.Name + colonSep(ctx) + NormalizeType(ctx.Config, f.Type)}
			}
			out, _ := listfmt.Format(inner, items, listfmt.DefaultBraceGroup(trailingCommaFor(ctx.Config.TrailingComma)))
			name += " " + out
		} else if len(v.Tuple) > 0 {
			items := make([]listfmt.Item, len(v.Tuple))
			for i, t := range v.Tuple {
				items[i] = listfmt.Item{Text: NormalizeType(ctx.Config, t)}
			}
			out, _ := listfmt.Format(inner, items, listfmt.DefaultCallArgs(trailingCommaFor(ctx.Config.TrailingComma)))
			name += out
		}
		if v.Discriminant != "" {
			if discrimWidth > len(name) {
				name += strings.Repeat(" ", discrimWidth-len(name))
			}
			name += " = " + v.Discriminant
		}
		b.WriteString(name)
		b.WriteString(",\n")
	}
	b.WriteString(s.Indent.String(ctx.Config.TabSpaces, ctx.Config.HardTabs))
	b.WriteString("}")
	return Done(b.String())
}

// alignedDiscrimWidth computes the common column discriminants should
// line up at, for variants whose name is within
// EnumDiscrimAlignThreshold (spec.md §4.5).
func alignedDiscrimWidth(ctx *Context, variants []synast.EnumVariant) int {
	if ctx.Config.EnumDiscrimAlignThreshold == 0 {
		return 0
	}
	maxW := 0
	for _, v := range variants {
		if v.Discriminant == "" {
			continue
		}
		if uint32(len(v.Name)) > ctx.Config.EnumDiscrimAlignThreshold {
			continue
		}
		if len(v.Name) > maxW {
			maxW = len(v.Name)
		}
	}
	return maxW
}

func typeAliasItem(ctx *Context, s shape.Shape, n *synast.TypeAlias) Result {
	var b strings.Builder
	b.WriteString(attrsText(ctx, n.Attributes, ""))
	b.WriteString("type ")
	b.WriteString(n.Name)
	b.WriteString(genericsText(n.Generics))
	b.WriteString(" = ")
	b.WriteString(NormalizeType(ctx.Config, n.Target))
	b.WriteString(";")
	return Done(b.String())
}

func useItem(ctx *Context, s shape.Shape, n *synast.Use) Result {
	var b strings.Builder
	b.WriteString("use ")
	if len(n.Segments) > 0 {
		b.WriteString(strings.Join(n.Segments, "::"))
		b.WriteString("::")
	}
	switch {
	case len(n.Leaves) == 1:
		b.WriteString(n.Leaves[0])
	case len(n.Leaves) > 1:
		leaves := append([]string(nil), n.Leaves...)
		if ctx.Config.ReorderImports {
			sort.SliceStable(leaves, func(i, j int) bool {
				ni, nj := normalizeSegment(leaves[i]), normalizeSegment(leaves[j])
				if ni != nj {
					return ni < nj
				}
				return leaves[i] < leaves[j]
			})
		}
		items := make([]listfmt.Item, len(leaves))
		for i, l := range leaves {
			items[i] = listfmt.Item{Text: l}
		}
		p := listfmt.DefaultBraceGroup(listfmt.Never)
		p.Tactic = importTactic(ctx.Config.ImportsLayout)
		// ImportsIndent (spec.md §6): Visual aligns wrapped leaves under
		// the group's opening brace, mirroring Chain's own Visual
		// handling; Block indents them one level past the use item.
		itemsShape := s.BlockIndent(ctx.Config.TabSpaces)
		if ctx.Config.ImportsIndent == config.IndentVisual {
			itemsShape = s.VisualIndent(uint32(b.Len() + 1))
		}
		out, _ := listfmt.Format(itemsShape, items, p)
		b.WriteString(out)
	}
	if n.Alias != "" {
		b.WriteString(" as ")
		b.WriteString(n.Alias)
	}
	b.WriteString(";")
	return Done(b.String())
}

func importTactic(l config.ImportLayout) listfmt.Tactic {
	switch l {
	case config.ImportHorizontal:
		return listfmt.Horizontal
	case config.ImportHorizontalVertical:
		return listfmt.HorizontalVertical
	case config.ImportVertical:
		return listfmt.Vertical
	default:
		return listfmt.Mixed
	}
}

// MergeUseGroup merges a run of Use items sharing a common path prefix
// into one Use with multiple leaves (spec.md §4.5 "Import merging"),
// called from GroupImports once it has bucketed a contiguous run of Use
// units by shared prefix, only when MergeImports is set.
func MergeUseGroup(uses []*synast.Use) *synast.Use {
	if len(uses) == 0 {
		return nil
	}
	merged := &synast.Use{Segments: uses[0].Segments}
	for _, u := range uses {
		if len(u.Leaves) == 0 {
			merged.Leaves = append(merged.Leaves, "")
			continue
		}
		merged.Leaves = append(merged.Leaves, u.Leaves...)
	}
	return merged
}

func externItem(ctx *Context, s shape.Shape, n *synast.ExternBlock) Result {
	var b strings.Builder
	b.WriteString("extern")
	abi := n.ABI
	if abi == "" && ctx.Config.ForceExplicitABI {
		abi = "C"
	}
	if abi != "" {
		b.WriteString(" \"")
		b.WriteString(abi)
		b.WriteString("\"")
	}
	b.WriteString(" {\n")
	b.WriteString(implMembersText(ctx, s, n.Members))
	b.WriteString(s.Indent.String(ctx.Config.TabSpaces, ctx.Config.HardTabs))
	b.WriteString("}")
	return Done(b.String())
}

func modItem(ctx *Context, s shape.Shape, n *synast.Mod) Result {
	if n.Items == nil {
		return Done("mod " + n.Name + ";")
	}
	inner := s.BlockIndent(ctx.Config.TabSpaces)
	var b strings.Builder
	b.WriteString("mod ")
	b.WriteString(n.Name)
	b.WriteString(" {\n")
	for _, it := range n.Items {
		b.WriteString(inner.Indent.String(ctx.Config.TabSpaces, ctx.Config.HardTabs))
		if ctx.Config.SkipChildren {
			// SkipChildren (spec.md §6): leave this module's direct
			// children exactly as they appear in source instead of
			// recursing the rewriter into them.
			b.WriteString(ctx.Verbatim(it.NodeSpan()))
		} else {
			r := Item(ctx, inner, it)
			b.WriteString(r.Text)
		}
		b.WriteString("\n")
	}
	b.WriteString(s.Indent.String(ctx.Config.TabSpaces, ctx.Config.HardTabs))
	b.WriteString("}")
	return Done(b.String())
}

func constItem(ctx *Context, s shape.Shape, n *synast.Const) Result {
	val := Expr(ctx, s, n.Value)
	return Done("const " + n.Name + colonSep(ctx) + NormalizeType(ctx.Config, n.Type) + " = " + val.Text + ";")
}

func staticItem(ctx *Context, s shape.Shape, n *synast.Static) Result {
	mut := ""
	if n.Mut {
		mut = "mut "
	}
	val := Expr(ctx, s, n.Value)
	return Done("static " + mut + n.Name + colonSep(ctx) + NormalizeType(ctx.Config, n.Type) + " = " + val.Text + ";")
}

func macroDefItem(ctx *Context, s shape.Shape, n *synast.MacroDef) Result {
	var b strings.Builder
	b.WriteString("macro_rules! ")
	b.WriteString(n.Name)
	b.WriteString(" {\n")
	inner := s.BlockIndent(ctx.Config.TabSpaces)
	for _, r := range n.Rules {
		matcher := r.Matcher
		body := r.Body
		if ctx.Config.FormatMacroMatchers {
			matcher = canonicalizeMatcher(matcher)
		}
		if ctx.Config.FormatMacroBodies {
			body = reindentMacroBody(ctx, inner, body)
		}
		b.WriteString(inner.Indent.String(ctx.Config.TabSpaces, ctx.Config.HardTabs))
		b.WriteString("(")
		b.WriteString(matcher)
		b.WriteString(") => {")
		b.WriteString(body)
		b.WriteString("};\n")
	}
	b.WriteString(s.Indent.String(ctx.Config.TabSpaces, ctx.Config.HardTabs))
	b.WriteString("}")
	return Done(b.String())
}

// reindentMacroBody re-flows a macro rule's opaque body text onto the
// rule's own indent level per FormatMacroBodies (spec.md §6): trailing
// whitespace is trimmed from every physical line and each non-blank
// line is reindented one level past the rule. synast hands macro bodies
// over as raw already-lexed text (the same minimal-AST contract
// NormalizeType's doc comment describes for type positions), so full
// token-level reformatting would need a macro-body parser this core
// does not carry.
func reindentMacroBody(ctx *Context, s shape.Shape, body string) string {
	lines := strings.Split(body, "\n")
	if len(lines) <= 1 {
		return strings.TrimRight(body, " \t")
	}
	bodyInner := s.BlockIndent(ctx.Config.TabSpaces)
	ind := bodyInner.Indent.String(ctx.Config.TabSpaces, ctx.Config.HardTabs)
	for i, l := range lines {
		trimmed := strings.TrimSpace(l)
		if i == 0 || trimmed == "" {
			lines[i] = trimmed
			continue
		}
		lines[i] = ind + trimmed
	}
	return strings.Join(lines, "\n")
}

func canonicalizeMatcher(m string) string {
	fields := strings.Fields(m)
	return strings.Join(fields, " ")
}
