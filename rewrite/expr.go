package rewrite

import (
	"strings"

	"github.com/shapewright/fmtcore/config"
	"github.com/shapewright/fmtcore/listfmt"
	"github.com/shapewright/fmtcore/report"
	"github.com/shapewright/fmtcore/shape"
	"github.com/shapewright/fmtcore/synast"
)

// Expr dispatches on e's concrete type and renders it under s, per
// spec.md §4.4. This is the single large type-switch spec.md §9 asks
// for in place of a virtual-dispatch registry.
func Expr(ctx *Context, s shape.Shape, e synast.Expr) Result {
	switch n := e.(type) {
	case *synast.Literal:
		return literal(ctx, s, n)
	case *synast.Path:
		return path(ctx, s, n)
	case *synast.Binary:
		return binary(ctx, s, n)
	case *synast.Unary:
		return unary(ctx, s, n)
	case *synast.Call:
		return call(ctx, s, n)
	case *synast.MethodCall:
		return Chain(ctx, s, n)
	case *synast.If:
		return ifExpr(ctx, s, n)
	case *synast.While:
		return whileExpr(ctx, s, n)
	case *synast.Loop:
		return loopExpr(ctx, s, n)
	case *synast.For:
		return forExpr(ctx, s, n)
	case *synast.Match:
		return matchExpr(ctx, s, n)
	case *synast.Block:
		return BlockExpr(ctx, s, n)
	case *synast.Closure:
		return closure(ctx, s, n)
	case *synast.Tuple:
		return tuple(ctx, s, n)
	case *synast.Array:
		return array(ctx, s, n)
	case *synast.StructLit:
		return structLit(ctx, s, n)
	case *synast.Range:
		return rangeExpr(ctx, s, n)
	case *synast.Cast:
		return castExpr(ctx, s, n)
	case *synast.Assign:
		return assignExpr(ctx, s, n)
	case *synast.MacroCall:
		return Macro(ctx, s, n)
	case *synast.Try:
		return tryExpr(ctx, s, n)
	case *synast.Return:
		return returnExpr(ctx, s, n)
	case *synast.Break:
		return breakExpr(ctx, s, n)
	case *synast.Continue:
		return Result{Text: continueText(n), Ok: true}
	case *synast.Paren:
		return parenExpr(ctx, s, n)
	default:
		return Fail(report.ReasonUnformattable)
	}
}

func literal(ctx *Context, s shape.Shape, n *synast.Literal) Result {
	text := n.Text
	if ctx.Config.FormatStrings {
		text = normalizeStringLiteral(text)
	}
	if !s.Fits(text, ctx.Config.TabSpaces) {
		return Result{Text: text, Ok: true, Reason: report.ReasonWidthExceeded}
	}
	return Done(text)
}

// normalizeStringLiteral lowercases hex/unicode escape digits in a
// plain (non-raw) string literal per FormatStrings (spec.md §6), so
// `"\xAB\u{1F600}"` renders as `"\xab\u{1f600}"`. Raw strings (`r"..."`,
// `r#"..."#`) and non-string literals pass through untouched.
func normalizeStringLiteral(text string) string {
	if len(text) < 2 || text[0] != '"' || text[len(text)-1] != '"' {
		return text
	}
	body := text[1 : len(text)-1]
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' || i+1 >= len(body) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte(c)
		i++
		b.WriteByte(body[i])
		switch body[i] {
		case 'x':
			for j := 0; j < 2 && i+1 < len(body) && isHexDigit(body[i+1]); j++ {
				i++
				b.WriteByte(lowerHexDigit(body[i]))
			}
		case 'u':
			if i+1 < len(body) && body[i+1] == '{' {
				i++
				b.WriteByte('{')
				for i+1 < len(body) && body[i+1] != '}' {
					i++
					b.WriteByte(lowerHexDigit(body[i]))
				}
				if i+1 < len(body) {
					i++
					b.WriteByte('}')
				}
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func lowerHexDigit(c byte) byte {
	if c >= 'A' && c <= 'F' {
		return c - 'A' + 'a'
	}
	return c
}

func path(ctx *Context, s shape.Shape, n *synast.Path) Result {
	text := strings.Join(n.Segments, "::")
	if !s.Fits(text, ctx.Config.TabSpaces) {
		return Result{Text: text, Ok: true, Reason: report.ReasonWidthExceeded}
	}
	return Done(text)
}

// binary renders a flattened same-precedence operand chain (spec.md
// §4.4 "Binary expressions"), trying a single line first and falling
// back to one operand per line with the operator placed per
// BinopSeparator.
func binary(ctx *Context, s shape.Shape, n *synast.Binary) Result {
	rendered := make([]string, len(n.Operands))
	for i, op := range n.Operands {
		r := Expr(ctx, s, op)
		rendered[i] = r.Text
	}

	inline := strings.Join(rendered, " "+n.Op+" ")
	if s.Fits(inline, ctx.Config.TabSpaces) {
		return Done(inline)
	}

	inner := s.BlockIndent(ctx.Config.TabSpaces)
	var b strings.Builder
	for i, r := range rendered {
		if i == 0 {
			b.WriteString(r)
			continue
		}
		switch ctx.Config.BinopSeparator {
		case config.BinopFront:
			b.WriteString("\n")
			b.WriteString(inner.Indent.String(ctx.Config.TabSpaces, ctx.Config.HardTabs))
			b.WriteString(n.Op)
			b.WriteString(" ")
			b.WriteString(r)
		default: // BinopBack
			b.WriteString(" ")
			b.WriteString(n.Op)
			b.WriteString("\n")
			b.WriteString(inner.Indent.String(ctx.Config.TabSpaces, ctx.Config.HardTabs))
			b.WriteString(r)
		}
	}
	return Done(b.String())
}

func unary(ctx *Context, s shape.Shape, n *synast.Unary) Result {
	operand := Expr(ctx, s.SubWidth(len(n.Op)), n.Operand)
	return Done(n.Op + operand.Text)
}

func call(ctx *Context, s shape.Shape, n *synast.Call) Result {
	target := Expr(ctx, s, n.Target)
	inner := s.SubWidth(len(target.Text))

	// CombineControlExpr (spec.md §4.4 "if/match as sole call arg
	// inline"): a call whose only argument is itself an if/match
	// expression is rendered with the argument's own block braces
	// directly inside the parens, never wrapped through the list
	// formatter's own tactics.
	if ctx.Config.CombineControlExpr && len(n.Args) == 1 && isControlExpr(n.Args[0]) {
		arg := Expr(ctx, inner.SubWidth(1), n.Args[0])
		return Done(target.Text + "(" + arg.Text + ")")
	}

	if ctx.Config.OverflowDelimitedExpr && len(n.Args) > 0 && isBlockLike(n.Args[len(n.Args)-1]) {
		if out, ok := tryOverflowLastArg(ctx, inner, n.Args); ok {
			return Done(target.Text + out)
		}
	}

	argsShape := inner.BlockIndent(ctx.Config.TabSpaces)
	items := renderExprList(ctx, argsShape, n.Args)
	p := listfmt.DefaultCallArgs(trailingCommaFor(ctx.Config.TrailingComma))
	out, _ := listfmt.Format(inner, items, p)
	return Done(target.Text + out)
}

func isControlExpr(e synast.Expr) bool {
	switch e.ExprKind() {
	case synast.ExprIf, synast.ExprMatch:
		return true
	}
	return false
}

func isBlockLike(e synast.Expr) bool {
	switch e.ExprKind() {
	case synast.ExprClosure, synast.ExprStructLit, synast.ExprArray, synast.ExprBlock:
		return true
	}
	return false
}

// tryOverflowLastArg renders a call whose final argument is block-like
// (a closure, struct literal, array, or block) by letting that
// argument's own natural rendering run past the call's width budget
// instead of forcing every argument onto its own line, per
// OverflowDelimitedExpr (spec.md §4.4 "Overflow rule"). It only applies
// when every earlier argument still fits on the opening line.
func tryOverflowLastArg(ctx *Context, s shape.Shape, args []synast.Expr) (string, bool) {
	head := args[:len(args)-1]
	last := args[len(args)-1]

	headTexts := make([]string, len(head))
	used := 0
	for i, a := range head {
		r := Expr(ctx, s, a)
		if strings.Contains(r.Text, "\n") {
			return "", false
		}
		headTexts[i] = r.Text
		used += len(r.Text) + len(", ")
	}
	lastShape := s.SubWidth(used)
	lastResult := Expr(ctx, lastShape, last)
	firstLine := lastResult.Text
	if i := strings.Index(firstLine, "\n"); i >= 0 {
		firstLine = firstLine[:i]
	}
	if !lastShape.Fits(firstLine, ctx.Config.TabSpaces) {
		return "", false
	}

	var b strings.Builder
	b.WriteString("(")
	for _, t := range headTexts {
		b.WriteString(t)
		b.WriteString(", ")
	}
	b.WriteString(lastResult.Text)
	b.WriteString(")")
	return b.String(), true
}

// Chain renders a receiver.method().method() chain (spec.md §4.6),
// trying single-line first; when that does not fit, it uses visual
// alignment if IndentStyle is Visual and block indent otherwise.
func Chain(ctx *Context, s shape.Shape, n *synast.MethodCall) Result {
	segments := flattenChain(n)
	receiver := Expr(ctx, s, segments[0].Receiver)

	var inline strings.Builder
	inline.WriteString(receiver.Text)
	for _, seg := range segments {
		inline.WriteString(segmentText(ctx, s, seg, false))
	}
	if s.Fits(inline.String(), ctx.Config.TabSpaces) {
		return Done(inline.String())
	}

	if ctx.Config.IndentStyle == config.IndentVisual {
		col := uint32(len(receiver.Text))
		inner := s.VisualIndent(col)
		var b strings.Builder
		b.WriteString(receiver.Text)
		for i, seg := range segments {
			if i > 0 {
				b.WriteString("\n")
				b.WriteString(inner.Indent.String(ctx.Config.TabSpaces, ctx.Config.HardTabs))
			}
			b.WriteString(segmentText(ctx, inner, seg, false))
		}
		return Done(b.String())
	}

	inner := s.BlockIndent(ctx.Config.TabSpaces)
	var b strings.Builder
	b.WriteString(receiver.Text)
	for _, seg := range segments {
		b.WriteString("\n")
		b.WriteString(inner.Indent.String(ctx.Config.TabSpaces, ctx.Config.HardTabs))
		b.WriteString(segmentText(ctx, inner, seg, true))
	}
	return Done(b.String())
}

// flattenChain walks a right-leaning tree of MethodCall receivers into a
// flat left-to-right slice of segments, the shape the chain rewriter
// operates on (spec.md §4.6).
func flattenChain(n *synast.MethodCall) []*synast.MethodCall {
	var segs []*synast.MethodCall
	var collect func(m *synast.MethodCall)
	collect = func(m *synast.MethodCall) {
		if recv, ok := m.Receiver.(*synast.MethodCall); ok {
			collect(recv)
		}
		segs = append(segs, m)
	}
	collect(n)
	return segs
}

func segmentText(ctx *Context, s shape.Shape, seg *synast.MethodCall, _ bool) string {
	var b strings.Builder
	b.WriteString(".")
	if seg.Field {
		b.WriteString(seg.Method)
		return b.String()
	}
	b.WriteString(seg.Method)
	items := renderExprList(ctx, s, seg.Args)
	p := listfmt.DefaultCallArgs(trailingCommaFor(ctx.Config.TrailingComma))
	out, _ := listfmt.Format(s, items, p)
	b.WriteString(out)
	return b.String()
}

// controlBraceOpen renders the transition from a control-flow header
// (e.g. "if cond", "while let x = y") into its block body per
// ControlBraceStyle (spec.md §6): AlwaysNextLine pushes the opening
// brace onto its own line at s's indent; every other style keeps it on
// the header's line.
func controlBraceOpen(ctx *Context, s shape.Shape, header string, block Result) string {
	if ctx.Config.ControlBraceStyle == config.ControlBraceAlwaysNextLine {
		return header + "\n" + s.Indent.String(ctx.Config.TabSpaces, ctx.Config.HardTabs) + block.Text
	}
	return header + " " + block.Text
}

// controlBraceElse renders the transition from a branch's closing brace
// into a following "else"/"else if" per ControlBraceStyle:
// ClosingNextLine puts it on its own line, matching the closing brace's
// indent; the other styles keep it on the same line as the brace.
func controlBraceElse(ctx *Context, s shape.Shape, prevBranch string) string {
	if ctx.Config.ControlBraceStyle == config.ControlBraceClosingNextLine {
		return prevBranch + "\n" + s.Indent.String(ctx.Config.TabSpaces, ctx.Config.HardTabs)
	}
	return prevBranch + " "
}

func ifExpr(ctx *Context, s shape.Shape, n *synast.If) Result {
	header := "if "
	if n.IsLet {
		header += "let " + NormalizePattern(ctx.Config, n.LetPattern) + " = "
	}
	cond := Expr(ctx, s.SubWidth(3), n.Cond)
	header += cond.Text
	then := BlockExpr(ctx, s, n.Then)
	out := controlBraceOpen(ctx, s, header, then)
	for _, ei := range n.ElseIfs {
		c := Expr(ctx, s, ei.Cond)
		branch := BlockExpr(ctx, s, ei.Then)
		out = controlBraceElse(ctx, s, out) + controlBraceOpen(ctx, s, "else if "+c.Text, branch)
	}
	if n.Else != nil {
		branch := BlockExpr(ctx, s, n.Else)
		out = controlBraceElse(ctx, s, out) + controlBraceOpen(ctx, s, "else", branch)
	}
	return Done(out)
}

func whileExpr(ctx *Context, s shape.Shape, n *synast.While) Result {
	header := "while "
	if n.IsLet {
		header += "let " + NormalizePattern(ctx.Config, n.LetPattern) + " = "
	}
	cond := Expr(ctx, s, n.Cond)
	header += cond.Text
	body := BlockExpr(ctx, s, n.Body)
	return Done(controlBraceOpen(ctx, s, header, body))
}

func loopExpr(ctx *Context, s shape.Shape, n *synast.Loop) Result {
	body := BlockExpr(ctx, s, n.Body)
	return Done(controlBraceOpen(ctx, s, "loop", body))
}

func forExpr(ctx *Context, s shape.Shape, n *synast.For) Result {
	iter := Expr(ctx, s, n.Iter)
	header := "for " + NormalizePattern(ctx.Config, n.Pattern) + " in " + iter.Text
	body := BlockExpr(ctx, s, n.Body)
	return Done(controlBraceOpen(ctx, s, header, body))
}

func matchExpr(ctx *Context, s shape.Shape, n *synast.Match) Result {
	value := Expr(ctx, s, n.Value)
	inner := s.BlockIndent(ctx.Config.TabSpaces)
	var b strings.Builder
	b.WriteString("match ")
	b.WriteString(value.Text)
	if ctx.Config.ControlBraceStyle == config.ControlBraceAlwaysNextLine {
		b.WriteString("\n")
		b.WriteString(s.Indent.String(ctx.Config.TabSpaces, ctx.Config.HardTabs))
		b.WriteString("{\n")
	} else {
		b.WriteString(" {\n")
	}
	for _, arm := range n.Arms {
		b.WriteString(inner.Indent.String(ctx.Config.TabSpaces, ctx.Config.HardTabs))
		if arm.LeadingComment != "" {
			b.WriteString(arm.LeadingComment)
			b.WriteString("\n")
			b.WriteString(inner.Indent.String(ctx.Config.TabSpaces, ctx.Config.HardTabs))
		}
		head := strings.Join(arm.Patterns, " | ")
		var guardText string
		if arm.Guard != nil {
			guard := Expr(ctx, inner, arm.Guard)
			guardText = " if " + guard.Text
		}
		b.WriteString(head)
		b.WriteString(guardText)
		b.WriteString(" => ")

		bodyShape := inner.SubWidth(len(head) + len(guardText) + len(" => "))
		body := Expr(ctx, bodyShape, arm.Body)
		bodyText := body.Text
		wrapped := false
		if ctx.Config.MatchArmBlocks && arm.Body != nil && arm.Body.ExprKind() != synast.ExprBlock &&
			!bodyShape.Fits(bodyText, ctx.Config.TabSpaces) {
			armInner := inner.BlockIndent(ctx.Config.TabSpaces)
			bodyText = "{\n" + armInner.Indent.String(ctx.Config.TabSpaces, ctx.Config.HardTabs) + bodyText +
				"\n" + inner.Indent.String(ctx.Config.TabSpaces, ctx.Config.HardTabs) + "}"
			wrapped = true
		}
		b.WriteString(bodyText)
		if !wrapped && (ctx.Config.MatchBlockTrailingComma || needsArmComma(arm.Body)) {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString(s.Indent.String(ctx.Config.TabSpaces, ctx.Config.HardTabs))
	b.WriteString("}")
	return Done(b.String())
}

func needsArmComma(body synast.Expr) bool {
	if body == nil {
		return true
	}
	return body.ExprKind() != synast.ExprBlock
}

// BlockExpr renders a braced statement sequence with an optional tail
// expression (spec.md §6 brace/empty-body rules).
func BlockExpr(ctx *Context, s shape.Shape, n *synast.Block) Result {
	if n == nil {
		return Done("{}")
	}
	if len(n.Stmts) == 0 && n.Tail == nil {
		if ctx.Config.EmptyItemSingleLine {
			return Done("{}")
		}
		return Done("{\n" + s.Indent.String(ctx.Config.TabSpaces, ctx.Config.HardTabs) + "}")
	}
	inner := s.BlockIndent(ctx.Config.TabSpaces)
	var b strings.Builder
	b.WriteString("{\n")
	for _, st := range n.Stmts {
		b.WriteString(inner.Indent.String(ctx.Config.TabSpaces, ctx.Config.HardTabs))
		b.WriteString(stmtText(ctx, inner, st))
		b.WriteString("\n")
	}
	if n.Tail != nil {
		b.WriteString(inner.Indent.String(ctx.Config.TabSpaces, ctx.Config.HardTabs))
		tail := Expr(ctx, inner, n.Tail)
		b.WriteString(tail.Text)
		b.WriteString("\n")
	}
	b.WriteString(s.Indent.String(ctx.Config.TabSpaces, ctx.Config.HardTabs))
	b.WriteString("}")
	return Done(b.String())
}

func stmtText(ctx *Context, s shape.Shape, st synast.Stmt) string {
	switch st.Kind {
	case "let":
		val := Expr(ctx, s, st.LetValue)
		return "let " + NormalizePattern(ctx.Config, st.LetPattern) + " = " + val.Text + ";"
	case "item":
		r := Item(ctx, s, st.Item)
		return r.Text
	default:
		r := Expr(ctx, s, st.Expr)
		text := r.Text
		if ctx.Config.TrailingSemicolon && needsStmtSemicolon(st.Expr) {
			text += ";"
		}
		return text
	}
}

func needsStmtSemicolon(e synast.Expr) bool {
	if e == nil {
		return false
	}
	switch e.ExprKind() {
	case synast.ExprIf, synast.ExprMatch, synast.ExprBlock, synast.ExprWhile, synast.ExprLoop, synast.ExprFor:
		return false
	}
	return true
}

func closure(ctx *Context, s shape.Shape, n *synast.Closure) Result {
	var b strings.Builder
	if n.Move {
		b.WriteString("move ")
	}
	b.WriteString("|")
	b.WriteString(strings.Join(n.Params, ", "))
	b.WriteString("| ")
	body := Expr(ctx, s, n.Body)
	if ctx.Config.ForceMultilineBlocks && strings.Contains(body.Text, "\n") && n.Body.ExprKind() != synast.ExprBlock {
		inner := s.BlockIndent(ctx.Config.TabSpaces)
		b.WriteString("{\n")
		b.WriteString(inner.Indent.String(ctx.Config.TabSpaces, ctx.Config.HardTabs))
		b.WriteString(body.Text)
		b.WriteString("\n")
		b.WriteString(s.Indent.String(ctx.Config.TabSpaces, ctx.Config.HardTabs))
		b.WriteString("}")
		return Done(b.String())
	}
	b.WriteString(body.Text)
	return Done(b.String())
}

func tuple(ctx *Context, s shape.Shape, n *synast.Tuple) Result {
	items := renderExprList(ctx, s, n.Elts)
	p := listfmt.DefaultCallArgs(trailingCommaFor(ctx.Config.TrailingComma))
	if len(n.Elts) == 1 {
		p.TrailingComma = listfmt.Always
	}
	out, _ := listfmt.Format(s, items, p)
	return Done(out)
}

func array(ctx *Context, s shape.Shape, n *synast.Array) Result {
	items := renderExprList(ctx, s, n.Elts)
	p := Params_array(ctx.Config.TrailingComma)
	out, _ := listfmt.Format(s, items, p)
	return Done(out)
}

// Params_array configures the List Formatter for array literals.
func Params_array(tc config.TrailingCommaPolicy) listfmt.Params {
	p := listfmt.DefaultCallArgs(trailingCommaFor(tc))
	p.Opener, p.Closer = "[", "]"
	return p
}

func structLit(ctx *Context, s shape.Shape, n *synast.StructLit) Result {
	items := make([]listfmt.Item, 0, len(n.Fields)+1)
	for _, f := range n.Fields {
		val := Expr(ctx, s, f.Value)
		text := f.Name + ": " + val.Text
		if ctx.Config.UseFieldInitShorthand {
			if p, ok := f.Value.(*synast.Path); ok && len(p.Segments) == 1 && p.Segments[0] == f.Name {
				text = f.Name
			}
		}
		items = append(items, listfmt.Item{Text: text})
	}
	if n.RestSpread != nil {
		rest := Expr(ctx, s, n.RestSpread)
		items = append(items, listfmt.Item{Text: ".." + rest.Text})
	}
	p := listfmt.DefaultBraceGroup(trailingCommaFor(ctx.Config.TrailingComma))
	out, _ := listfmt.Format(s, items, p)
	return Done(n.Path + " " + out)
}

func rangeExpr(ctx *Context, s shape.Shape, n *synast.Range) Result {
	var b strings.Builder
	if n.Lo != nil {
		lo := Expr(ctx, s, n.Lo)
		b.WriteString(lo.Text)
	}
	if n.Inclusive {
		b.WriteString("..=")
	} else {
		b.WriteString("..")
	}
	if n.Hi != nil {
		hi := Expr(ctx, s, n.Hi)
		b.WriteString(hi.Text)
	}
	out := b.String()
	if ctx.Config.SpacesAroundRanges {
		sep := ".."
		if n.Inclusive {
			sep = "..="
		}
		parts := strings.SplitN(out, sep, 2)
		if len(parts) == 2 {
			out = strings.TrimRight(parts[0], " ")
			if out != "" {
				out += " "
			}
			out += sep + " " + parts[1]
		}
	}
	return Done(out)
}

func castExpr(ctx *Context, s shape.Shape, n *synast.Cast) Result {
	inner := Expr(ctx, s, n.Expr)
	return Done(inner.Text + " as " + NormalizeType(ctx.Config, n.Type))
}

func assignExpr(ctx *Context, s shape.Shape, n *synast.Assign) Result {
	lhs := Expr(ctx, s, n.LHS)
	rhs := Expr(ctx, s, n.RHS)
	return Done(lhs.Text + " " + n.Op + " " + rhs.Text)
}

func tryExpr(ctx *Context, s shape.Shape, n *synast.Try) Result {
	inner := Expr(ctx, s, n.Expr)
	if n.Legacy && !ctx.Config.UseTryShorthand {
		return Done("try!(" + inner.Text + ")")
	}
	return Done(inner.Text + "?")
}

func returnExpr(ctx *Context, s shape.Shape, n *synast.Return) Result {
	if n.Value == nil {
		return Done("return")
	}
	v := Expr(ctx, s.SubWidth(len("return ")), n.Value)
	return Done("return " + v.Text)
}

func breakExpr(ctx *Context, s shape.Shape, n *synast.Break) Result {
	var b strings.Builder
	b.WriteString("break")
	if n.Label != "" {
		b.WriteString(" '")
		b.WriteString(n.Label)
	}
	if n.Value != nil {
		v := Expr(ctx, s, n.Value)
		b.WriteString(" ")
		b.WriteString(v.Text)
	}
	return Done(b.String())
}

func continueText(n *synast.Continue) string {
	if n.Label != "" {
		return "continue '" + n.Label
	}
	return "continue"
}

func parenExpr(ctx *Context, s shape.Shape, n *synast.Paren) Result {
	inner := Expr(ctx, s.SubWidth(2), n.Inner)
	if ctx.Config.RemoveNestedParens && isAtomic(n.Inner) {
		return Done(inner.Text)
	}
	return Done("(" + inner.Text + ")")
}

func isAtomic(e synast.Expr) bool {
	switch e.ExprKind() {
	case synast.ExprLiteral, synast.ExprPath, synast.ExprParen, synast.ExprCall, synast.ExprMethodCall:
		return true
	}
	return false
}

func renderExprList(ctx *Context, s shape.Shape, exprs []synast.Expr) []listfmt.Item {
	items := make([]listfmt.Item, len(exprs))
	for i, e := range exprs {
		r := Expr(ctx, s, e)
		items[i] = listfmt.Item{Text: r.Text}
	}
	return items
}

func trailingCommaFor(p config.TrailingCommaPolicy) listfmt.TrailingCommaPolicy {
	switch p {
	case config.TrailingAlways:
		return listfmt.Always
	case config.TrailingNever:
		return listfmt.Never
	default:
		return listfmt.VerticalOnly
	}
}
