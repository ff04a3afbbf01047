package rewrite

import (
	"github.com/shapewright/fmtcore/listfmt"
	"github.com/shapewright/fmtcore/shape"
	"github.com/shapewright/fmtcore/synast"
)

// Macro renders a macro invocation (spec.md §4.7). When the argument
// sequence was lexically comma-separated (Args non-nil), it is laid out
// through the ordinary List Formatter like a call; otherwise the
// original token text is passed through verbatim, since the matcher
// grammar inside an arbitrary macro's arguments is not this core's to
// parse.
func Macro(ctx *Context, s shape.Shape, n *synast.MacroCall) Result {
	closer := closingDelim(n.Delim)
	if n.Args == nil {
		return Done(n.Name + "!" + n.Delim + n.Verbatim + closer)
	}
	items := renderExprList(ctx, s, n.Args)
	p := listfmt.DefaultCallArgs(trailingCommaFor(ctx.Config.TrailingComma))
	p.Opener, p.Closer = n.Delim, closer
	if n.Delim == "{" {
		p.Padding = " "
	}
	out, _ := listfmt.Format(s, items, p)
	return Done(n.Name + "!" + out)
}

func closingDelim(opener string) string {
	switch opener {
	case "[":
		return "]"
	case "{":
		return "}"
	default:
		return ")"
	}
}
