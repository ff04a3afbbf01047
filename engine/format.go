package engine

import (
	"github.com/shapewright/fmtcore/config"
	"github.com/shapewright/fmtcore/report"
	"github.com/shapewright/fmtcore/synast"
)

// Result is the public result of FormatSource (spec.md §6).
type Result struct {
	Rendered    string
	Diagnostics []report.Diagnostic
	HadErrors   bool
}

// FormatSource is the core's single public entry point (spec.md §6):
// given the original source bytes, the syntax tree an external parser
// produced from them, the file's name (used only for diagnostic
// messages and logging), and a resolved Config, it returns the
// formatted text plus every diagnostic recorded along the way.
//
// Parsing itself is out of scope (spec.md §1, §6): file is assumed to
// already be the tree for source, produced by whatever parser the
// caller uses; a parser that failed to produce a tree at all should not
// call FormatSource and should instead surface report.ErrUnparseable
// directly.
func FormatSource(source []byte, filename string, cfg config.Config, file *synast.File) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	if cfg.DisableAllFormatting {
		return Result{Rendered: string(source)}, nil
	}

	asm := NewAssembler(source, cfg, defaultMarkers, filename)
	rendered := asm.Assemble(file)
	rendered = applyNewlineStyle(rendered, cfg.NewlineStyle, source)

	if cfg.ErrorOnUnformatted && asm.ctx.Handler.HasUnformatted() {
		asm.ctx.Handler.MarkFailed()
	}

	return Result{
		Rendered:    rendered,
		Diagnostics: asm.ctx.Handler.Diagnostics(),
		HadErrors:   asm.ctx.Handler.HadErrors(),
	}, nil
}

// defaultMarkers is the report_todo/report_fixme word list scanned in
// every comment body (spec.md §4.1); it is fixed rather than
// configurable since spec.md's Config table does not expose it as an
// option.
var defaultMarkers = []string{"TODO", "FIXME"}

// CheckSource reports whether FormatSource(source, filename, cfg, file)
// would return rendered == source, without requiring the caller to
// re-run a full diff themselves (spec.md §6 "check_source").
func CheckSource(source []byte, filename string, cfg config.Config, file *synast.File) (bool, Result, error) {
	res, err := FormatSource(source, filename, cfg, file)
	if err != nil {
		return false, res, err
	}
	return res.Rendered == string(source), res, nil
}
