package trivia

import (
	"strings"

	"github.com/shapewright/fmtcore/internal/identifier"
	"github.com/shapewright/fmtcore/internal/spanindex"
	"github.com/shapewright/fmtcore/synast"
)

// Warning is a report_todo/report_fixme hit: a configured marker word
// found inside a comment body (spec.md §4.1).
type Warning struct {
	Offset int
	Marker string
	Text   string
}

// Extractor walks source bytes between AST spans to recover Trivia. One
// Extractor is built per file and reused for every nesting level (top
// level items, block statements, match arms, ...), since the "walk
// between two byte offsets" primitive is the same at every level.
type Extractor struct {
	source            []byte
	markers           []string
	normalizeComments bool
}

// New builds an Extractor over source. markers is the configured list of
// report_todo/report_fixme marker words (a marker matches when the
// upper-cased comment body starts with it; no word boundary is
// required); nil disables the scan.
// normalizeComments mirrors config.Config.NormalizeComments: when set, a
// contiguous run of line comments has its shared leading indentation
// (past the `//` marker) collapsed to the single space renderComment
// re-adds, while any extra, non-shared indentation inside the run is
// preserved.
func New(source []byte, markers []string, normalizeComments bool) *Extractor {
	return &Extractor{source: source, markers: markers, normalizeComments: normalizeComments}
}

// ExtractAll recovers Trivia for every gap between consecutive spans in
// a sibling list (already in source order, as spec.md §3's "span
// monotonicity" invariant requires of the caller), plus the tail gap
// after the last span. It returns a sidecar index keyed by each
// following span's Lo — exactly the "span → attached trivia" map spec.md
// §4.1 calls for — and the tail Trivia separately, since it has no
// following span to key on.
func (e *Extractor) ExtractAll(spans []synast.Span) (*spanindex.Index[Trivia], Trivia, []Warning) {
	idx := spanindex.New[Trivia]()
	var warnings []Warning

	prevEnd := 0
	for i, sp := range spans {
		t, ws := e.between(prevEnd, sp.Lo, i > 0)
		warnings = append(warnings, ws...)
		idx.Insert(spanindex.Span{Lo: sp.Lo, Hi: sp.Hi}, t)
		prevEnd = sp.Hi
	}

	tail, ws := e.between(prevEnd, len(e.source), len(spans) > 0)
	warnings = append(warnings, ws...)
	return idx, tail, warnings
}

// between recovers the Trivia found in source[from:to]. hasPrev
// indicates whether a preceding node exists before `from` on the same
// line, so that the remainder of that line (lines[0]) is checked for a
// trailing comment instead of being treated as a leading one.
func (e *Extractor) between(from, to int, hasPrev bool) (Trivia, []Warning) {
	if from >= to || from < 0 || to > len(e.source) {
		return Trivia{}, nil
	}
	lines := strings.Split(string(e.source[from:to]), "\n")

	var t Trivia
	var warnings []Warning

	// lines[0] is the remainder of the preceding node's own line, up to
	// the first newline in the gap (or the whole gap, if it contains
	// none). It holds at most a trailing comment.
	if hasPrev {
		if trimmed := strings.TrimSpace(lines[0]); trimmed != "" {
			kind, body := classifyComment(trimmed)
			t.TrailingComments = append(t.TrailingComments, Comment{
				Kind: kind, Text: body, OriginalIndent: uint32(leadingSpaces(lines[0])),
			})
			warnings = append(warnings, scanMarkers(e.markers, body, from)...)
		}
		lines = lines[1:]
	}

	blankRun := 0
	var runBodies []string
	var runIndents []uint32
	flushRun := func() {
		if len(runBodies) == 0 {
			return
		}
		bodies := runBodies
		if e.normalizeComments {
			bodies = normalizeCommentIndent(runBodies)
		}
		for i, body := range bodies {
			t.LeadingComments = append(t.LeadingComments, Comment{
				Kind: Line, Text: strings.TrimSpace(body), OriginalIndent: runIndents[i],
			})
		}
		runBodies, runIndents = nil, nil
	}
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			flushRun()
			blankRun++
			continue
		}
		if blankRun > 0 {
			t.LeadingBlankLines += uint32(blankRun)
			blankRun = 0
		}
		kind, body := classifyComment(trimmed)
		if kind == Line && strings.HasPrefix(trimmed, "//") {
			runBodies = append(runBodies, strings.TrimPrefix(trimmed, "//"))
			runIndents = append(runIndents, uint32(leadingSpaces(line)))
			warnings = append(warnings, scanMarkers(e.markers, body, from)...)
			continue
		}
		flushRun()
		t.LeadingComments = append(t.LeadingComments, Comment{
			Kind: kind, Text: body, OriginalIndent: uint32(leadingSpaces(line)),
		})
		warnings = append(warnings, scanMarkers(e.markers, body, from)...)
	}
	flushRun()
	return t, warnings
}

// normalizeCommentIndent collapses the leading whitespace every body in
// a contiguous `//` comment run shares (per NormalizeComments, spec.md
// §6) down to nothing, letting renderComment's own single space stand
// in for it, while any indentation beyond that shared minimum — nested
// list items, aligned columns inside the block — survives untouched.
// It bails out and returns bodies unchanged whenever the text right at
// the shared margin looks like commented-out code (an identifier
// immediately followed by code punctuation) rather than prose, since
// re-flowing such a block could disturb alignment that was meaningful.
func normalizeCommentIndent(bodies []string) []string {
	common := identifier.CommonPrefixLen(bodies)
	if common == 0 {
		return bodies
	}
	for _, body := range bodies {
		rest := body
		if len(rest) >= common {
			rest = rest[common:]
		}
		tok := leadingIdentifier(rest)
		if tok != "" && startsCodePunct(rest[len(tok):]) {
			return bodies
		}
	}
	out := make([]string, len(bodies))
	for i, body := range bodies {
		if len(body) >= common {
			out[i] = body[common:]
		} else {
			out[i] = strings.TrimLeft(body, " \t")
		}
	}
	return out
}

// leadingIdentifier returns the longest prefix of s that is a single
// valid identifier per internal/identifier's XID-based classification,
// or "" if s doesn't begin with one.
func leadingIdentifier(s string) string {
	end := 0
	for i, r := range s {
		if i == 0 {
			if !identifier.IsStart(r) {
				return ""
			}
			end = i + len(string(r))
			continue
		}
		if !identifier.IsContinue(r) {
			break
		}
		end = i + len(string(r))
	}
	return s[:end]
}

func startsCodePunct(rest string) bool {
	for _, p := range []string{"(", "::", ";", "{", "<"} {
		if strings.HasPrefix(rest, p) {
			return true
		}
	}
	return false
}

func classifyComment(trimmed string) (CommentKind, string) {
	switch {
	case strings.HasPrefix(trimmed, "///"):
		return Doc, strings.TrimSpace(strings.TrimPrefix(trimmed, "///"))
	case strings.HasPrefix(trimmed, "//!"):
		return InnerDoc, strings.TrimSpace(strings.TrimPrefix(trimmed, "//!"))
	case strings.HasPrefix(trimmed, "//"):
		return Line, strings.TrimSpace(strings.TrimPrefix(trimmed, "//"))
	case strings.HasPrefix(trimmed, "/*"):
		body := strings.TrimSuffix(strings.TrimPrefix(trimmed, "/*"), "*/")
		return Block, strings.TrimSpace(body)
	default:
		return Line, trimmed
	}
}

func leadingSpaces(line string) int {
	n := 0
	for _, r := range line {
		if r != ' ' && r != '\t' {
			break
		}
		n++
	}
	return n
}

func scanMarkers(markers []string, body string, offset int) []Warning {
	if len(markers) == 0 {
		return nil
	}
	var out []Warning
	for _, m := range markers {
		if strings.HasPrefix(strings.ToUpper(body), m) {
			out = append(out, Warning{Offset: offset, Marker: m, Text: body})
		}
	}
	return out
}
