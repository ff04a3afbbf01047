package engine

import (
	"runtime"
	"strings"

	"github.com/shapewright/fmtcore/config"
)

// applyNewlineStyle is the final normalization pass (spec.md §4.8): it
// rewrites every line ending in rendered to the configured style, having
// first normalized the assembler's own output (always \n-terminated) to
// a single canonical form.
func applyNewlineStyle(rendered string, style config.NewlineStyle, original []byte) string {
	unix := strings.ReplaceAll(rendered, "\r\n", "\n")
	switch resolveStyle(style, original) {
	case config.NewlineWindows:
		return strings.ReplaceAll(unix, "\n", "\r\n")
	default:
		return unix
	}
}

func resolveStyle(style config.NewlineStyle, original []byte) config.NewlineStyle {
	switch style {
	case config.NewlineUnix:
		return config.NewlineUnix
	case config.NewlineWindows:
		return config.NewlineWindows
	case config.NewlineNative:
		if runtime.GOOS == "windows" {
			return config.NewlineWindows
		}
		return config.NewlineUnix
	default: // Auto: detect from the original source
		if detectsWindows(original) {
			return config.NewlineWindows
		}
		return config.NewlineUnix
	}
}

func detectsWindows(original []byte) bool {
	for i := 0; i < len(original); i++ {
		if original[i] == '\n' {
			return i > 0 && original[i-1] == '\r'
		}
	}
	return false
}
