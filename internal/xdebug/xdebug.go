// Package xdebug provides structural dumps of internal values for
// Trace-level logging, using alecthomas/repr the same way the retrieval
// pack's sqltest.querydump uses repr.String to render row values for test
// failure output.
package xdebug

import "github.com/alecthomas/repr"

// Dump renders v as a Go-like structural literal, suitable for a
// Trace-level log field when diagnosing a layout-escalation decision.
func Dump(v any) string {
	return repr.String(v, repr.Indent("  "))
}
