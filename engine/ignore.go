package engine

import "github.com/bmatcuk/doublestar/v4"

// ShouldIgnore reports whether filename matches one of the configured
// ignore glob patterns, the same doublestar.Match call the teacher's own
// internal/golden uses for refresh-glob matching.
func ShouldIgnore(filename string, patterns []string) bool {
	for _, pat := range patterns {
		ok, err := doublestar.Match(pat, filename)
		if err == nil && ok {
			return true
		}
	}
	return false
}
