package cli

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// GlobFilter selects entries by their path relative to a listing root.
// Patterns use doublestar syntax and match case-insensitively against the
// generic (forward-slash) form of the path.
type GlobFilter struct {
	include []string
	exclude []string
}

// NewGlobFilter creates a GlobFilter. No include patterns means everything
// not excluded is included.
func NewGlobFilter(include, exclude []string) *GlobFilter {
	return &GlobFilter{include: lowerAll(include), exclude: lowerAll(exclude)}
}

// Excluded reports whether relativePath matches an exclude pattern.
func (f *GlobFilter) Excluded(relativePath string) bool {
	return matchAny(f.exclude, relativePath)
}

// ShouldInclude reports whether relativePath should be listed.
func (f *GlobFilter) ShouldInclude(relativePath string) bool {
	if f.Excluded(relativePath) {
		return false
	}

	return len(f.include) == 0 || matchAny(f.include, relativePath)
}

func matchAny(patterns []string, relativePath string) bool {
	normalized := strings.ToLower(relativePath)

	for _, pattern := range patterns {
		// Invalid patterns never match
		if matched, err := doublestar.Match(pattern, normalized); err == nil && matched {
			return true
		}
	}

	return false
}

func lowerAll(patterns []string) []string {
	out := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		out = append(out, strings.ToLower(pattern))
	}

	return out
}
