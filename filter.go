package treesync

import (
	"github.com/bmatcuk/doublestar/v4"
)

// Filter decides which entries a walk reports.
//
// Ignore patterns drop an entry together with its subtree. When include
// patterns are present only matching entries are kept, plus the ancestor
// directories needed to reach them.
type Filter struct {
	ignore  []string
	include []string
}

// NewFilter validates the patterns and builds a filter. Patterns use
// doublestar syntax and are matched against the relative path.
func NewFilter(ignore, include []string) (*Filter, error) {
	for _, patterns := range [][]string{ignore, include} {
		for _, pattern := range patterns {
			if !doublestar.ValidatePattern(pattern) {
				return nil, newInvalidPatternError(pattern)
			}
		}
	}

	return &Filter{
		ignore:  append([]string(nil), ignore...),
		include: append([]string(nil), include...),
	}, nil
}

// Ignored reports whether the entry and its subtree are excluded
func (f *Filter) Ignored(entry Entry) bool {
	if f == nil {
		return false
	}

	return matchAny(f.ignore, entry)
}

// Included reports whether the entry matches the include patterns. Without
// include patterns everything is included.
func (f *Filter) Included(entry Entry) bool {
	if f == nil || len(f.include) == 0 {
		return true
	}

	return matchAny(f.include, entry)
}

// restricts reports whether entries need include patterns to be kept
func (f *Filter) restricts() bool {
	return f != nil && len(f.include) > 0
}

// matchAny matches the path both with and without the directory marker, so
// "**/bar" and "**/bar/" both select the directory bar.
func matchAny(patterns []string, entry Entry) bool {
	for _, pattern := range patterns {
		if doublestar.MatchUnvalidated(pattern, entry.Path()) {
			return true
		}
		if entry.IsDir && doublestar.MatchUnvalidated(pattern, entry.RelativePath) {
			return true
		}
	}

	return false
}
