package storage

import (
	"path/filepath"
)

// PatternFilter filters file paths based on include/exclude glob patterns.
type PatternFilter struct {
	Include []string
	Exclude []string
}

func NewPatternFilter(include, exclude []string) *PatternFilter {
	return &PatternFilter{
		Include: include,
		Exclude: exclude,
	}
}

// Matches returns true if the path passes the filter.
// Excludes win over includes; an empty include list admits everything.
func (f *PatternFilter) Matches(path string) bool {
	base := filepath.Base(path)
	slashed := filepath.ToSlash(path)

	for _, pattern := range f.Exclude {
		if globMatch(pattern, base, slashed) {
			return false
		}
	}

	if len(f.Include) == 0 {
		return true
	}

	for _, pattern := range f.Include {
		if globMatch(pattern, base, slashed) {
			return true
		}
	}

	return false
}

func globMatch(pattern, base, path string) bool {
	if matched, _ := filepath.Match(pattern, base); matched {
		return true
	}
	matched, _ := filepath.Match(filepath.ToSlash(pattern), path)
	return matched
}

// TestFilePatterns returns the include globs for test files.
func TestFilePatterns(includeJS bool) []string {
	patterns := []string{"*.spec.ts", "*.test.ts"}
	if includeJS {
		patterns = append(patterns, "*.spec.js", "*.test.js")
	}
	return patterns
}
