// Package role classifies source files by their place in the
// test-spec / page-object / validator layering.
package role

import (
	"path/filepath"
	"strings"
)

type Role string

const (
	TestSpec   Role = "test-spec"
	PageObject Role = "page-object"
	// Validator files hold assertion helpers. The convention is recognised
	// so validators are never mistaken for page objects, but no rule set
	// targets them and Detect reports them as Other.
	Validator Role = "validator"
	Other     Role = "other"
)

// TestSpecSuffixes are the file name endings that mark a test spec.
var TestSpecSuffixes = []string{".spec.ts", ".test.ts", ".spec.js", ".test.js"}

// Detect derives the role of a file from its path alone.
func Detect(path string) Role {
	switch {
	case IsTestSpecPath(path):
		return TestSpec
	case IsPageObjectPath(path):
		return PageObject
	default:
		return Other
	}
}

// IsTestSpecPath reports whether path sits under a tests directory and carries
// a test-spec suffix. Callers may hand in relative or absolute paths, so both
// the resolved path and the raw string are checked.
func IsTestSpecPath(path string) bool {
	if !hasTestSpecSuffix(path) {
		return false
	}
	if abs, err := filepath.Abs(path); err == nil && hasSegment(abs, "tests") {
		return true
	}
	return strings.Contains(filepath.ToSlash(path), "tests/")
}

// IsPageObjectPath reports whether the path or file name contains the token
// "page" (case-insensitive). Validator paths never count as page objects.
func IsPageObjectPath(path string) bool {
	if IsValidatorPath(path) {
		return false
	}
	return strings.Contains(strings.ToLower(filepath.ToSlash(path)), "page")
}

// IsValidatorPath reports whether the file lives under a validators directory.
func IsValidatorPath(path string) bool {
	return hasSegment(path, "validators")
}

func hasTestSpecSuffix(path string) bool {
	name := filepath.Base(filepath.ToSlash(path))
	for _, suffix := range TestSpecSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

func hasSegment(path, segment string) bool {
	parts := strings.Split(filepath.ToSlash(path), "/")
	// The last element is the file name, not a directory.
	for _, p := range parts[:len(parts)-1] {
		if p == segment {
			return true
		}
	}
	return false
}
