package review

import "github.com/felixgeelhaar/e2elint/pkg/domain/role"

// File carries everything a rule may inspect about the file under review.
type File struct {
	Path    string
	Role    role.Role
	Content string
	Lines   []Line
	// PageObjectStyle is set when the path looks like a page object,
	// independently of the detected role.
	PageObjectStyle bool
}

// LineRule inspects one non-comment line and reports at most one issue.
type LineRule interface {
	ID() string
	CheckLine(line Line) (Issue, bool)
}

// SignalRule inspects one non-comment line for a good practice.
type SignalRule interface {
	ID() string
	DetectLine(line Line) (Positive, bool)
}

// FileRule inspects the file as a whole.
type FileRule interface {
	ID() string
	CheckFile(f *File) ([]Issue, []Positive)
}

// RuleSet groups the rules a Reviewer applies.
type RuleSet struct {
	// Generic rules run on every file.
	Generic []LineRule
	// TestSpec rules run only on test-spec files, each as its own pass.
	TestSpec []LineRule
	// Signals run on files that are not test specs, and on any file whose
	// path looks like a page object.
	Signals []SignalRule
	// Whole runs once per file after the line passes.
	Whole []FileRule
}
