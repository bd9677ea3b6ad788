package rules

import (
	"strings"

	"github.com/felixgeelhaar/e2elint/pkg/domain/review"
)

// LocatorInTestRule flags locator construction inside a test spec.
type LocatorInTestRule struct{}

func (r *LocatorInTestRule) ID() string { return IDLocatorInTest }

func (r *LocatorInTestRule) CheckLine(line review.Line) (review.Issue, bool) {
	for _, shape := range LocatorShapes {
		if strings.Contains(line.Text, shape) {
			return LocatorInTest.Issue(line.Number), true
		}
	}
	return review.Issue{}, false
}

// ActionInTestRule flags interactions and navigation inside a test spec.
type ActionInTestRule struct{}

func (r *ActionInTestRule) ID() string { return IDActionInTest }

func (r *ActionInTestRule) CheckLine(line review.Line) (review.Issue, bool) {
	for _, name := range ActionNames {
		if strings.Contains(line.Text, "."+name+"(") {
			return ActionInTest.Issue(line.Number, name), true
		}
	}
	return review.Issue{}, false
}

// AssertionInTestRule flags expect() and expect.soft() inside a test spec.
// A line holding both forms yields a single issue.
type AssertionInTestRule struct{}

func (r *AssertionInTestRule) ID() string { return IDAssertionInTest }

func (r *AssertionInTestRule) CheckLine(line review.Line) (review.Issue, bool) {
	if !AssertionInTest.Match.MatchString(line.Text) {
		return review.Issue{}, false
	}
	return AssertionInTest.Issue(line.Number), true
}
