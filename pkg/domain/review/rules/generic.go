package rules

import (
	"strings"

	"github.com/felixgeelhaar/e2elint/pkg/domain/review"
)

// PatternRule fires when its pattern matches anywhere on the line.
type PatternRule struct {
	Pattern Pattern
}

func (r *PatternRule) ID() string { return r.Pattern.ID }

func (r *PatternRule) CheckLine(line review.Line) (review.Issue, bool) {
	if r.Pattern.Match == nil || !r.Pattern.Match.MatchString(line.Text) {
		return review.Issue{}, false
	}
	return r.Pattern.Issue(line.Number), true
}

// BadLocatorRule flags locator calls whose quoted selector is a CSS class,
// an ID or a descendant combinator. Unquoted selectors are not inspected.
type BadLocatorRule struct{}

func (r *BadLocatorRule) ID() string { return IDBadLocator }

func (r *BadLocatorRule) CheckLine(line review.Line) (review.Issue, bool) {
	for _, m := range locatorCallRe.FindAllStringSubmatch(line.Text, -1) {
		if IsBadSelector(m[1]) {
			return BadLocator.Issue(line.Number, m[1]), true
		}
	}
	return review.Issue{}, false
}

// IsBadSelector reports whether selector is a raw class/ID selector or uses
// a child combinator.
func IsBadSelector(selector string) bool {
	return strings.HasPrefix(selector, ".") ||
		strings.HasPrefix(selector, "#") ||
		strings.Contains(selector, " > ")
}

// MissingAwaitRule flags an action call on a line without await.
type MissingAwaitRule struct{}

func (r *MissingAwaitRule) ID() string { return IDMissingAwait }

func (r *MissingAwaitRule) CheckLine(line review.Line) (review.Issue, bool) {
	m := awaitedVerbRe.FindStringSubmatch(line.Text)
	if m == nil || awaitRe.MatchString(line.Text) {
		return review.Issue{}, false
	}
	return MissingAwait.Issue(line.Number, m[1]), true
}
