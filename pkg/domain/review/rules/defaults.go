package rules

import "github.com/felixgeelhaar/e2elint/pkg/domain/review"

// Default returns the built-in rule set. Order matters: it fixes the order in
// which issues are reported.
func Default() review.RuleSet {
	return review.RuleSet{
		Generic: []review.LineRule{
			&BadLocatorRule{},
			&PatternRule{Pattern: HardWait},
			&PatternRule{Pattern: WeakVisibility},
			&MissingAwaitRule{},
			&PatternRule{Pattern: WeakTyping},
			&XPathRule{},
		},
		TestSpec: []review.LineRule{
			&LocatorInTestRule{},
			&ActionInTestRule{},
			&AssertionInTestRule{},
		},
		Signals: []review.SignalRule{
			&SignalRule{Signal: RoleLocator},
			&SignalRule{Signal: SoftAssertion},
			&SignalRule{Signal: ReadonlyProperty},
		},
		Whole: []review.FileRule{
			&PageObjectAssertionRule{},
			&IsolationRule{},
		},
	}
}

// NewReviewer returns a reviewer using the default rule set.
func NewReviewer() *review.Reviewer {
	return review.NewReviewer(Default())
}
