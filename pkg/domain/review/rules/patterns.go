// Package rules holds the detection catalog applied by the reviewer.
package rules

import (
	"fmt"
	"regexp"

	"github.com/felixgeelhaar/e2elint/pkg/domain/review"
)

// Rule identifiers. They double as dedup categories: a rule reports at most
// once per line.
const (
	IDBadLocator          = "bad-locator"
	IDHardWait            = "hard-wait"
	IDWeakVisibility      = "weak-visibility"
	IDMissingAwait        = "missing-await"
	IDWeakTyping          = "weak-typing"
	IDXPath               = "xpath"
	IDLocatorInTest       = "locator-in-test"
	IDActionInTest        = "action-in-test"
	IDAssertionInTest     = "assertion-in-test"
	IDPageObjectAssertion = "page-object-assertion"
	IDRoleLocator         = "role-locator"
	IDSoftAssertion       = "soft-assertion"
	IDReadonlyProperty    = "readonly-property"
	IDTestIsolation       = "test-isolation"
)

// Pattern is a single catalog entry: a matcher plus the text reported when it fires.
type Pattern struct {
	ID         string
	Match      *regexp.Regexp
	Severity   review.Severity
	Message    string
	Suggestion string
}

// Issue builds the issue for line, formatting Message with args.
func (p Pattern) Issue(line int, args ...any) review.Issue {
	msg := p.Message
	if len(args) > 0 {
		msg = fmt.Sprintf(p.Message, args...)
	}
	return review.Issue{
		RuleID:      p.ID,
		Severity:    p.Severity,
		Description: msg,
		Line:        line,
		Suggestion:  p.Suggestion,
	}
}

var (
	// Quoted first argument of .locator(), $() and $$().
	locatorCallRe = regexp.MustCompile(`(?:\.locator|\$\$?)\(\s*['"\x60]([^'"\x60]*)['"\x60]`)
	awaitRe       = regexp.MustCompile(`\bawait\b`)
	awaitedVerbRe = regexp.MustCompile(`\.(click|fill|press|type|hover|focus)\s*\(`)
	assertionRe   = regexp.MustCompile(`\bexpect(?:\.soft)?\s*\(`)
	explicitXPath = regexp.MustCompile(`xpath=|\$x\(`)
)

var (
	BadLocator = Pattern{
		ID:         IDBadLocator,
		Severity:   review.SeverityHigh,
		Message:    "Bad locator: raw CSS selector '%s'",
		Suggestion: "Use getByRole, getByLabel, getByText or getByTestId instead of CSS classes, IDs or descendant combinators",
	}

	HardWait = Pattern{
		ID:         IDHardWait,
		Match:      regexp.MustCompile(`\bwaitForTimeout\s*\(`),
		Severity:   review.SeverityHigh,
		Message:    "Hard-coded wait: waitForTimeout makes tests slow and flaky",
		Suggestion: "Wait for a condition instead, e.g. await expect(locator).toBeVisible()",
	}

	WeakVisibility = Pattern{
		ID:         IDWeakVisibility,
		Match:      regexp.MustCompile(`\bexpect\(\s*await\s+[^;]*\.isVisible\(\s*\)\s*\)`),
		Severity:   review.SeverityMedium,
		Message:    "Weak visibility assertion: expect(await ...isVisible()) checks a single snapshot",
		Suggestion: "Use the web-first assertion await expect(locator).toBeVisible()",
	}

	MissingAwait = Pattern{
		ID:         IDMissingAwait,
		Severity:   review.SeverityHigh,
		Message:    "Missing await on %s action",
		Suggestion: "Prefix the call with await so the action completes before the next step",
	}

	WeakTyping = Pattern{
		ID:         IDWeakTyping,
		Match:      regexp.MustCompile(`:\s*any\b|\bas\s+any\b|<any>`),
		Severity:   review.SeverityMedium,
		Message:    "Weak typing: 'any' disables type checking",
		Suggestion: "Use Page, Locator or a dedicated interface instead of any",
	}

	XPath = Pattern{
		ID:         IDXPath,
		Severity:   review.SeverityMedium,
		Message:    "XPath selector detected",
		Suggestion: "Prefer user-facing locators such as getByRole or getByText over XPath",
	}

	LocatorInTest = Pattern{
		ID:         IDLocatorInTest,
		Severity:   review.SeverityHigh,
		Message:    "Locator found in test file",
		Suggestion: "Move locators into a Page Object and expose an intent-revealing method",
	}

	ActionInTest = Pattern{
		ID:         IDActionInTest,
		Severity:   review.SeverityHigh,
		Message:    "Action found in test file: %s",
		Suggestion: "Move interactions and navigation into Page Object methods",
	}

	AssertionInTest = Pattern{
		ID:         IDAssertionInTest,
		Match:      assertionRe,
		Severity:   review.SeverityHigh,
		Message:    "Assertion found in test file",
		Suggestion: "Move assertions into a Validator module and call it from the test",
	}

	PageObjectAssertion = Pattern{
		ID:         IDPageObjectAssertion,
		Match:      assertionRe,
		Severity:   review.SeverityMedium,
		Message:    "Page Object contains assertions.",
		Suggestion: "Keep Page Objects free of expect(); move checks into a Validator module",
	}
)

// LocatorShapes are the call shapes that produce a locator, in match order.
var LocatorShapes = []string{
	".locator(",
	"$(",
	"getByRole(",
	"getByText(",
	"getByLabel(",
	"getByPlaceholder(",
	"getByAltText(",
	"getByTitle(",
	"getByTestId(",
}

// ActionNames are the interaction and navigation calls not allowed in test
// specs, in match order.
var ActionNames = []string{
	"click", "fill", "type", "press", "hover", "focus", "blur", "check",
	"uncheck", "selectOption", "clear", "dragAndDrop", "doubleClick",
	"rightClick", "tap", "swipe", "scroll", "waitFor", "waitForSelector",
	"waitForFunction", "goto", "reload", "goBack", "goForward", "screenshot",
	"pdf",
}

// Signal is a catalog entry for a positive practice.
type Signal struct {
	ID          string
	Match       *regexp.Regexp
	Description string
}

var (
	RoleLocator = Signal{
		ID:          IDRoleLocator,
		Match:       regexp.MustCompile(`\bgetByRole\s*\(`),
		Description: "Uses accessible role-based locators",
	}

	SoftAssertion = Signal{
		ID:          IDSoftAssertion,
		Match:       regexp.MustCompile(`\bexpect\.soft\s*\(`),
		Description: "Uses soft assertions",
	}

	ReadonlyProperty = Signal{
		ID:          IDReadonlyProperty,
		Match:       regexp.MustCompile(`\breadonly\s+[A-Za-z_$]`),
		Description: "Uses readonly properties",
	}
)
