package rules

import (
	"regexp"

	"github.com/felixgeelhaar/e2elint/pkg/domain/review"
)

var (
	testDeclRe   = regexp.MustCompile(`(?m)(?:^|[^.\w$])test(?:\.only|\.skip)?\s*\(`)
	beforeEachRe = regexp.MustCompile(`\bbeforeEach\s*\(`)
	perTestCfgRe = regexp.MustCompile(`\btest\.describe\.configure\s*\(|\btest\.use\s*\(`)
)

// PageObjectAssertionRule flags page objects that assert. The raw content is
// searched, comments included.
type PageObjectAssertionRule struct{}

func (r *PageObjectAssertionRule) ID() string { return IDPageObjectAssertion }

func (r *PageObjectAssertionRule) CheckFile(f *review.File) ([]review.Issue, []review.Positive) {
	if !f.PageObjectStyle || !PageObjectAssertion.Match.MatchString(f.Content) {
		return nil, nil
	}
	return []review.Issue{PageObjectAssertion.Issue(0)}, nil
}

const isolationDescription = "Tests appear independent (no shared beforeEach setup)"

// IsolationRule credits files declaring several tests with no shared
// beforeEach setup and no per-test configuration.
type IsolationRule struct{}

func (r *IsolationRule) ID() string { return IDTestIsolation }

func (r *IsolationRule) CheckFile(f *review.File) ([]review.Issue, []review.Positive) {
	tests := CountTests(f.Content)
	setups := len(beforeEachRe.FindAllStringIndex(f.Content, -1))
	if tests <= 1 || setups > 0 || perTestCfgRe.MatchString(f.Content) {
		return nil, nil
	}
	return nil, []review.Positive{{
		RuleID:      IDTestIsolation,
		Description: isolationDescription,
		Line:        0,
	}}
}

// CountTests counts test(), test.only() and test.skip() declarations.
func CountTests(content string) int {
	return len(testDeclRe.FindAllStringIndex(content, -1))
}
