package rules

import (
	"strings"

	"github.com/felixgeelhaar/e2elint/pkg/domain/review"
)

// Scope names the files a catalog entry applies to.
type Scope string

const (
	ScopeAll        Scope = "all"
	ScopeTestSpec   Scope = "test-spec"
	ScopePageObject Scope = "page-object"
	// ScopeNonSpec covers every file except test specs whose path does not
	// also look like a page object.
	ScopeNonSpec Scope = "non-spec"
)

// Entry describes one rule for listings.
type Entry struct {
	ID          string          `json:"id" yaml:"id"`
	Positive    bool            `json:"positive" yaml:"positive"`
	Severity    review.Severity `json:"severity,omitempty" yaml:"severity,omitempty"`
	Scope       Scope           `json:"scope" yaml:"scope"`
	Description string          `json:"description" yaml:"description"`
	Suggestion  string          `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
}

// Catalog lists every built-in rule in reporting order.
func Catalog() []Entry {
	issue := func(p Pattern, scope Scope) Entry {
		return Entry{
			ID:          p.ID,
			Severity:    p.Severity,
			Scope:       scope,
			Description: strings.ReplaceAll(p.Message, "%s", "..."),
			Suggestion:  p.Suggestion,
		}
	}
	signal := func(s Signal, scope Scope) Entry {
		return Entry{ID: s.ID, Positive: true, Scope: scope, Description: s.Description}
	}

	return []Entry{
		issue(BadLocator, ScopeAll),
		issue(HardWait, ScopeAll),
		issue(WeakVisibility, ScopeAll),
		issue(MissingAwait, ScopeAll),
		issue(WeakTyping, ScopeAll),
		issue(XPath, ScopeAll),
		issue(LocatorInTest, ScopeTestSpec),
		issue(ActionInTest, ScopeTestSpec),
		issue(AssertionInTest, ScopeTestSpec),
		issue(PageObjectAssertion, ScopePageObject),
		signal(RoleLocator, ScopeNonSpec),
		signal(SoftAssertion, ScopeNonSpec),
		signal(ReadonlyProperty, ScopeNonSpec),
		{ID: IDTestIsolation, Positive: true, Scope: ScopeAll, Description: isolationDescription},
	}
}
