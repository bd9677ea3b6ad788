package rules_test

import (
	"testing"

	"github.com/felixgeelhaar/e2elint/pkg/domain/review"
	"github.com/felixgeelhaar/e2elint/pkg/domain/review/rules"
)

func check(rule review.LineRule, text string) (review.Issue, bool) {
	return rule.CheckLine(review.Line{Number: 1, Text: text})
}

func TestBadLocatorRule(t *testing.T) {
	rule := &rules.BadLocatorRule{}

	tests := []struct {
		text     string
		wantHit  bool
		selector string
	}{
		{`const x = page.locator('.btn-primary');`, true, ".btn-primary"},
		{`page.locator("#login")`, true, "#login"},
		{"page.locator(`form > button`)", true, "form > button"},
		{`await page.$('.row')`, true, ".row"},
		{`await page.$$("#items li")`, true, "#items li"},
		{`page.locator('text=Hello World')`, false, ""},
		{`page.locator(selector)`, false, ""},
		{`page.getByRole('button')`, false, ""},
		{`page.locator('[data-test=x]').locator('.inner')`, true, ".inner"},
	}

	for _, tt := range tests {
		issue, ok := check(rule, tt.text)
		if ok != tt.wantHit {
			t.Errorf("CheckLine(%q) hit = %v, want %v", tt.text, ok, tt.wantHit)
			continue
		}
		if !ok {
			continue
		}
		if issue.Severity != review.SeverityHigh {
			t.Errorf("expected HIGH, got %s", issue.Severity)
		}
		want := "Bad locator: raw CSS selector '" + tt.selector + "'"
		if issue.Description != want {
			t.Errorf("description = %q, want %q", issue.Description, want)
		}
	}
}

func TestMissingAwaitRule(t *testing.T) {
	rule := &rules.MissingAwaitRule{}

	issue, ok := check(rule, `page.click('#go')`)
	if !ok {
		t.Fatal("expected missing await to fire")
	}
	if issue.Description != "Missing await on click action" || issue.Severity != review.SeverityHigh {
		t.Errorf("unexpected issue: %+v", issue)
	}

	issue, ok = check(rule, `loginPage.email.fill('a'); loginPage.submit.click();`)
	if !ok || issue.Description != "Missing await on fill action" {
		t.Errorf("expected first verb to win, got %+v", issue)
	}

	for _, text := range []string{
		`await page.click('#go')`,
		`return page.getByRole('link').hover().then(() => 1) // await later`,
		`const n = items.length`,
	} {
		if _, ok := check(rule, text); ok {
			t.Errorf("did not expect missing await for %q", text)
		}
	}
}

func TestPatternRules(t *testing.T) {
	tests := []struct {
		name    string
		pattern rules.Pattern
		text    string
		want    bool
	}{
		{"hard wait", rules.HardWait, `await page.waitForTimeout(5000);`, true},
		{"hard wait absent", rules.HardWait, `await page.waitForURL('/home');`, false},
		{"weak visibility", rules.WeakVisibility, `expect(await page.locator('#a').isVisible()).toBe(true);`, true},
		{"web-first visibility", rules.WeakVisibility, `await expect(page.locator('#a')).toBeVisible();`, false},
		{"any annotation", rules.WeakTyping, `function open(page: any) {`, true},
		{"as any", rules.WeakTyping, `const p = page as any;`, true},
		{"generic any", rules.WeakTyping, `const xs: Array<any> = [];`, true},
		{"any prefix is not any", rules.WeakTyping, `const cfg = { key: anyValue };`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := &rules.PatternRule{Pattern: tt.pattern}
			issue, ok := check(rule, tt.text)
			if ok != tt.want {
				t.Fatalf("CheckLine(%q) = %v, want %v", tt.text, ok, tt.want)
			}
			if ok && issue.RuleID != tt.pattern.ID {
				t.Errorf("rule id = %s, want %s", issue.RuleID, tt.pattern.ID)
			}
		})
	}
}

func TestPatternRule_NilMatcherNeverFires(t *testing.T) {
	rule := &rules.PatternRule{Pattern: rules.Pattern{ID: "empty"}}
	if _, ok := check(rule, "anything"); ok {
		t.Fatal("expected no match without a matcher")
	}
}
