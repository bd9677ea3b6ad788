package rules_test

import (
	"testing"

	"github.com/felixgeelhaar/e2elint/pkg/domain/review/rules"
)

func TestMatchCommentShape(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"// comment", "leadingSlashes"},
		{"doThing(); // trailing", "inlineSpaced"},
		{"doThing();//trailing", "trailingAfterCode"},
		{"const a = [1]//note", "trailingAfterCode"},
		{"x = y //note", "wordAfterSlashes"},
		{"x = y //2nd", "wordAfterSlashes"},
		{"x = y //_helper(1)", "wordAfterSlashes"},
	}

	for _, tt := range tests {
		got, ok := rules.MatchCommentShape(tt.line)
		if !ok || got != tt.want {
			t.Errorf("MatchCommentShape(%q) = %q, %v; want %q", tt.line, got, ok, tt.want)
		}
	}

	if name, ok := rules.MatchCommentShape(`page.locator('//*[@id="a"]')`); ok {
		t.Errorf("xpath expression matched comment shape %q", name)
	}
}

func TestIsXPathLine(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{`page.locator('//*[@id="submit"]')`, true},
		{`page.locator('xpath=//button')`, true},
		{`await page.$x('//button')`, true},
		{`page.locator("(//*[@role='row'])[2]")`, true},
		{`await page.goto('https://example.com//path');`, false},
		{`const u = "http://host//*[x]";`, false},
		{`await page.click('#go'); //click it`, false},
		{`await page.click('#go'); // click it`, false},
		{`page.locator('//div[@class="a"]')`, false},
		{`const total = a + b;`, false},
	}

	for _, tt := range tests {
		if got := rules.IsXPathLine(tt.line); got != tt.want {
			t.Errorf("IsXPathLine(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}
