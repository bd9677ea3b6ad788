package review

import "github.com/felixgeelhaar/e2elint/pkg/domain/role"

// Reviewer applies a RuleSet to file contents. It holds no per-file state
// and is safe for concurrent use.
type Reviewer struct {
	rules RuleSet
}

func NewReviewer(rules RuleSet) *Reviewer {
	return &Reviewer{rules: rules}
}

// Review classifies every line of content and scores the result.
func (r *Reviewer) Review(path, content string) *FileReport {
	f := &File{
		Path:            path,
		Role:            role.Detect(path),
		Content:         content,
		Lines:           SplitLines(content),
		PageObjectStyle: role.IsPageObjectPath(path),
	}

	c := newCollector()
	recordSignals := f.Role != role.TestSpec || f.PageObjectStyle

	// Generic pass: line by line, every rule at most once per line.
	for _, line := range f.Lines {
		if line.Skip() {
			continue
		}
		for _, rule := range r.rules.Generic {
			if issue, ok := rule.CheckLine(line); ok {
				c.addIssue(rule.ID(), issue)
			}
		}
		if !recordSignals {
			continue
		}
		for _, rule := range r.rules.Signals {
			if pos, ok := rule.DetectLine(line); ok {
				c.addPositive(rule.ID(), pos)
			}
		}
	}

	// Role-specific pass: each rule rescans the whole file.
	if f.Role == role.TestSpec {
		for _, rule := range r.rules.TestSpec {
			for _, line := range f.Lines {
				if line.Skip() {
					continue
				}
				if issue, ok := rule.CheckLine(line); ok {
					c.addIssue(rule.ID(), issue)
				}
			}
		}
	}

	for _, rule := range r.rules.Whole {
		issues, positives := rule.CheckFile(f)
		for _, i := range issues {
			c.addIssue(rule.ID(), i)
		}
		for _, p := range positives {
			c.addPositive(rule.ID(), p)
		}
	}

	return &FileReport{
		Path:      path,
		Role:      f.Role,
		Issues:    c.issues,
		Positives: c.positives,
		Score:     Score(c.issues),
	}
}

type lineKey struct {
	rule string
	line int
}

// collector keeps findings in detection order and drops a second finding
// of the same rule on the same physical line.
type collector struct {
	issues    []Issue
	positives []Positive
	seen      map[lineKey]bool
}

func newCollector() *collector {
	return &collector{
		issues:    make([]Issue, 0),
		positives: make([]Positive, 0),
		seen:      make(map[lineKey]bool),
	}
}

func (c *collector) addIssue(ruleID string, issue Issue) {
	if issue.RuleID == "" {
		issue.RuleID = ruleID
	}
	if !c.mark("issue:"+issue.RuleID, issue.Line) {
		return
	}
	c.issues = append(c.issues, issue)
}

func (c *collector) addPositive(ruleID string, pos Positive) {
	if pos.RuleID == "" {
		pos.RuleID = ruleID
	}
	if !c.mark("positive:"+pos.RuleID, pos.Line) {
		return
	}
	c.positives = append(c.positives, pos)
}

// mark returns false when the rule already reported on this line.
// Whole-file findings (line 0) are never collapsed.
func (c *collector) mark(rule string, line int) bool {
	if line == 0 {
		return true
	}
	k := lineKey{rule: rule, line: line}
	if c.seen[k] {
		return false
	}
	c.seen[k] = true
	return true
}
