package review

import (
	"time"

	"github.com/felixgeelhaar/e2elint/pkg/domain/role"
)

type Severity string

const (
	SeverityHigh   Severity = "HIGH"
	SeverityMedium Severity = "MEDIUM"
)

// Penalty is the number of points a finding of this severity costs.
func (s Severity) Penalty() int {
	switch s {
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 1
	default:
		return 0
	}
}

const MaxScore = 10

// Issue is a single rule violation. Line is 0 for whole-file findings.
type Issue struct {
	RuleID      string   `json:"rule_id" yaml:"rule_id"`
	Severity    Severity `json:"severity" yaml:"severity"`
	Description string   `json:"description" yaml:"description"`
	Line        int      `json:"line" yaml:"line"`
	Suggestion  string   `json:"suggestion" yaml:"suggestion"`
}

// Positive records a good practice found in a file.
type Positive struct {
	RuleID      string `json:"rule_id" yaml:"rule_id"`
	Description string `json:"description" yaml:"description"`
	Line        int    `json:"line" yaml:"line"`
}

// FileReport is the outcome of reviewing one file.
type FileReport struct {
	Path      string     `json:"path" yaml:"path"`
	Role      role.Role  `json:"role" yaml:"role"`
	Issues    []Issue    `json:"issues" yaml:"issues"`
	Positives []Positive `json:"positives" yaml:"positives"`
	Score     int        `json:"score" yaml:"score"`
}

// Score reduces an issue list to a value in [0, MaxScore].
func Score(issues []Issue) int {
	score := MaxScore
	for _, i := range issues {
		score -= i.Severity.Penalty()
	}
	if score < 0 {
		return 0
	}
	return score
}

func (r *FileReport) HighCount() int {
	return r.count(SeverityHigh)
}

func (r *FileReport) MediumCount() int {
	return r.count(SeverityMedium)
}

func (r *FileReport) count(sev Severity) int {
	n := 0
	for _, i := range r.Issues {
		if i.Severity == sev {
			n++
		}
	}
	return n
}

// FileFailure is a file that could not be read. It is reported and skipped.
type FileFailure struct {
	Path  string `json:"path" yaml:"path"`
	Error string `json:"error" yaml:"error"`
}

// Summary aggregates the reports of one run in discovery order.
type Summary struct {
	ID         string        `json:"id" yaml:"id"`
	Root       string        `json:"root" yaml:"root"`
	Status     RunStatus     `json:"status" yaml:"status"`
	Reports    []*FileReport `json:"reports" yaml:"reports"`
	Failures   []FileFailure `json:"failures,omitempty" yaml:"failures,omitempty"`
	StartedAt  time.Time     `json:"started_at" yaml:"started_at"`
	FinishedAt time.Time     `json:"finished_at" yaml:"finished_at"`
}

// Empty reports whether discovery found nothing to review.
func (s *Summary) Empty() bool {
	return len(s.Reports) == 0 && len(s.Failures) == 0
}

// BelowScore returns the reports scoring strictly below min.
func (s *Summary) BelowScore(min int) []*FileReport {
	var out []*FileReport
	for _, r := range s.Reports {
		if r.Score < min {
			out = append(out, r)
		}
	}
	return out
}

func (s *Summary) IssueCount() int {
	n := 0
	for _, r := range s.Reports {
		n += len(r.Issues)
	}
	return n
}
