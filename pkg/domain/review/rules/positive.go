package rules

import "github.com/felixgeelhaar/e2elint/pkg/domain/review"

// SignalRule reports a Signal when it matches the line.
type SignalRule struct {
	Signal Signal
}

func (r *SignalRule) ID() string { return r.Signal.ID }

func (r *SignalRule) DetectLine(line review.Line) (review.Positive, bool) {
	if !r.Signal.Match.MatchString(line.Text) {
		return review.Positive{}, false
	}
	return review.Positive{
		RuleID:      r.Signal.ID,
		Description: r.Signal.Description,
		Line:        line.Number,
	}, true
}
