package sdk

import "github.com/felixgeelhaar/e2elint/pkg/domain/review/rules"

// ReviewRequest selects what e2elint_review reviews. Path is resolved against
// the server's root when relative.
type ReviewRequest struct {
	Path      string
	IncludeJS bool
	Exclude   []string
}

// RulesInfo is the content of the e2elint://rules resource.
type RulesInfo struct {
	SchemaVersion string         `json:"schema_version"`
	ServerVersion string         `json:"server_version"`
	MaxScore      int            `json:"max_score"`
	Penalties     map[string]int `json:"penalties"`
	Rules         []rules.Entry  `json:"rules"`
}
