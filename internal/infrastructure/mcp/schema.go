package mcp

import (
	"context"
	"encoding/json"

	mcplib "github.com/felixgeelhaar/mcp-go"

	"github.com/felixgeelhaar/e2elint/pkg/domain/review"
	"github.com/felixgeelhaar/e2elint/pkg/domain/review/rules"
)

// SchemaVersion is the current MCP tool schema version (semver).
const SchemaVersion = "1.0.0"

const rulesURI = "e2elint://rules"

type rulesResponse struct {
	SchemaVersion string         `json:"schema_version"`
	ServerVersion string         `json:"server_version"`
	MaxScore      int            `json:"max_score"`
	Penalties     map[string]int `json:"penalties"`
	Rules         []rules.Entry  `json:"rules"`
}

func (s *Server) registerRulesResource() {
	s.mcpServer.Resource(rulesURI).
		Name(rulesURI).
		Description("Rule catalog and scoring model").
		MimeType("application/json").
		Handler(func(_ context.Context, _ string, _ map[string]string) (*mcplib.ResourceContent, error) {
			resp := rulesResponse{
				SchemaVersion: SchemaVersion,
				ServerVersion: Version,
				MaxScore:      review.MaxScore,
				Penalties: map[string]int{
					string(review.SeverityHigh):   review.SeverityHigh.Penalty(),
					string(review.SeverityMedium): review.SeverityMedium.Penalty(),
				},
				Rules: rules.Catalog(),
			}
			data, err := json.Marshal(resp)
			if err != nil {
				return nil, err
			}
			return &mcplib.ResourceContent{
				URI:      rulesURI,
				MimeType: "application/json",
				Text:     string(data),
			}, nil
		})
}
