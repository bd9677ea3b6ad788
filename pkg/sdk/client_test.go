package sdk

import (
	"fmt"
	"strings"
	"testing"

	"github.com/felixgeelhaar/mcp-go/client"

	"github.com/felixgeelhaar/e2elint/pkg/domain/review"
)

func TestTextResult(t *testing.T) {
	t.Run("extracts text", func(t *testing.T) {
		r := &client.ToolResult{
			Content: []client.ContentItem{{Type: "text", Text: "hello"}},
		}
		got, err := textResult(r)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "hello" {
			t.Fatalf("got %q, want %q", got, "hello")
		}
	})

	t.Run("empty content", func(t *testing.T) {
		r := &client.ToolResult{}
		_, err := textResult(r)
		if err != ErrNoContent {
			t.Fatalf("got %v, want ErrNoContent", err)
		}
	})
}

func TestUnmarshalText(t *testing.T) {
	t.Run("valid JSON", func(t *testing.T) {
		r := &client.ToolResult{
			Content: []client.ContentItem{{Type: "text", Text: `{"path":"a.spec.ts","role":"test-spec","score":7}`}},
		}
		report, err := unmarshalText[review.FileReport](r)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.Path != "a.spec.ts" || report.Score != 7 {
			t.Fatalf("unexpected report: %+v", report)
		}
	})

	t.Run("invalid JSON", func(t *testing.T) {
		r := &client.ToolResult{
			Content: []client.ContentItem{{Type: "text", Text: "not json"}},
		}
		if _, err := unmarshalText[review.FileReport](r); err == nil {
			t.Fatal("expected error for invalid JSON")
		}
	})

	t.Run("empty content", func(t *testing.T) {
		r := &client.ToolResult{}
		if _, err := unmarshalText[review.FileReport](r); err != ErrNoContent {
			t.Fatalf("got %v, want ErrNoContent", err)
		}
	})
}

func TestMajorVersion(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1.0.0", "1"},
		{"2.3.4", "2"},
		{"10.0.1", "10"},
		{"3", "3"},
	}
	for _, tt := range tests {
		if got := majorVersion(tt.input); got != tt.want {
			t.Errorf("majorVersion(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestToolError(t *testing.T) {
	e := &ToolError{Tool: "e2elint_review", Message: "bad"}
	if !strings.Contains(e.Error(), "e2elint_review") {
		t.Fatalf("error should contain tool name: %s", e.Error())
	}
	if ErrNoContent.Error() != "e2elint: empty tool result" {
		t.Errorf("unexpected: %s", ErrNoContent.Error())
	}
	if !IsToolError(fmt.Errorf("review: %w", e)) {
		t.Error("expected wrapped ToolError to be detected")
	}
	if IsToolError(ErrNoContent) {
		t.Error("ErrNoContent is not a tool error")
	}
}
