package sdk

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/felixgeelhaar/fortify/retry"
	"github.com/felixgeelhaar/mcp-go/client"

	"github.com/felixgeelhaar/e2elint/pkg/domain/review"
	"github.com/felixgeelhaar/e2elint/pkg/domain/review/rules"
	"github.com/felixgeelhaar/e2elint/pkg/domain/role"
)

const rulesURI = "e2elint://rules"

// Client is a typed Go client for the e2elint MCP server.
type Client struct {
	mcp      *client.Client
	retryCfg retry.Config
	timeout  time.Duration
}

// NewClient creates a new SDK client wrapping the given MCP transport.
func NewClient(transport client.Transport, opts ...Option) *Client {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return &Client{
		mcp:     client.New(transport, client.WithTimeout(o.timeout)),
		timeout: o.timeout,
		retryCfg: retry.Config{
			MaxAttempts:   o.maxAttempts,
			InitialDelay:  o.initialDelay,
			BackoffPolicy: retry.BackoffExponential,
		},
	}
}

// Initialize performs the MCP initialize handshake.
func (c *Client) Initialize(ctx context.Context) (*client.ServerInfo, error) {
	return c.mcp.Initialize(ctx)
}

// Close closes the underlying transport.
func (c *Client) Close() error {
	return c.mcp.Close()
}

// call invokes a tool, retrying transport failures. Tool errors are not retried.
func (c *Client) call(ctx context.Context, tool string, args map[string]any) (*client.ToolResult, error) {
	r := retry.New[*client.ToolResult](c.retryCfg)
	result, err := r.Do(ctx, func(ctx context.Context) (*client.ToolResult, error) {
		return c.mcp.CallTool(ctx, tool, args)
	})
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", tool, err)
	}
	if result.IsError {
		msg := ""
		if len(result.Content) > 0 {
			msg = result.Content[0].Text
		}
		return nil, &ToolError{Tool: tool, Message: msg}
	}
	return result, nil
}

func unmarshalText[T any](result *client.ToolResult) (*T, error) {
	text, err := textResult(result)
	if err != nil {
		return nil, err
	}
	var v T
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	return &v, nil
}

func textResult(result *client.ToolResult) (string, error) {
	if len(result.Content) == 0 {
		return "", ErrNoContent
	}
	return result.Content[0].Text, nil
}

// GetRules reads the rule catalog resource.
func (c *Client) GetRules(ctx context.Context) (*RulesInfo, error) {
	rc, err := c.mcp.ReadResource(ctx, rulesURI)
	if err != nil {
		return nil, fmt.Errorf("read rules resource: %w", err)
	}
	var info RulesInfo
	if err := json.Unmarshal([]byte(rc.Text), &info); err != nil {
		return nil, fmt.Errorf("unmarshal rules: %w", err)
	}
	return &info, nil
}

// Compatible returns nil when the server's schema major version matches
// SupportedSchemaMajor.
func (c *Client) Compatible(ctx context.Context) error {
	info, err := c.GetRules(ctx)
	if err != nil {
		return fmt.Errorf("check compatibility: %w", err)
	}
	serverMajor := majorVersion(info.SchemaVersion)
	if serverMajor != SupportedSchemaMajor {
		return fmt.Errorf("%w: server=%s (major %s), sdk supports major %s",
			ErrIncompatibleSchema, info.SchemaVersion, serverMajor, SupportedSchemaMajor)
	}
	return nil
}

func majorVersion(v string) string {
	for i, ch := range v {
		if ch == '.' {
			return v[:i]
		}
	}
	return v
}

// Review reviews every test file under req.Path.
func (c *Client) Review(ctx context.Context, req ReviewRequest) (*review.Summary, error) {
	args := map[string]any{}
	if req.Path != "" {
		args["path"] = req.Path
	}
	if req.IncludeJS {
		args["include_js"] = true
	}
	if len(req.Exclude) > 0 {
		args["exclude"] = req.Exclude
	}
	res, err := c.call(ctx, "e2elint_review", args)
	if err != nil {
		return nil, err
	}
	return unmarshalText[review.Summary](res)
}

// ReviewFile reviews a single file on the server's filesystem.
func (c *Client) ReviewFile(ctx context.Context, path string) (*review.FileReport, error) {
	res, err := c.call(ctx, "e2elint_review_file", map[string]any{"path": path})
	if err != nil {
		return nil, err
	}
	return unmarshalText[review.FileReport](res)
}

// ReviewContent reviews content as if it were saved at path.
func (c *Client) ReviewContent(ctx context.Context, path, content string) (*review.FileReport, error) {
	res, err := c.call(ctx, "e2elint_review_content", map[string]any{"path": path, "content": content})
	if err != nil {
		return nil, err
	}
	return unmarshalText[review.FileReport](res)
}

// DetectRole classifies path.
func (c *Client) DetectRole(ctx context.Context, path string) (role.Role, error) {
	res, err := c.call(ctx, "e2elint_detect_role", map[string]any{"path": path})
	if err != nil {
		return "", err
	}
	out, err := unmarshalText[struct {
		Role role.Role `json:"role"`
	}](res)
	if err != nil {
		return "", err
	}
	return out.Role, nil
}

// Rules lists the rules the server applies.
func (c *Client) Rules(ctx context.Context) ([]rules.Entry, error) {
	res, err := c.call(ctx, "e2elint_rules", nil)
	if err != nil {
		return nil, err
	}
	entries, err := unmarshalText[[]rules.Entry](res)
	if err != nil {
		return nil, err
	}
	return *entries, nil
}
