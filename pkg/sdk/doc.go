// Package sdk provides a typed Go client for the e2elint MCP server.
//
// The client wraps mcp-go/client.CallTool with one method per MCP tool and
// retries transport failures via fortify. Results decode into the same
// review types the linter produces.
//
// Usage:
//
//	transport, _ := client.NewStdioTransport("e2elint", "mcp")
//	c := sdk.NewClient(transport)
//	defer c.Close()
//
//	_, _ = c.Initialize(ctx)
//	summary, _ := c.Review(ctx, sdk.ReviewRequest{Path: "tests"})
//	for _, r := range summary.Reports {
//		fmt.Println(r.Path, r.Score)
//	}
package sdk
