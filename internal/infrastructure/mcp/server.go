package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/felixgeelhaar/mcp-go"

	"github.com/felixgeelhaar/e2elint/internal/infrastructure/config"
	"github.com/felixgeelhaar/e2elint/internal/infrastructure/wiring"
	"github.com/felixgeelhaar/e2elint/pkg/application"
	"github.com/felixgeelhaar/e2elint/pkg/domain/review/rules"
	"github.com/felixgeelhaar/e2elint/pkg/domain/role"
)

type Server struct {
	mcpServer *mcp.Server
	reviewSvc *application.ReviewService
	root      string
}

var (
	Version     = "dev"
	BuildCommit = "unknown"
	BuildDate   = "unknown"
)

// mcpErr returns a user-friendly error for MCP clients.
func mcpErr(friendly string) error {
	return fmt.Errorf("%s", friendly)
}

// NewServer exposes reviews of the project under root. Relative paths in tool
// arguments are resolved against root.
func NewServer(root string, logger *slog.Logger) (*Server, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve root: %w", err)
	}
	services := wiring.BuildAppServices(logger)

	info := mcp.ServerInfo{
		Name:    "e2elint",
		Version: Version,
	}

	s := &Server{
		mcpServer: mcp.NewServer(info,
			mcp.WithTitle("e2elint MCP Server"),
			mcp.WithDescription("e2elint reviews Playwright test suites for locator, wait and layering problems."),
			mcp.WithWebsiteURL("https://github.com/felixgeelhaar/e2elint"),
			mcp.WithBuildInfo(BuildCommit, BuildDate),
			mcp.WithInstructions("Use e2elint_review on a directory, or e2elint_review_content on unsaved code, and act on the suggestions of HIGH issues first."),
		),
		reviewSvc: services.Review,
		root:      abs,
	}

	s.registerTools()
	s.registerRulesResource()
	return s, nil
}

type ReviewArgs struct {
	Path      string   `json:"path" jsonschema:"description=File or directory to review; defaults to the project root"`
	IncludeJS bool     `json:"include_js" jsonschema:"description=Also review .spec.js and .test.js files"`
	Exclude   []string `json:"exclude" jsonschema:"description=Glob patterns of files to skip"`
}

type ReviewFileArgs struct {
	Path string `json:"path" jsonschema:"required,description=Path of the file to review"`
}

type ReviewContentArgs struct {
	Path    string `json:"path" jsonschema:"required,description=Path the content would be saved at; it determines the file role"`
	Content string `json:"content" jsonschema:"required,description=Source code to review"`
}

type DetectRoleArgs struct {
	Path string `json:"path" jsonschema:"required,description=Path to classify"`
}

func (s *Server) registerTools() {
	s.mcpServer.Tool("e2elint_review").
		Description("Review every Playwright test file under a path and score each one out of 10").
		Handler(s.handleReview)

	s.mcpServer.Tool("e2elint_review_file").
		Description("Review a single file and return its issues, positives and score").
		Handler(s.handleReviewFile)

	s.mcpServer.Tool("e2elint_review_content").
		Description("Review source code that has not been saved yet").
		Handler(s.handleReviewContent)

	s.mcpServer.Tool("e2elint_detect_role").
		Description("Classify a path as test-spec, page-object or other").
		Handler(s.handleDetectRole)

	s.mcpServer.Tool("e2elint_rules").
		Description("List the rules e2elint applies").
		Handler(s.handleRules)
}

func (s *Server) resolve(path string) string {
	if path == "" {
		return s.root
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(s.root, path)
}

func (s *Server) handleReview(ctx context.Context, args ReviewArgs) (any, error) {
	target := s.resolve(args.Path)
	cfg, err := config.Load(target, "")
	if err != nil {
		return nil, mcpErr("Failed to load .e2elint.yaml. Fix the configuration file and retry.")
	}
	opts := application.ReviewOptions{
		IncludeJS: cfg.IncludeJS || args.IncludeJS,
		Exclude:   append(cfg.Exclude, args.Exclude...),
		Workers:   cfg.Workers,
	}
	summary, err := s.reviewSvc.Run(ctx, target, opts)
	if err != nil {
		return nil, mcpErr("Review was cancelled before it completed.")
	}
	return summary, nil
}

func (s *Server) handleReviewFile(ctx context.Context, args ReviewFileArgs) (any, error) {
	if args.Path == "" {
		return nil, mcpErr("A file path is required.")
	}
	path := s.resolve(args.Path)
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return nil, mcpErr("Path is a directory. Use e2elint_review for directories.")
	}
	report, err := s.reviewSvc.ReviewFile(path)
	if err != nil {
		return nil, mcpErr("Failed to read the file. Check that the path exists and is readable.")
	}
	return report, nil
}

func (s *Server) handleReviewContent(ctx context.Context, args ReviewContentArgs) (any, error) {
	if args.Path == "" {
		return nil, mcpErr("A path is required to determine the file role.")
	}
	return s.reviewSvc.ReviewContent(s.resolve(args.Path), args.Content), nil
}

type roleResult struct {
	Path string    `json:"path"`
	Role role.Role `json:"role"`
}

func (s *Server) handleDetectRole(ctx context.Context, args DetectRoleArgs) (any, error) {
	if args.Path == "" {
		return nil, mcpErr("A path is required.")
	}
	path := s.resolve(args.Path)
	return roleResult{Path: path, Role: role.Detect(path)}, nil
}

func (s *Server) handleRules(ctx context.Context, args struct{}) (any, error) {
	return rules.Catalog(), nil
}

func (s *Server) ServeStdio(ctx context.Context) error {
	return mcp.ServeStdio(ctx, s.mcpServer)
}

func (s *Server) ServeHTTP(ctx context.Context, addr string) error {
	return mcp.ServeHTTP(ctx, s.mcpServer, addr, mcp.WithDefaultCORS())
}

func (s *Server) ServeWebSocket(ctx context.Context, addr string) error {
	return mcp.ServeWebSocket(ctx, s.mcpServer, addr)
}
