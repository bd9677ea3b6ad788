package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	inframcp "github.com/felixgeelhaar/e2elint/internal/infrastructure/mcp"
)

var (
	mcpTransport string
	mcpAddr      string
)

var mcpCmd = &cobra.Command{
	Use:   "mcp [path]",
	Short: "Start the e2elint MCP server",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		transport := strings.ToLower(mcpTransport)
		switch transport {
		case "stdio", "", "http", "ws", "websocket":
		default:
			return NewCLIError(fmt.Sprintf("unsupported transport: %s", mcpTransport), "Use one of: stdio, http, ws", nil)
		}

		inframcp.Version, inframcp.BuildCommit, inframcp.BuildDate = Version, Commit, Date
		server, err := inframcp.NewServer(targetPath(args), newLogger(verbose))
		if err != nil {
			return err
		}
		if os.Getenv("E2ELINT_SKIP_MCP_START") == "true" {
			return nil
		}

		parent := cmd.Context()
		if parent == nil {
			parent = context.Background()
		}
		ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
		defer stop()

		switch transport {
		case "http":
			err = server.ServeHTTP(ctx, mcpAddr)
		case "ws", "websocket":
			err = server.ServeWebSocket(ctx, mcpAddr)
		default:
			err = server.ServeStdio(ctx)
		}
		if err != nil && ctx.Err() == nil {
			return fmt.Errorf("mcp server failed: %w", err)
		}
		return nil
	},
}

func init() {
	mcpCmd.Flags().StringVar(&mcpTransport, "transport", "stdio", "Transport to use (stdio, http, ws)")
	mcpCmd.Flags().StringVar(&mcpAddr, "addr", ":8080", "Address for http/ws transports")
	RootCmd.AddCommand(mcpCmd)
}
