package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	inframcp "github.com/felixgeelhaar/speclint/internal/infrastructure/mcp"
)

var (
	mcpTransport string
	mcpAddr      string
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the speclint MCP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		if os.Getenv("SPECLINT_SKIP_MCP_START") == "true" {
			return nil
		}

		services, err := loadServices(cmd)
		if err != nil {
			return err
		}
		server, err := inframcp.NewServer(services)
		if err != nil {
			return fmt.Errorf("failed to initialize server: %w", err)
		}

		ctx := cmd.Context()
		switch strings.ToLower(mcpTransport) {
		case "stdio", "":
			return server.ServeStdio(ctx)
		case "http":
			return server.ServeHTTP(ctx, mcpAddr)
		case "ws", "websocket":
			return server.ServeWebSocket(ctx, mcpAddr)
		default:
			return NewCLIError(fmt.Sprintf("unsupported transport: %s", mcpTransport), "Use --transport stdio, http or ws", nil)
		}
	},
}

func init() {
	mcpCmd.Flags().StringVar(&mcpTransport, "transport", "stdio", "Transport to use (stdio, http, ws)")
	mcpCmd.Flags().StringVar(&mcpAddr, "addr", ":8080", "Address for http/ws transports")
	RootCmd.AddCommand(mcpCmd)
}
