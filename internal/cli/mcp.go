package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"essaylens/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server exposing the detect_text
tool.

By default, the server communicates over stdio using JSON-RPC and can
be used with Claude Desktop and other MCP-compatible AI assistants.

Use --port to start an HTTP server instead.

Examples:
  # Stdio mode (default)
  essaylens mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  essaylens mcp serve --port 8081`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	a, err := buildApp()
	if err != nil {
		return err
	}
	defer a.log.Sync() //nolint:errcheck

	server, err := mcp.NewServer(a.engine)
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
