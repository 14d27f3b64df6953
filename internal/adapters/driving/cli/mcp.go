package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/tiler/internal/adapters/driving/mcp"
	"github.com/custodia-labs/tiler/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can calibrate
drawings, measure distances and plan print grids.

By default, the server communicates over stdio using JSON-RPC.
Use --port to start an HTTP server instead.

Settings edits made while the server runs are picked up automatically.

Examples:
  # Stdio mode (default)
  tiler mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  tiler mcp serve --port 8080

Client configuration:
  {
    "mcpServers": {
      "tiler": {
        "command": "/path/to/tiler",
        "args": ["mcp", "serve"]
      }
    }
  }`,
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

	ports := &mcp.Ports{
		Scale:    scaleService,
		Tiling:   tilingService,
		Settings: settingsService,
		Project:  projectService,
		Document: documentService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(commandContext(cmd))
	defer cancel()
	watchConfig(ctx)

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(ctx, addr)
	}

	return server.Run(ctx)
}

// watchConfig reloads settings in the background until ctx is done.
func watchConfig(ctx context.Context) {
	w := configWatcher
	if w == nil {
		return
	}
	go func() {
		err := w.Watch(ctx, func(err error) {
			if err == nil {
				logger.Info("Config reloaded")
			}
		})
		if err != nil {
			logger.Warn("Config watcher stopped: %v", err)
		}
	}()
}
