package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RandomEggs/randomEggsTracker/internal/adapters/mcp"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol (MCP) server for integration with AI
assistants. The server exposes the timer and the shared task list as tools
over stdio.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// stdout belongs to the protocol; banners go to stderr.
		fmt.Fprintln(os.Stderr, "Starting MCP server on stdio. Press Ctrl+C to stop.")

		ctx := setupSignalHandler()

		server := mcp.NewServer(app.state)
		if err := server.Start(ctx); err != nil {
			return fmt.Errorf("MCP server error: %w", err)
		}

		return nil
	},
}
