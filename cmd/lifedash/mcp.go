// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs a stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/lifedash/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant
integration. The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "lifedash": {
        "command": "lifedash",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  log_body        Record a day's physical state
  log_mind        Record a day's mental state
  log_finance     Record a day's finances
  log_discipline  Record focused work on a project
  add_project     Create a project
  list_projects   List all projects
  inbox_add       Capture an idea, worry, thought, or task
  inbox_list      List recent inbox items
  inbox_delete    Delete an inbox item
  get_dashboard   Scores and insights across all domains
  list_logs       List recent logs for one domain

AVAILABLE RESOURCES:

  lifedash://dashboard   Scores and insights
  lifedash://recent      Recent logs across all domains
  lifedash://today       Everything logged for today`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(repo)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
