// ABOUTME: Root Cobra command for lifedash CLI.
// ABOUTME: Opens and closes the storage repository via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/harperreed/lifedash/internal/config"
	"github.com/harperreed/lifedash/internal/storage"
	"github.com/spf13/cobra"
)

var (
	repo   storage.Repository
	dbPath string
)

var rootCmd = &cobra.Command{
	Use:   "lifedash",
	Short: "Personal life intelligence tracker",
	Long: `Lifedash tracks daily logs across four life domains and computes a
life intelligence summary: a 0-100 score per domain, an overall score,
and insights derived from correlations between domains.

WHAT IT TRACKS:

  Body        sleep hours/quality, training, energy, activity (one log per day)
  Mind        mood, anxiety, stress, focus, journal (one log per day)
  Finance     income, expenses, debts, installments (one log per day)
  Discipline  minutes of focused work per project per day

Logging a day again replaces that day's entry -- there is never more
than one log per day per domain (per project for discipline).

QUICK START:

  $ lifedash log body --sleep 7.5 --quality 4 --energy 4 --activity 3
  $ lifedash log mind --mood 4 --anxiety 2 --stress 2 --focus 4
  $ lifedash log finance --income 3200 --debts 450
  $ lifedash project add writing --goal 5
  $ lifedash log discipline --project writing --minutes 90 --focus 4
  $ lifedash dashboard                  # Scores and insights

INBOX:

  Capture anything that crosses your mind and get it out of your head:

  $ lifedash inbox add idea "turn the garage into a studio"
  $ lifedash inbox list
  $ lifedash inbox rm abc12345

MCP INTEGRATION:

  Run 'lifedash mcp' to start the Model Context Protocol server for use
  with Claude Desktop or other MCP-compatible AI assistants:

  {
    "mcpServers": {
      "lifedash": { "command": "lifedash", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Logs are stored in SQLite at ~/.local/share/lifedash/lifedash.db.
  Override with --db, LIFEDASH_DB_PATH, or the config file at
  ~/.config/lifedash/config.json.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip storage init for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		path := cfg.GetDBPath()
		if dbPath != "" {
			path = config.ExpandPath(dbPath)
		}

		repo, err = storage.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			return repo.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to SQLite database (overrides config and env)")
}
