// ABOUTME: CLI commands for exporting and importing life log data.
// ABOUTME: Supports JSON and YAML export; JSON import for restore.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harperreed/lifedash/internal/storage"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export life log data",
	Long: `Export all logged data in various formats.

FORMATS:

  json   Full JSON export (suitable for backup/restore)
  yaml   YAML export (human-readable)

EXAMPLES:

  lifedash export json                 # Export all data as JSON
  lifedash export json -o backup.json  # Save to file
  lifedash export yaml                 # Export as YAML`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml"},
	RunE: func(cmd *cobra.Command, args []string) error {
		all, err := repo.GetAllData()
		if err != nil {
			return fmt.Errorf("failed to export: %w", err)
		}

		var data []byte
		switch args[0] {
		case "json":
			data, err = json.MarshalIndent(all, "", "  ")
		case "yaml":
			data, err = yaml.Marshal(all)
		default:
			return fmt.Errorf("unknown format: %s (want json or yaml)", args[0])
		}
		if err != nil {
			return fmt.Errorf("failed to encode export: %w", err)
		}

		if exportOutput == "" {
			fmt.Print(string(data))
			return nil
		}

		if err := os.WriteFile(exportOutput, data, 0600); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportOutput, err)
		}
		color.Green("✓ Exported to %s", exportOutput)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import life log data from a JSON export",
	Long: `Import data from a JSON export file. Projects are restored first so
discipline logs can reference them. Log imports are upserts, so
importing into a database that already has entries for the same dates
replaces those days.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		var data storage.ExportData
		if err := json.Unmarshal(raw, &data); err != nil {
			return fmt.Errorf("failed to parse %s: %w", args[0], err)
		}
		if err := repo.ImportData(&data); err != nil {
			return fmt.Errorf("failed to import: %w", err)
		}

		color.Green("✓ Imported %s", args[0])
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(exportCmd, importCmd)
}
