// ABOUTME: CLI commands for the capture inbox.
// ABOUTME: Add, list, and delete ideas, worries, thoughts, and tasks.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/lifedash/internal/models"
	"github.com/spf13/cobra"
)

var inboxLimit int

var inboxCmd = &cobra.Command{
	Use:   "inbox",
	Short: "Capture and review quick notes",
	Long: `The inbox is a frictionless capture list: ideas, worries, thoughts,
and tasks, out of your head and into the log. Items stay until you
delete them by id.

  lifedash inbox add idea "turn the garage into a studio"
  lifedash inbox add worry "rent increase next month"
  lifedash inbox list
  lifedash inbox rm abc12345`,
}

var inboxAddCmd = &cobra.Command{
	Use:   "add <type> <content>",
	Short: "Capture an inbox item",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		itemType := args[0]
		if !models.IsValidInboxItemType(itemType) {
			return fmt.Errorf("unknown inbox type: %s\nValid types: idea, worry, thought, task", itemType)
		}

		content := strings.Join(args[1:], " ")
		i := models.NewInboxItem(content, models.InboxItemType(itemType))
		if err := repo.CreateInboxItem(i); err != nil {
			return fmt.Errorf("failed to add inbox item: %w", err)
		}

		color.Green("✓ Captured %s", itemType)
		fmt.Printf("  %s %s\n",
			color.New(color.Faint).Sprint(i.ID.String()[:8]), truncate(content, 60))
		return nil
	},
}

var inboxListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List inbox items",
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := repo.ListInboxItems(inboxLimit)
		if err != nil {
			return fmt.Errorf("failed to list inbox: %w", err)
		}
		if len(items) == 0 {
			fmt.Println("Inbox is empty.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, i := range items {
			fmt.Printf("%s %s %s %s\n",
				faint.Sprint(i.ID.String()[:8]),
				faint.Sprint(i.CreatedAt.Format("2006-01-02 15:04")),
				padRight(string(i.Type), 8),
				truncate(i.Content, 50))
		}
		return nil
	},
}

var inboxRmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete", "del"},
	Short:   "Delete an inbox item",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := repo.DeleteInboxItem(args[0]); err != nil {
			return fmt.Errorf("failed to delete inbox item: %w", err)
		}
		color.Yellow("✗ Deleted %s", args[0])
		return nil
	},
}

func init() {
	inboxListCmd.Flags().IntVarP(&inboxLimit, "limit", "n", 20, "max results")
	inboxCmd.AddCommand(inboxAddCmd, inboxListCmd, inboxRmCmd)
	rootCmd.AddCommand(inboxCmd)
}
