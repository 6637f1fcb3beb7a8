// ABOUTME: CLI command for listing recent logs per domain.
// ABOUTME: Renders one line per log, most recent date first.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var listLimit int

var listCmd = &cobra.Command{
	Use:       "list <domain>",
	Aliases:   []string{"ls", "l"},
	Short:     "List recent logs for a domain",
	Long: `List recent logs for one of the four domains, most recent day first.

DOMAINS:

  body        sleep, training, energy, activity
  mind        mood, anxiety, stress, focus
  finance     income, expenses, debts, installments
  discipline  minutes and focus per project per day

EXAMPLES:

  lifedash list body             # Last 30 body logs
  lifedash list mind -n 7        # Last week of mind logs
  lifedash list discipline       # Per-project discipline entries`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"body", "mind", "finance", "discipline"},
	RunE: func(cmd *cobra.Command, args []string) error {
		faint := color.New(color.Faint)

		switch args[0] {
		case "body":
			logs, err := repo.ListBodyLogs(listLimit)
			if err != nil {
				return fmt.Errorf("failed to list body logs: %w", err)
			}
			if len(logs) == 0 {
				fmt.Println("No body logs found.")
				return nil
			}
			for _, l := range logs {
				training := ""
				if l.TrainingDone {
					training = " trained"
					if l.TrainingType != "" {
						training = " " + l.TrainingType
					}
				}
				fmt.Printf("%s sleep %.1fh q%d energy %d/5 activity %d/5%s\n",
					faint.Sprint(l.Date), l.SleepHours, l.SleepQuality, l.EnergyLevel, l.ActivityLevel, training)
			}

		case "mind":
			logs, err := repo.ListMindLogs(listLimit)
			if err != nil {
				return fmt.Errorf("failed to list mind logs: %w", err)
			}
			if len(logs) == 0 {
				fmt.Println("No mind logs found.")
				return nil
			}
			for _, l := range logs {
				journal := ""
				if l.Journal != "" {
					journal = faint.Sprintf(" (%s)", truncate(l.Journal, 40))
				}
				fmt.Printf("%s mood %d anxiety %d stress %d focus %d%s\n",
					faint.Sprint(l.Date), l.Mood, l.Anxiety, l.Stress, l.Focus, journal)
			}

		case "finance":
			logs, err := repo.ListFinanceLogs(listLimit)
			if err != nil {
				return fmt.Errorf("failed to list finance logs: %w", err)
			}
			if len(logs) == 0 {
				fmt.Println("No finance logs found.")
				return nil
			}
			for _, l := range logs {
				fmt.Printf("%s income %.2f expenses %.2f debts %.2f installments %.2f\n",
					faint.Sprint(l.Date), l.Income, l.Expenses, l.Debts, l.Installments)
			}

		case "discipline":
			logs, err := repo.ListDisciplineLogs(listLimit)
			if err != nil {
				return fmt.Errorf("failed to list discipline logs: %w", err)
			}
			if len(logs) == 0 {
				fmt.Println("No discipline logs found.")
				return nil
			}
			for _, l := range logs {
				fmt.Printf("%s %s %d min focus %d/5\n",
					faint.Sprint(l.Date), padRight(l.ProjectName, 16), l.MinutesInvested, l.FocusLevel)
			}

		default:
			return fmt.Errorf("unknown domain: %s (want body, mind, finance, or discipline)", args[0])
		}
		return nil
	},
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func init() {
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 30, "max results")
	rootCmd.AddCommand(listCmd)
}
