// ABOUTME: CLI command rendering the life dashboard.
// ABOUTME: Shows domain scores, the overall score, and fired insights.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/lifedash/internal/dashboard"
	"github.com/harperreed/lifedash/internal/insight"
	"github.com/spf13/cobra"
)

var dashboardJSON bool

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash", "d"},
	Short:   "Show the life dashboard",
	Long: `Show the life intelligence dashboard.

Each domain gets a 0-100 score computed from its most recent log, plus
an overall average. Domains with no logs score 0 -- no data earns no
credit. Insights appear when correlations between domains are strong
enough over the last 30 days (for example, sleep tracking focus).

Use --json for the raw payload the scores and insights are built from.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := dashboard.Build(repo)
		if err != nil {
			return fmt.Errorf("failed to build dashboard: %w", err)
		}

		if dashboardJSON {
			out, err := json.MarshalIndent(data, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		}

		if data.Empty() {
			fmt.Println("Nothing logged yet. Log a day in any domain to see scores:")
			fmt.Println("  lifedash log body --sleep 7.5 --quality 4 --energy 4 --activity 3")
			return nil
		}

		s := data.Scores
		fmt.Println()
		printScore("Body", s.Body)
		printScore("Mind", s.Mind)
		printScore("Finance", s.Finance)
		printScore("Discipline", s.Discipline)
		fmt.Println()
		printScore("Overall", s.Overall)
		fmt.Println()

		if len(data.Insights) == 0 {
			color.New(color.Faint).Println("No insights yet -- keep logging, correlations need about a week of data.")
			return nil
		}

		for _, in := range data.Insights {
			if in.Polarity == insight.Positive {
				color.Green("★ %s", in.Title)
			} else {
				color.Yellow("▲ %s", in.Title)
			}
			fmt.Printf("  %s\n", in.Body)
		}
		return nil
	},
}

// printScore renders one score line with a simple bar.
func printScore(label string, score int) {
	bar := renderBar(score)
	c := color.New(color.FgGreen)
	switch {
	case score < 40:
		c = color.New(color.FgRed)
	case score < 70:
		c = color.New(color.FgYellow)
	}
	fmt.Printf("  %s %s %s\n", padRight(label, 11), c.Sprint(bar), c.Sprintf("%3d", score))
}

func renderBar(score int) string {
	filled := score / 5 // 20 cells
	bar := ""
	for i := 0; i < 20; i++ {
		if i < filled {
			bar += "█"
		} else {
			bar += "░"
		}
	}
	return bar
}

func init() {
	dashboardCmd.Flags().BoolVar(&dashboardJSON, "json", false, "print the raw dashboard payload as JSON")
	rootCmd.AddCommand(dashboardCmd)
}
