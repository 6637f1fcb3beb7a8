// ABOUTME: CLI commands for managing projects.
// ABOUTME: Projects anchor discipline logs; add and list only, no delete.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/lifedash/internal/models"
	"github.com/spf13/cobra"
)

var projectGoal float64

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects",
	Long: `Manage the projects discipline logs reference.

  lifedash project add writing --goal 5    # 5 hours/week goal
  lifedash project list`,
}

var projectAddCmd = &cobra.Command{
	Use:   "add <name> [goal-hours]",
	Short: "Create a project",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		goal := projectGoal
		if len(args) == 2 {
			g, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid goal hours: %s", args[1])
			}
			goal = g
		}

		p := models.NewProject(args[0], goal)
		if err := repo.CreateProject(p); err != nil {
			return fmt.Errorf("failed to create project: %w", err)
		}

		color.Green("✓ Created project %s", p.Name)
		fmt.Printf("  %s %.1fh/week goal\n",
			color.New(color.Faint).Sprint(p.ID.String()[:8]), p.WeeklyGoalHours)
		return nil
	},
}

var projectListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		projects, err := repo.ListProjects()
		if err != nil {
			return fmt.Errorf("failed to list projects: %w", err)
		}
		if len(projects) == 0 {
			fmt.Println("No projects found. Create one with 'lifedash project add <name>'.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, p := range projects {
			fmt.Printf("%s %s %.1fh/week\n",
				faint.Sprint(p.ID.String()[:8]), padRight(p.Name, 20), p.WeeklyGoalHours)
		}
		return nil
	},
}

func init() {
	projectAddCmd.Flags().Float64Var(&projectGoal, "goal", 0, "weekly goal in hours")
	projectCmd.AddCommand(projectAddCmd, projectListCmd)
	rootCmd.AddCommand(projectCmd)
}
