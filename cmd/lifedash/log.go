// ABOUTME: CLI commands for logging daily entries in each life domain.
// ABOUTME: Every log is an upsert: re-logging a day replaces that day's entry.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/lifedash/internal/models"
	"github.com/harperreed/lifedash/internal/storage"
	"github.com/spf13/cobra"
)

var logDate string

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Log a daily entry",
	Long: `Log a daily entry in one of the four life domains.

Each domain keeps at most one entry per day (per project for
discipline). Logging the same day twice replaces the earlier values.

  lifedash log body --sleep 7.5 --quality 4 --energy 4 --activity 3
  lifedash log mind --mood 4 --anxiety 2 --stress 2 --focus 4
  lifedash log finance --income 3200 --expenses 1800 --debts 450
  lifedash log discipline --project writing --minutes 90 --focus 4

Use --date to log a past day (defaults to today).`,
}

var (
	bodySleep    float64
	bodyQuality  int
	bodyTrain    bool
	bodyTrainTyp string
	bodyEnergy   int
	bodyActivity int
)

var logBodyCmd = &cobra.Command{
	Use:   "body",
	Short: "Log physical state for a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		l := &models.BodyLog{
			Date:          resolveDate(),
			SleepHours:    bodySleep,
			SleepQuality:  bodyQuality,
			TrainingDone:  bodyTrain,
			TrainingType:  bodyTrainTyp,
			EnergyLevel:   bodyEnergy,
			ActivityLevel: bodyActivity,
		}
		if err := repo.UpsertBodyLog(l); err != nil {
			return fmt.Errorf("failed to log body: %w", err)
		}

		color.Green("✓ Logged body for %s", l.Date)
		training := "no training"
		if l.TrainingDone {
			training = "trained"
			if l.TrainingType != "" {
				training = "trained (" + l.TrainingType + ")"
			}
		}
		fmt.Printf("  %.1fh sleep, quality %d/5, energy %d/5, %s\n",
			l.SleepHours, l.SleepQuality, l.EnergyLevel, training)
		return nil
	},
}

var (
	mindMood    int
	mindAnxiety int
	mindStress  int
	mindFocus   int
	mindJournal string
)

var logMindCmd = &cobra.Command{
	Use:   "mind",
	Short: "Log mental state for a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		l := &models.MindLog{
			Date:    resolveDate(),
			Mood:    mindMood,
			Anxiety: mindAnxiety,
			Stress:  mindStress,
			Focus:   mindFocus,
			Journal: mindJournal,
		}
		if err := repo.UpsertMindLog(l); err != nil {
			return fmt.Errorf("failed to log mind: %w", err)
		}

		color.Green("✓ Logged mind for %s", l.Date)
		fmt.Printf("  mood %d/5, anxiety %d/5, stress %d/5, focus %d/5\n",
			l.Mood, l.Anxiety, l.Stress, l.Focus)
		return nil
	},
}

var (
	finIncome       float64
	finExpenses     float64
	finDebts        float64
	finInstallments float64
)

var logFinanceCmd = &cobra.Command{
	Use:   "finance",
	Short: "Log financial state for a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		l := &models.FinanceLog{
			Date:         resolveDate(),
			Income:       finIncome,
			Expenses:     finExpenses,
			Debts:        finDebts,
			Installments: finInstallments,
		}
		if err := repo.UpsertFinanceLog(l); err != nil {
			return fmt.Errorf("failed to log finance: %w", err)
		}

		color.Green("✓ Logged finance for %s", l.Date)
		fmt.Printf("  income %.2f, expenses %.2f, debts %.2f\n", l.Income, l.Expenses, l.Debts)
		return nil
	},
}

var (
	discProject string
	discMinutes int
	discFocus   int
)

var logDisciplineCmd = &cobra.Command{
	Use:   "discipline",
	Short: "Log focused work on a project for a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := storage.ResolveProject(repo, discProject)
		if err != nil {
			return err
		}

		l := &models.DisciplineLog{
			Date:            resolveDate(),
			ProjectID:       p.ID,
			MinutesInvested: discMinutes,
			FocusLevel:      discFocus,
		}
		if err := repo.UpsertDisciplineLog(l); err != nil {
			return fmt.Errorf("failed to log discipline: %w", err)
		}

		color.Green("✓ Logged %d min on %s for %s", l.MinutesInvested, p.Name, l.Date)
		fmt.Printf("  focus %d/5\n", l.FocusLevel)
		return nil
	},
}

// resolveDate returns --date or today.
func resolveDate() string {
	if logDate != "" {
		return logDate
	}
	return time.Now().Format(time.DateOnly)
}

func init() {
	logCmd.PersistentFlags().StringVar(&logDate, "date", "", "day being logged (YYYY-MM-DD, default today)")

	logBodyCmd.Flags().Float64Var(&bodySleep, "sleep", 0, "hours slept")
	logBodyCmd.Flags().IntVar(&bodyQuality, "quality", 0, "sleep quality 1-5")
	logBodyCmd.Flags().BoolVar(&bodyTrain, "trained", false, "training session done")
	logBodyCmd.Flags().StringVar(&bodyTrainTyp, "training-type", "", "kind of training (run, lift, yoga, ...)")
	logBodyCmd.Flags().IntVar(&bodyEnergy, "energy", 0, "energy level 1-5")
	logBodyCmd.Flags().IntVar(&bodyActivity, "activity", 0, "activity level 1-5")

	logMindCmd.Flags().IntVar(&mindMood, "mood", 0, "mood 1-5")
	logMindCmd.Flags().IntVar(&mindAnxiety, "anxiety", 0, "anxiety 1-5 (higher is worse)")
	logMindCmd.Flags().IntVar(&mindStress, "stress", 0, "stress 1-5 (higher is worse)")
	logMindCmd.Flags().IntVar(&mindFocus, "focus", 0, "focus 1-5")
	logMindCmd.Flags().StringVar(&mindJournal, "journal", "", "free-form journal text")

	logFinanceCmd.Flags().Float64Var(&finIncome, "income", 0, "income for the day")
	logFinanceCmd.Flags().Float64Var(&finExpenses, "expenses", 0, "expenses for the day")
	logFinanceCmd.Flags().Float64Var(&finDebts, "debts", 0, "outstanding debt total")
	logFinanceCmd.Flags().Float64Var(&finInstallments, "installments", 0, "installment payments due")

	logDisciplineCmd.Flags().StringVar(&discProject, "project", "", "project name, ID, or ID prefix")
	logDisciplineCmd.Flags().IntVar(&discMinutes, "minutes", 0, "minutes of focused work")
	logDisciplineCmd.Flags().IntVar(&discFocus, "focus", 0, "focus level 1-5")
	_ = logDisciplineCmd.MarkFlagRequired("project")

	logCmd.AddCommand(logBodyCmd, logMindCmd, logFinanceCmd, logDisciplineCmd)
	rootCmd.AddCommand(logCmd)
}
