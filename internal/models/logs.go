// ABOUTME: Daily log models for the four life domains.
// ABOUTME: One log per calendar day (per project for discipline), upserted by date.
package models

import (
	"github.com/google/uuid"
)

// BodyLog records one day of physical state. Date is the natural key:
// logging the same day twice replaces the earlier entry.
type BodyLog struct {
	Date          string  `json:"date" yaml:"date"`
	SleepHours    float64 `json:"sleep_hours" yaml:"sleep_hours"`
	SleepQuality  int     `json:"sleep_quality" yaml:"sleep_quality"`
	TrainingDone  bool    `json:"training_done" yaml:"training_done"`
	TrainingType  string  `json:"training_type,omitempty" yaml:"training_type,omitempty"`
	EnergyLevel   int     `json:"energy_level" yaml:"energy_level"`
	ActivityLevel int     `json:"activity_level" yaml:"activity_level"`
}

// Validate checks field types and ranges before any upsert or scoring.
func (l *BodyLog) Validate() error {
	if err := checkDate("date", l.Date); err != nil {
		return err
	}
	if err := checkNonNegative("sleep_hours", l.SleepHours); err != nil {
		return err
	}
	if err := checkScale("sleep_quality", l.SleepQuality); err != nil {
		return err
	}
	if err := checkScale("energy_level", l.EnergyLevel); err != nil {
		return err
	}
	return checkScale("activity_level", l.ActivityLevel)
}

// MindLog records one day of mental state. Anxiety and stress use the
// same 1-5 scale as mood and focus; the score calculator inverts them.
type MindLog struct {
	Date    string `json:"date" yaml:"date"`
	Mood    int    `json:"mood" yaml:"mood"`
	Anxiety int    `json:"anxiety" yaml:"anxiety"`
	Stress  int    `json:"stress" yaml:"stress"`
	Focus   int    `json:"focus" yaml:"focus"`
	Journal string `json:"journal,omitempty" yaml:"journal,omitempty"`
}

// Validate checks field types and ranges before any upsert or scoring.
func (l *MindLog) Validate() error {
	if err := checkDate("date", l.Date); err != nil {
		return err
	}
	if err := checkScale("mood", l.Mood); err != nil {
		return err
	}
	if err := checkScale("anxiety", l.Anxiety); err != nil {
		return err
	}
	if err := checkScale("stress", l.Stress); err != nil {
		return err
	}
	return checkScale("focus", l.Focus)
}

// FinanceLog records one day of financial state. All amounts are
// non-negative; currency is whatever the user logs in.
type FinanceLog struct {
	Date         string  `json:"date" yaml:"date"`
	Income       float64 `json:"income" yaml:"income"`
	Expenses     float64 `json:"expenses" yaml:"expenses"`
	Debts        float64 `json:"debts" yaml:"debts"`
	Installments float64 `json:"installments" yaml:"installments"`
}

// Validate checks field types and ranges before any upsert or scoring.
func (l *FinanceLog) Validate() error {
	if err := checkDate("date", l.Date); err != nil {
		return err
	}
	if err := checkNonNegative("income", l.Income); err != nil {
		return err
	}
	if err := checkNonNegative("expenses", l.Expenses); err != nil {
		return err
	}
	if err := checkNonNegative("debts", l.Debts); err != nil {
		return err
	}
	return checkNonNegative("installments", l.Installments)
}

// DisciplineLog records focused work on a project for one day. The
// natural key is (date, project_id): several projects per day, one
// entry per project per day.
type DisciplineLog struct {
	Date            string    `json:"date" yaml:"date"`
	ProjectID       uuid.UUID `json:"project_id" yaml:"project_id"`
	ProjectName     string    `json:"project_name,omitempty" yaml:"project_name,omitempty"` // resolved at read time
	MinutesInvested int       `json:"minutes_invested" yaml:"minutes_invested"`
	FocusLevel      int       `json:"focus_level" yaml:"focus_level"`
}

// Validate checks field types and ranges. Whether ProjectID references
// an existing project is verified by storage at write time.
func (l *DisciplineLog) Validate() error {
	if err := checkDate("date", l.Date); err != nil {
		return err
	}
	if l.ProjectID == uuid.Nil {
		return &ValidationError{Field: "project_id", Reason: "required"}
	}
	if err := checkNonNegativeInt("minutes_invested", l.MinutesInvested); err != nil {
		return err
	}
	return checkScale("focus_level", l.FocusLevel)
}

// DisciplineDay is the per-date aggregate the dashboard consumes:
// total minutes across all projects and the average focus level.
type DisciplineDay struct {
	Date         string  `json:"date" yaml:"date"`
	TotalMinutes int     `json:"total_minutes" yaml:"total_minutes"`
	AvgFocus     float64 `json:"avg_focus" yaml:"avg_focus"`
}
