// ABOUTME: Upsert and query operations for body, mind, and finance logs.
// ABOUTME: Each date holds at most one row per domain; conflicts overwrite.
package storage

import (
	"fmt"

	"github.com/harperreed/lifedash/internal/models"
)

// UpsertBodyLog inserts or replaces the body log for its date.
// The conflict update runs in a single statement, so a replacement is
// atomic and last-write-wins.
func (d *DB) UpsertBodyLog(l *models.BodyLog) error {
	if err := l.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO body_logs (date, sleep_hours, sleep_quality, training_done, training_type, energy_level, activity_level)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			sleep_hours = excluded.sleep_hours,
			sleep_quality = excluded.sleep_quality,
			training_done = excluded.training_done,
			training_type = excluded.training_type,
			energy_level = excluded.energy_level,
			activity_level = excluded.activity_level
	`
	_, err := d.db.Exec(query,
		l.Date,
		l.SleepHours,
		l.SleepQuality,
		l.TrainingDone,
		l.TrainingType,
		l.EnergyLevel,
		l.ActivityLevel,
	)
	if err != nil {
		return fmt.Errorf("upsert body log: %w", err)
	}
	return nil
}

// UpsertMindLog inserts or replaces the mind log for its date.
func (d *DB) UpsertMindLog(l *models.MindLog) error {
	if err := l.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO mind_logs (date, mood, anxiety, stress, focus, journal)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			mood = excluded.mood,
			anxiety = excluded.anxiety,
			stress = excluded.stress,
			focus = excluded.focus,
			journal = excluded.journal
	`
	_, err := d.db.Exec(query, l.Date, l.Mood, l.Anxiety, l.Stress, l.Focus, l.Journal)
	if err != nil {
		return fmt.Errorf("upsert mind log: %w", err)
	}
	return nil
}

// UpsertFinanceLog inserts or replaces the finance log for its date.
func (d *DB) UpsertFinanceLog(l *models.FinanceLog) error {
	if err := l.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO finance_logs (date, income, expenses, debts, installments)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			income = excluded.income,
			expenses = excluded.expenses,
			debts = excluded.debts,
			installments = excluded.installments
	`
	_, err := d.db.Exec(query, l.Date, l.Income, l.Expenses, l.Debts, l.Installments)
	if err != nil {
		return fmt.Errorf("upsert finance log: %w", err)
	}
	return nil
}

// ListBodyLogs retrieves body logs, most recent date first.
// An empty store yields an empty slice, never an error.
func (d *DB) ListBodyLogs(limit int) ([]*models.BodyLog, error) {
	query := `
		SELECT date, sleep_hours, sleep_quality, training_done, training_type, energy_level, activity_level
		FROM body_logs
		ORDER BY date DESC
	`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list body logs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	logs := []*models.BodyLog{}
	for rows.Next() {
		var l models.BodyLog
		if err := rows.Scan(&l.Date, &l.SleepHours, &l.SleepQuality, &l.TrainingDone, &l.TrainingType, &l.EnergyLevel, &l.ActivityLevel); err != nil {
			return nil, fmt.Errorf("scan body log: %w", err)
		}
		logs = append(logs, &l)
	}
	return logs, rows.Err()
}

// ListMindLogs retrieves mind logs, most recent date first.
func (d *DB) ListMindLogs(limit int) ([]*models.MindLog, error) {
	query := `
		SELECT date, mood, anxiety, stress, focus, journal
		FROM mind_logs
		ORDER BY date DESC
	`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list mind logs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	logs := []*models.MindLog{}
	for rows.Next() {
		var l models.MindLog
		if err := rows.Scan(&l.Date, &l.Mood, &l.Anxiety, &l.Stress, &l.Focus, &l.Journal); err != nil {
			return nil, fmt.Errorf("scan mind log: %w", err)
		}
		logs = append(logs, &l)
	}
	return logs, rows.Err()
}

// ListFinanceLogs retrieves finance logs, most recent date first.
func (d *DB) ListFinanceLogs(limit int) ([]*models.FinanceLog, error) {
	query := `
		SELECT date, income, expenses, debts, installments
		FROM finance_logs
		ORDER BY date DESC
	`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list finance logs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	logs := []*models.FinanceLog{}
	for rows.Next() {
		var l models.FinanceLog
		if err := rows.Scan(&l.Date, &l.Income, &l.Expenses, &l.Debts, &l.Installments); err != nil {
			return nil, fmt.Errorf("scan finance log: %w", err)
		}
		logs = append(logs, &l)
	}
	return logs, rows.Err()
}
