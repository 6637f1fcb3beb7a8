// ABOUTME: Discipline log operations keyed by (date, project_id).
// ABOUTME: Includes the per-date aggregate the dashboard consumes.
package storage

import (
	"database/sql"
	"fmt"

	"github.com/harperreed/lifedash/internal/models"
)

// UpsertDisciplineLog inserts or replaces the discipline log for
// (date, project_id). The referenced project must exist.
func (d *DB) UpsertDisciplineLog(l *models.DisciplineLog) error {
	if err := l.Validate(); err != nil {
		return err
	}

	// Reject dangling references before writing. The FK constraint
	// backs this up but gives a less useful error.
	var exists int
	err := d.db.QueryRow(`SELECT 1 FROM projects WHERE id = ?`, l.ProjectID.String()).Scan(&exists)
	if err == sql.ErrNoRows {
		return fmt.Errorf("%w: %s", ErrProjectNotFound, l.ProjectID)
	}
	if err != nil {
		return fmt.Errorf("check project: %w", err)
	}

	query := `
		INSERT INTO discipline_logs (date, project_id, minutes_invested, focus_level)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(date, project_id) DO UPDATE SET
			minutes_invested = excluded.minutes_invested,
			focus_level = excluded.focus_level
	`
	_, err = d.db.Exec(query, l.Date, l.ProjectID.String(), l.MinutesInvested, l.FocusLevel)
	if err != nil {
		return fmt.Errorf("upsert discipline log: %w", err)
	}
	return nil
}

// ListDisciplineLogs retrieves raw discipline rows, most recent date
// first, with project names resolved for display.
func (d *DB) ListDisciplineLogs(limit int) ([]*models.DisciplineLog, error) {
	query := `
		SELECT dl.date, dl.project_id, p.name, dl.minutes_invested, dl.focus_level
		FROM discipline_logs dl
		JOIN projects p ON p.id = dl.project_id
		ORDER BY dl.date DESC, p.name ASC
	`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list discipline logs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	logs := []*models.DisciplineLog{}
	for rows.Next() {
		var l models.DisciplineLog
		var projectID string
		if err := rows.Scan(&l.Date, &projectID, &l.ProjectName, &l.MinutesInvested, &l.FocusLevel); err != nil {
			return nil, fmt.Errorf("scan discipline log: %w", err)
		}
		if l.ProjectID, err = parseUUID(projectID); err != nil {
			return nil, fmt.Errorf("scan discipline log: %w", err)
		}
		logs = append(logs, &l)
	}
	return logs, rows.Err()
}

// AggregateDiscipline groups discipline logs by date: total minutes
// across all projects and the average focus level, most recent first.
func (d *DB) AggregateDiscipline(limit int) ([]*models.DisciplineDay, error) {
	query := `
		SELECT date, SUM(minutes_invested), AVG(focus_level)
		FROM discipline_logs
		GROUP BY date
		ORDER BY date DESC
	`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("aggregate discipline: %w", err)
	}
	defer func() { _ = rows.Close() }()

	days := []*models.DisciplineDay{}
	for rows.Next() {
		var day models.DisciplineDay
		if err := rows.Scan(&day.Date, &day.TotalMinutes, &day.AvgFocus); err != nil {
			return nil, fmt.Errorf("scan discipline day: %w", err)
		}
		days = append(days, &day)
	}
	return days, rows.Err()
}
