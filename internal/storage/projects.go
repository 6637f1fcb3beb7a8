// ABOUTME: Project and InboxItem operations for SQLite storage.
// ABOUTME: Projects are insert-only; inbox items are append-only plus delete.
package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/lifedash/internal/models"
)

// CreateProject stores a new project in the database.
func (d *DB) CreateProject(p *models.Project) error {
	if err := p.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO projects (id, name, weekly_goal_hours, created_at)
		VALUES (?, ?, ?, ?)
	`
	_, err := d.db.Exec(query,
		p.ID.String(),
		p.Name,
		p.WeeklyGoalHours,
		p.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("create project: %w", err)
	}
	return nil
}

// GetProject retrieves a project by id.
func (d *DB) GetProject(id uuid.UUID) (*models.Project, error) {
	query := `
		SELECT id, name, weekly_goal_hours, created_at
		FROM projects
		WHERE id = ?
	`
	p, err := scanProject(d.db.QueryRow(query, id.String()))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, id)
	}
	return p, err
}

// ListProjects retrieves all projects, oldest first.
func (d *DB) ListProjects() ([]*models.Project, error) {
	query := `
		SELECT id, name, weekly_goal_hours, created_at
		FROM projects
		ORDER BY created_at ASC
	`
	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer func() { _ = rows.Close() }()

	projects := []*models.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// CreateInboxItem stores a new inbox item in the database.
func (d *DB) CreateInboxItem(i *models.InboxItem) error {
	if err := i.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO inbox_items (id, content, type, created_at)
		VALUES (?, ?, ?, ?)
	`
	_, err := d.db.Exec(query,
		i.ID.String(),
		i.Content,
		string(i.Type),
		i.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("create inbox item: %w", err)
	}
	return nil
}

// ListInboxItems retrieves inbox items, most recent first.
func (d *DB) ListInboxItems(limit int) ([]*models.InboxItem, error) {
	query := `
		SELECT id, content, type, created_at
		FROM inbox_items
		ORDER BY created_at DESC
	`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inbox items: %w", err)
	}
	defer func() { _ = rows.Close() }()

	items := []*models.InboxItem{}
	for rows.Next() {
		var i models.InboxItem
		var id, itemType, createdAt string
		if err := rows.Scan(&id, &i.Content, &itemType, &createdAt); err != nil {
			return nil, fmt.Errorf("scan inbox item: %w", err)
		}
		if i.ID, err = parseUUID(id); err != nil {
			return nil, fmt.Errorf("scan inbox item: %w", err)
		}
		i.Type = models.InboxItemType(itemType)
		i.CreatedAt = parseStoredTime(createdAt)
		items = append(items, &i)
	}
	return items, rows.Err()
}

// DeleteInboxItem removes an inbox item by id or id prefix.
func (d *DB) DeleteInboxItem(idOrPrefix string) error {
	id, err := d.resolveInboxID(idOrPrefix)
	if err != nil {
		return err
	}

	if _, err := d.db.Exec(`DELETE FROM inbox_items WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete inbox item: %w", err)
	}
	return nil
}

// resolveInboxID resolves a full UUID or unique prefix to a stored id.
func (d *DB) resolveInboxID(idOrPrefix string) (string, error) {
	// If it looks like a full UUID, use it directly
	if len(idOrPrefix) == 36 && strings.Count(idOrPrefix, "-") == 4 {
		return idOrPrefix, nil
	}

	// Search by prefix
	query := `SELECT id FROM inbox_items WHERE id LIKE ? || '%'`
	rows, err := d.db.Query(query, idOrPrefix)
	if err != nil {
		return "", fmt.Errorf("resolve inbox ID: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var matches []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", fmt.Errorf("scan inbox ID: %w", err)
		}
		matches = append(matches, id)
	}

	if len(matches) == 0 {
		return "", fmt.Errorf("not found: %s", idOrPrefix)
	}
	if len(matches) > 1 {
		return "", fmt.Errorf("ambiguous prefix %s: matches multiple records", idOrPrefix)
	}

	return matches[0], nil
}

// scanner abstracts sql.Row and sql.Rows for shared scan helpers.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanProject(row scanner) (*models.Project, error) {
	var p models.Project
	var id, createdAt string
	if err := row.Scan(&id, &p.Name, &p.WeeklyGoalHours, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scan project: %w", err)
	}
	var err error
	if p.ID, err = parseUUID(id); err != nil {
		return nil, fmt.Errorf("scan project: %w", err)
	}
	p.CreatedAt = parseStoredTime(createdAt)
	return &p, nil
}

func parseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// parseStoredTime parses a timestamp written by this store. Falls back
// to the zero time for rows predating RFC3339 storage.
func parseStoredTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t, _ = time.Parse("2006-01-02 15:04:05", s)
	}
	return t
}
