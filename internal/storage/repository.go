// ABOUTME: Repository interface for life log storage.
// ABOUTME: Defines the contract the dashboard, CLI, and MCP layers consume.
package storage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/harperreed/lifedash/internal/models"
)

// ErrProjectNotFound is returned when a discipline log references a
// project id that does not exist.
var ErrProjectNotFound = errors.New("project not found")

// Limits applied to dashboard-facing reads to bound payload size.
const (
	LogWindowLimit        = 30  // body/mind/finance logs and discipline day aggregates
	DisciplineDetailLimit = 100 // raw discipline rows
)

// Repository defines the storage interface for life log data.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// Domain log upserts, keyed by date (plus project for discipline).
	// A second write for the same key replaces the prior values.
	UpsertBodyLog(l *models.BodyLog) error
	UpsertMindLog(l *models.MindLog) error
	UpsertFinanceLog(l *models.FinanceLog) error
	UpsertDisciplineLog(l *models.DisciplineLog) error

	// Domain log reads, most recent date first.
	ListBodyLogs(limit int) ([]*models.BodyLog, error)
	ListMindLogs(limit int) ([]*models.MindLog, error)
	ListFinanceLogs(limit int) ([]*models.FinanceLog, error)
	ListDisciplineLogs(limit int) ([]*models.DisciplineLog, error)

	// AggregateDiscipline groups discipline logs by date:
	// sum of minutes, average focus, most recent date first.
	AggregateDiscipline(limit int) ([]*models.DisciplineDay, error)

	// Project operations (no delete in current scope)
	CreateProject(p *models.Project) error
	GetProject(id uuid.UUID) (*models.Project, error)
	ListProjects() ([]*models.Project, error)

	// Inbox operations
	CreateInboxItem(i *models.InboxItem) error
	ListInboxItems(limit int) ([]*models.InboxItem, error)
	DeleteInboxItem(idOrPrefix string) error

	// Export/Import
	GetAllData() (*ExportData, error)
	ImportData(data *ExportData) error

	// Lifecycle
	Close() error
}

// Compile-time check that DB implements Repository.
var _ Repository = (*DB)(nil)

// ResolveProject finds a project by full UUID, UUID prefix, or exact
// name. Works against any Repository implementation.
func ResolveProject(repo Repository, ref string) (*models.Project, error) {
	if id, err := uuid.Parse(ref); err == nil {
		return repo.GetProject(id)
	}

	projects, err := repo.ListProjects()
	if err != nil {
		return nil, err
	}

	var matches []*models.Project
	for _, p := range projects {
		if p.Name == ref || strings.HasPrefix(p.ID.String(), ref) {
			matches = append(matches, p)
		}
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, ref)
	}
	if len(matches) > 1 {
		return nil, fmt.Errorf("ambiguous project %q: matches multiple projects", ref)
	}
	return matches[0], nil
}
