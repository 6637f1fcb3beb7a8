// ABOUTME: Export and import functionality for life log data.
// ABOUTME: Supports JSON and YAML export formats for backup/restore.
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/lifedash/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportData represents the full export format for life log data.
type ExportData struct {
	Version    string                  `json:"version" yaml:"version"`
	ExportedAt time.Time               `json:"exported_at" yaml:"exported_at"`
	Tool       string                  `json:"tool" yaml:"tool"`
	Body       []*models.BodyLog       `json:"body" yaml:"body"`
	Mind       []*models.MindLog       `json:"mind" yaml:"mind"`
	Finance    []*models.FinanceLog    `json:"finance" yaml:"finance"`
	Discipline []*models.DisciplineLog `json:"discipline" yaml:"discipline"`
	Projects   []*models.Project       `json:"projects" yaml:"projects"`
	Inbox      []*models.InboxItem     `json:"inbox" yaml:"inbox"`
}

// GetAllData retrieves all data for export. Limits are bypassed so the
// export is complete, not a dashboard window.
func (d *DB) GetAllData() (*ExportData, error) {
	body, err := d.ListBodyLogs(0)
	if err != nil {
		return nil, fmt.Errorf("list body logs: %w", err)
	}
	mind, err := d.ListMindLogs(0)
	if err != nil {
		return nil, fmt.Errorf("list mind logs: %w", err)
	}
	finance, err := d.ListFinanceLogs(0)
	if err != nil {
		return nil, fmt.Errorf("list finance logs: %w", err)
	}
	discipline, err := d.ListDisciplineLogs(0)
	if err != nil {
		return nil, fmt.Errorf("list discipline logs: %w", err)
	}
	projects, err := d.ListProjects()
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	inbox, err := d.ListInboxItems(0)
	if err != nil {
		return nil, fmt.Errorf("list inbox items: %w", err)
	}

	return &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "lifedash",
		Body:       body,
		Mind:       mind,
		Finance:    finance,
		Discipline: discipline,
		Projects:   projects,
		Inbox:      inbox,
	}, nil
}

// ImportData imports data from an export file. Projects come first so
// discipline logs can reference them.
func (d *DB) ImportData(data *ExportData) error {
	for _, p := range data.Projects {
		if err := d.CreateProject(p); err != nil {
			return fmt.Errorf("import project: %w", err)
		}
	}
	for _, l := range data.Body {
		if err := d.UpsertBodyLog(l); err != nil {
			return fmt.Errorf("import body log: %w", err)
		}
	}
	for _, l := range data.Mind {
		if err := d.UpsertMindLog(l); err != nil {
			return fmt.Errorf("import mind log: %w", err)
		}
	}
	for _, l := range data.Finance {
		if err := d.UpsertFinanceLog(l); err != nil {
			return fmt.Errorf("import finance log: %w", err)
		}
	}
	for _, l := range data.Discipline {
		if err := d.UpsertDisciplineLog(l); err != nil {
			return fmt.Errorf("import discipline log: %w", err)
		}
	}
	for _, i := range data.Inbox {
		if err := d.CreateInboxItem(i); err != nil {
			return fmt.Errorf("import inbox item: %w", err)
		}
	}
	return nil
}

// ExportJSON exports all data as JSON.
func (d *DB) ExportJSON() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML exports all data as YAML.
func (d *DB) ExportYAML() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(data)
}

// ImportJSON restores data from a JSON export.
func (d *DB) ImportJSON(raw []byte) error {
	var data ExportData
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("parse import file: %w", err)
	}
	return d.ImportData(&data)
}
