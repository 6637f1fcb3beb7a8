// ABOUTME: Project and InboxItem models.
// ABOUTME: Projects anchor discipline logs; the inbox is a capture-anything list.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Project is a named endeavor that discipline logs reference.
// Immutable once created; not deletable in the current scope.
type Project struct {
	ID              uuid.UUID `json:"id" yaml:"id"`
	Name            string    `json:"name" yaml:"name"`
	WeeklyGoalHours float64   `json:"weekly_goal_hours" yaml:"weekly_goal_hours"`
	CreatedAt       time.Time `json:"created_at" yaml:"created_at"`
}

// NewProject creates a Project with generated UUID and current timestamp.
func NewProject(name string, weeklyGoalHours float64) *Project {
	return &Project{
		ID:              uuid.New(),
		Name:            name,
		WeeklyGoalHours: weeklyGoalHours,
		CreatedAt:       time.Now(),
	}
}

// Validate checks project fields before insert.
func (p *Project) Validate() error {
	if p.Name == "" {
		return &ValidationError{Field: "name", Reason: "required"}
	}
	return checkNonNegative("weekly_goal_hours", p.WeeklyGoalHours)
}

// InboxItemType classifies a captured inbox entry.
type InboxItemType string

const (
	InboxIdea    InboxItemType = "idea"
	InboxWorry   InboxItemType = "worry"
	InboxThought InboxItemType = "thought"
	InboxTask    InboxItemType = "task"
)

// AllInboxItemTypes lists the valid inbox item types.
var AllInboxItemTypes = []InboxItemType{InboxIdea, InboxWorry, InboxThought, InboxTask}

// IsValidInboxItemType checks if a string is a valid inbox item type.
func IsValidInboxItemType(s string) bool {
	for _, t := range AllInboxItemTypes {
		if string(t) == s {
			return true
		}
	}
	return false
}

// InboxItem is a quick capture: append-only except explicit delete by id.
type InboxItem struct {
	ID        uuid.UUID     `json:"id" yaml:"id"`
	Content   string        `json:"content" yaml:"content"`
	Type      InboxItemType `json:"type" yaml:"type"`
	CreatedAt time.Time     `json:"created_at" yaml:"created_at"`
}

// NewInboxItem creates an InboxItem with generated UUID and current timestamp.
func NewInboxItem(content string, itemType InboxItemType) *InboxItem {
	return &InboxItem{
		ID:        uuid.New(),
		Content:   content,
		Type:      itemType,
		CreatedAt: time.Now(),
	}
}

// Validate checks inbox item fields before insert.
func (i *InboxItem) Validate() error {
	if i.Content == "" {
		return &ValidationError{Field: "content", Reason: "required"}
	}
	if !IsValidInboxItemType(string(i.Type)) {
		return &ValidationError{Field: "type", Reason: "must be one of idea, worry, thought, task"}
	}
	return nil
}
