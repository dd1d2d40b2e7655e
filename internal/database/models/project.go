package models

import (
	"time"

	"github.com/google/uuid"
)

// ProjectStatus represents the status of a project
type ProjectStatus string

const (
	ProjectStatusPlanning  ProjectStatus = "PLANNING"
	ProjectStatusActive    ProjectStatus = "ACTIVE"
	ProjectStatusCompleted ProjectStatus = "COMPLETED"
	ProjectStatusOnHold    ProjectStatus = "ON_HOLD"
	ProjectStatusCancelled ProjectStatus = "CANCELLED"
)

// IsValid checks if the ProjectStatus is valid
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusPlanning, ProjectStatusActive, ProjectStatusCompleted,
		ProjectStatusOnHold, ProjectStatusCancelled:
		return true
	}
	return false
}

// Project represents a project within an organization. Project names are
// unique per organization, not globally.
type Project struct {
	BaseModel
	OrganizationID uuid.UUID     `json:"organization_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_projects_org_name" validate:"required"`
	Name           string        `json:"name" gorm:"not null;size:200;uniqueIndex:idx_projects_org_name" validate:"required,min=2,max=200"`
	Description    string        `json:"description" gorm:"type:text" validate:"max=2000"`
	Status         ProjectStatus `json:"status" gorm:"type:varchar(20);not null;default:'PLANNING'"`
	DueDate        *time.Time    `json:"due_date,omitempty" gorm:"type:date"`

	// Relationships
	Organization Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Tasks        []Task       `json:"tasks,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}

// IsOverdue reports whether the project's due date has passed while it is
// still in an open status.
func (p *Project) IsOverdue(now time.Time) bool {
	if p.DueDate == nil {
		return false
	}
	if p.Status != ProjectStatusActive && p.Status != ProjectStatusOnHold {
		return false
	}
	return p.DueDate.Before(now.Truncate(24 * time.Hour))
}
