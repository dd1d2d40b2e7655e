package models

import (
	"time"

	"github.com/google/uuid"
)

// TaskStatus represents the status of a task
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "TODO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusDone       TaskStatus = "DONE"
)

// IsValid checks if the TaskStatus is valid
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

// Task represents a unit of work within a project. The assignee is tracked by
// email rather than a foreign key so tasks can be assigned to people who are
// not users of the system.
type Task struct {
	BaseModel
	ProjectID     uuid.UUID  `json:"project_id" gorm:"type:uuid;not null;index" validate:"required"`
	Title         string     `json:"title" gorm:"not null;size:200" validate:"required,min=2,max=200"`
	Description   string     `json:"description" gorm:"type:text" validate:"max=2000"`
	Status        TaskStatus `json:"status" gorm:"type:varchar(20);not null;default:'TODO'"`
	AssigneeEmail string     `json:"assignee_email" gorm:"size:255" validate:"omitempty,email,max=255"`
	DueDate       *time.Time `json:"due_date,omitempty"`

	// Relationships
	Project  Project       `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Comments []TaskComment `json:"comments,omitempty" gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Task
func (Task) TableName() string {
	return "tasks"
}

// IsOverdue reports whether the task's due time has passed and the task is
// not done.
func (t *Task) IsOverdue(now time.Time) bool {
	if t.DueDate == nil {
		return false
	}
	return t.DueDate.Before(now) && t.Status != TaskStatusDone
}
