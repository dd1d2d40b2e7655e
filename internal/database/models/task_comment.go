package models

import (
	"github.com/google/uuid"
)

// TaskComment represents a flat (unthreaded) comment on a task. The author is
// tracked by email, matching the assignee convention on Task.
type TaskComment struct {
	BaseModel
	TaskID      uuid.UUID `json:"task_id" gorm:"type:uuid;not null;index" validate:"required"`
	Content     string    `json:"content" gorm:"type:text;not null" validate:"required,min=1,max=2000"`
	AuthorEmail string    `json:"author_email" gorm:"not null;size:255" validate:"required,email,max=255"`

	// Relationships
	Task Task `json:"task,omitempty" gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TaskComment
func (TaskComment) TableName() string {
	return "task_comments"
}
