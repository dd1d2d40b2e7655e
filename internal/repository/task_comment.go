package repository

import (
	"github.com/aniketmandloi/mini-project-management-system/internal/database/models"
	"github.com/aniketmandloi/mini-project-management-system/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskCommentRepository handles database operations for task comments
type TaskCommentRepository struct {
	db *gorm.DB
}

// NewTaskCommentRepository creates a new task comment repository
func NewTaskCommentRepository(db *gorm.DB) *TaskCommentRepository {
	return &TaskCommentRepository{db: db}
}

// Create creates a new task comment
func (r *TaskCommentRepository) Create(comment *models.TaskComment) error {
	return r.db.Create(comment).Error
}

// GetByID retrieves a comment visible inside the given tenant
func (r *TaskCommentRepository) GetByID(orgID, id uuid.UUID) (*models.TaskComment, error) {
	var comment models.TaskComment
	err := tenant.Scoped(r.db, tenant.KindTaskComment, orgID).
		First(&comment, "task_comments.id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListByTask retrieves a task's comments oldest-first, with pagination
func (r *TaskCommentRepository) ListByTask(orgID, taskID uuid.UUID, limit, offset int) ([]models.TaskComment, int64, error) {
	var comments []models.TaskComment
	var total int64

	query := tenant.Scoped(r.db.Model(&models.TaskComment{}), tenant.KindTaskComment, orgID).
		Where("task_comments.task_id = ?", taskID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("task_comments.created_at ASC").Limit(limit).Offset(offset).Find(&comments).Error
	if err != nil {
		return nil, 0, err
	}

	return comments, total, nil
}

// Update updates a task comment
func (r *TaskCommentRepository) Update(comment *models.TaskComment) error {
	return r.db.Save(comment).Error
}

// Delete deletes a comment if it is visible inside the given tenant
func (r *TaskCommentRepository) Delete(orgID, id uuid.UUID) error {
	taskSub := r.db.Model(&models.Task{}).Select("tasks.id").
		Joins("JOIN projects ON projects.id = tasks.project_id").
		Where("projects.organization_id = ?", orgID)
	result := r.db.Where("id = ? AND task_id IN (?)", id, taskSub).Delete(&models.TaskComment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
