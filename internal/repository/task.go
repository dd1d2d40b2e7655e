package repository

import (
	"github.com/aniketmandloi/mini-project-management-system/internal/database/models"
	"github.com/aniketmandloi/mini-project-management-system/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var taskSortColumns = map[string]string{
	"title":      "tasks.title",
	"status":     "tasks.status",
	"due_date":   "tasks.due_date",
	"created_at": "tasks.created_at",
	"updated_at": "tasks.updated_at",
}

// TaskRepository handles database operations for tasks
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create creates a new task
func (r *TaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// GetByID retrieves a task visible inside the given tenant
func (r *TaskRepository) GetByID(orgID, id uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := tenant.Scoped(r.db, tenant.KindTask, orgID).First(&task, "tasks.id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// List retrieves the tenant's tasks matching the filter, with pagination
func (r *TaskRepository) List(orgID uuid.UUID, filter TaskFilter, limit, offset int) ([]models.Task, int64, error) {
	var tasks []models.Task
	var total int64

	query := tenant.Scoped(r.db.Model(&models.Task{}), tenant.KindTask, orgID)
	query = applyTaskFilter(query, filter)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order(orderClause(taskSortColumns, filter.SortBy, filter.SortOrder, "tasks.created_at")).
		Limit(limit).Offset(offset).
		Find(&tasks).Error
	if err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}

func applyTaskFilter(query *gorm.DB, filter TaskFilter) *gorm.DB {
	if filter.ProjectID != nil {
		query = query.Where("tasks.project_id = ?", *filter.ProjectID)
	}
	if filter.Status != nil {
		query = query.Where("tasks.status = ?", *filter.Status)
	}
	if filter.TitleContains != nil {
		query = query.Where("tasks.title ILIKE ?", "%"+*filter.TitleContains+"%")
	}
	if filter.AssigneeEmail != nil {
		query = query.Where("tasks.assignee_email = ?", *filter.AssigneeEmail)
	}
	if filter.CreatedAfter != nil {
		query = query.Where("tasks.created_at >= ?", *filter.CreatedAfter)
	}
	if filter.CreatedBefore != nil {
		query = query.Where("tasks.created_at <= ?", *filter.CreatedBefore)
	}
	if filter.DueAfter != nil {
		query = query.Where("tasks.due_date >= ?", *filter.DueAfter)
	}
	if filter.DueBefore != nil {
		query = query.Where("tasks.due_date <= ?", *filter.DueBefore)
	}
	return query
}

// Update updates a task
func (r *TaskRepository) Update(task *models.Task) error {
	return r.db.Save(task).Error
}

// Delete deletes a task if it is visible inside the given tenant
func (r *TaskRepository) Delete(orgID, id uuid.UUID) error {
	subQuery := r.db.Model(&models.Project{}).Select("id").Where("organization_id = ?", orgID)
	result := r.db.Where("id = ? AND project_id IN (?)", id, subQuery).Delete(&models.Task{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
