package repository

import (
	"fmt"
	"strings"

	"github.com/aniketmandloi/mini-project-management-system/internal/database/models"
	"github.com/aniketmandloi/mini-project-management-system/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// projectSortColumns whitelists the sortable project columns. Anything else
// falls back to created_at.
var projectSortColumns = map[string]string{
	"name":       "projects.name",
	"status":     "projects.status",
	"due_date":   "projects.due_date",
	"created_at": "projects.created_at",
	"updated_at": "projects.updated_at",
}

func orderClause(columns map[string]string, sortBy, sortOrder, fallback string) string {
	column, ok := columns[sortBy]
	if !ok {
		column = fallback
	}
	direction := "ASC"
	if strings.EqualFold(sortOrder, "desc") {
		direction = "DESC"
	}
	return fmt.Sprintf("%s %s", column, direction)
}

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create creates a new project
func (r *ProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// GetByID retrieves a project visible inside the given tenant
func (r *ProjectRepository) GetByID(orgID, id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := tenant.Scoped(r.db, tenant.KindProject, orgID).First(&project, "projects.id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// List retrieves the tenant's projects matching the filter, with pagination
func (r *ProjectRepository) List(orgID uuid.UUID, filter ProjectFilter, limit, offset int) ([]models.Project, int64, error) {
	var projects []models.Project
	var total int64

	query := tenant.Scoped(r.db.Model(&models.Project{}), tenant.KindProject, orgID)
	query = applyProjectFilter(query, filter)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order(orderClause(projectSortColumns, filter.SortBy, filter.SortOrder, "projects.created_at")).
		Limit(limit).Offset(offset).
		Find(&projects).Error
	if err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}

func applyProjectFilter(query *gorm.DB, filter ProjectFilter) *gorm.DB {
	if filter.Status != nil {
		query = query.Where("projects.status = ?", *filter.Status)
	}
	if filter.NameContains != nil {
		query = query.Where("projects.name ILIKE ?", "%"+*filter.NameContains+"%")
	}
	if filter.CreatedAfter != nil {
		query = query.Where("projects.created_at >= ?", *filter.CreatedAfter)
	}
	if filter.CreatedBefore != nil {
		query = query.Where("projects.created_at <= ?", *filter.CreatedBefore)
	}
	if filter.DueAfter != nil {
		query = query.Where("projects.due_date >= ?", *filter.DueAfter)
	}
	if filter.DueBefore != nil {
		query = query.Where("projects.due_date <= ?", *filter.DueBefore)
	}
	return query
}

// NameExists checks whether a project name is already taken in the organization
func (r *ProjectRepository) NameExists(orgID uuid.UUID, name string, excludeID *uuid.UUID) (bool, error) {
	query := r.db.Model(&models.Project{}).Where("organization_id = ? AND name = ?", orgID, name)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

// Update updates a project
func (r *ProjectRepository) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete deletes a project if it is visible inside the given tenant
func (r *ProjectRepository) Delete(orgID, id uuid.UUID) error {
	result := r.db.Where("id = ? AND organization_id = ?", id, orgID).Delete(&models.Project{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
