package repository

import (
	"time"

	"github.com/aniketmandloi/mini-project-management-system/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// ProjectFilter narrows a tenant-scoped project listing
type ProjectFilter struct {
	Status        *models.ProjectStatus
	NameContains  *string
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
	DueAfter      *time.Time
	DueBefore     *time.Time
	SortBy        string
	SortOrder     string
}

// TaskFilter narrows a tenant-scoped task listing
type TaskFilter struct {
	ProjectID     *uuid.UUID
	Status        *models.TaskStatus
	TitleContains *string
	AssigneeEmail *string
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
	DueAfter      *time.Time
	DueBefore     *time.Time
	SortBy        string
	SortOrder     string
}

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	Create(org *models.Organization) error
	GetByID(id uuid.UUID) (*models.Organization, error)
	GetBySlug(slug string) (*models.Organization, error)
	GetScoped(orgID uuid.UUID) (*models.Organization, error)
	SlugExists(slug string, excludeID *uuid.UUID) (bool, error)
	Update(org *models.Organization) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetScoped(orgID, id uuid.UUID) (*models.User, error)
	ListByOrganization(orgID uuid.UUID, limit, offset int) ([]models.User, int64, error)
	EmailExists(email string) (bool, error)
	Update(user *models.User) error
}

// ProjectRepositoryInterface defines the interface for project repository operations
type ProjectRepositoryInterface interface {
	Create(project *models.Project) error
	GetByID(orgID, id uuid.UUID) (*models.Project, error)
	List(orgID uuid.UUID, filter ProjectFilter, limit, offset int) ([]models.Project, int64, error)
	NameExists(orgID uuid.UUID, name string, excludeID *uuid.UUID) (bool, error)
	Update(project *models.Project) error
	Delete(orgID, id uuid.UUID) error
}

// TaskRepositoryInterface defines the interface for task repository operations
type TaskRepositoryInterface interface {
	Create(task *models.Task) error
	GetByID(orgID, id uuid.UUID) (*models.Task, error)
	List(orgID uuid.UUID, filter TaskFilter, limit, offset int) ([]models.Task, int64, error)
	Update(task *models.Task) error
	Delete(orgID, id uuid.UUID) error
}

// TaskCommentRepositoryInterface defines the interface for task comment repository operations
type TaskCommentRepositoryInterface interface {
	Create(comment *models.TaskComment) error
	GetByID(orgID, id uuid.UUID) (*models.TaskComment, error)
	ListByTask(orgID, taskID uuid.UUID, limit, offset int) ([]models.TaskComment, int64, error)
	Update(comment *models.TaskComment) error
	Delete(orgID, id uuid.UUID) error
}

// StatisticsRepositoryInterface defines the interface for aggregate statistics queries
type StatisticsRepositoryInterface interface {
	ProjectCounts(orgID uuid.UUID) (ProjectCounts, error)
	TaskCounts(orgID uuid.UUID, projectID *uuid.UUID) (TaskCounts, error)
	UserCount(orgID uuid.UUID) (int64, error)
	RecentActivityCount(orgID uuid.UUID, since time.Time) (int64, error)
}
