package testutils

import (
	"fmt"
	"time"

	"github.com/aniketmandloi/mini-project-management-system/internal/database/models"

	"github.com/google/uuid"
)

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	id := uuid.New()
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:         "Test Organization",
		Slug:         "test-org-" + id.String()[:8],
		ContactEmail: "contact@test.example",
		Description:  "A test organization",
		IsActive:     true,
	}
}

// WithSlug sets a custom slug for the organization
func (f *OrganizationFactory) WithSlug(slug string) *models.Organization {
	org := f.Create()
	org.Name = slug
	org.Slug = slug
	return org
}

// Inactive creates a deactivated organization
func (f *OrganizationFactory) Inactive() *models.Organization {
	org := f.Create()
	org.IsActive = false
	return org
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:        fmt.Sprintf("user-%s@test.example", id.String()[:8]),
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		FirstName:    "Jane",
		LastName:     "Doe",
		IsActive:     true,
	}
}

// InOrganization creates a user belonging to the given organization
func (f *UserFactory) InOrganization(orgID uuid.UUID) *models.User {
	user := f.Create()
	user.OrganizationID = &orgID
	return user
}

// AdminOf creates an organization admin in the given organization
func (f *UserFactory) AdminOf(orgID uuid.UUID) *models.User {
	user := f.InOrganization(orgID)
	user.IsOrganizationAdmin = true
	return user
}

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a test Project in the given organization
func (f *ProjectFactory) Create(orgID uuid.UUID) *models.Project {
	id := uuid.New()
	return &models.Project{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: orgID,
		Name:           "Test Project " + id.String()[:8],
		Description:    "A test project",
		Status:         models.ProjectStatusActive,
	}
}

// WithStatus creates a project with the given status
func (f *ProjectFactory) WithStatus(orgID uuid.UUID, status models.ProjectStatus) *models.Project {
	project := f.Create(orgID)
	project.Status = status
	return project
}

// TaskFactory provides methods to create test Task data
type TaskFactory struct{}

// NewTaskFactory creates a new TaskFactory
func NewTaskFactory() *TaskFactory {
	return &TaskFactory{}
}

// Create creates a test Task in the given project
func (f *TaskFactory) Create(projectID uuid.UUID) *models.Task {
	id := uuid.New()
	return &models.Task{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ProjectID:   projectID,
		Title:       "Test Task " + id.String()[:8],
		Description: "A test task",
		Status:      models.TaskStatusTodo,
	}
}

// AssignedTo creates a task assigned to the given email
func (f *TaskFactory) AssignedTo(projectID uuid.UUID, email string) *models.Task {
	task := f.Create(projectID)
	task.AssigneeEmail = email
	return task
}

// TaskCommentFactory provides methods to create test TaskComment data
type TaskCommentFactory struct{}

// NewTaskCommentFactory creates a new TaskCommentFactory
func NewTaskCommentFactory() *TaskCommentFactory {
	return &TaskCommentFactory{}
}

// Create creates a test TaskComment on the given task
func (f *TaskCommentFactory) Create(taskID uuid.UUID, authorEmail string) *models.TaskComment {
	id := uuid.New()
	return &models.TaskComment{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TaskID:      taskID,
		Content:     "Test comment " + id.String()[:8],
		AuthorEmail: authorEmail,
	}
}

// FactorySet bundles every factory for test suites
type FactorySet struct {
	Organization *OrganizationFactory
	User         *UserFactory
	Project      *ProjectFactory
	Task         *TaskFactory
	Comment      *TaskCommentFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Organization: NewOrganizationFactory(),
		User:         NewUserFactory(),
		Project:      NewProjectFactory(),
		Task:         NewTaskFactory(),
		Comment:      NewTaskCommentFactory(),
	}
}
