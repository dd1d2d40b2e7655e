package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/aniketmandloi/mini-project-management-system/internal/database/models"
	apperrors "github.com/aniketmandloi/mini-project-management-system/internal/errors"
	"github.com/aniketmandloi/mini-project-management-system/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectService handles business logic for projects
type ProjectService struct {
	projects  repository.ProjectRepositoryInterface
	validator *validator.Validate
}

// NewProjectService creates a new project service
func NewProjectService(projects repository.ProjectRepositoryInterface, validator *validator.Validate) *ProjectService {
	return &ProjectService{
		projects:  projects,
		validator: validator,
	}
}

// CreateProjectRequest represents the request to create a project
type CreateProjectRequest struct {
	Name        string     `json:"name" validate:"required,min=1,max=200"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// UpdateProjectRequest represents the request to update a project.
// Nil fields are left unchanged; ClearDueDate removes a stored due date,
// which a nil DueDate alone cannot express.
type UpdateProjectRequest struct {
	Name         *string    `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description  *string    `json:"description,omitempty"`
	Status       *string    `json:"status,omitempty"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	ClearDueDate bool       `json:"clear_due_date,omitempty"`
}

// Create creates a new project in the tenant's organization
func (s *ProjectService) Create(orgID uuid.UUID, req *CreateProjectRequest) (*models.Project, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, asValidationError(err)
	}

	status := models.ProjectStatusPlanning
	if req.Status != "" {
		status = models.ProjectStatus(req.Status)
		if !status.IsValid() {
			return nil, apperrors.NewValidationError(fmt.Sprintf("invalid project status %q", req.Status))
		}
	}

	taken, err := s.projects.NameExists(orgID, req.Name, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check project name: %w", err)
	}
	if taken {
		return nil, apperrors.ErrProjectExists
	}

	project := &models.Project{
		OrganizationID: orgID,
		Name:           req.Name,
		Description:    req.Description,
		Status:         status,
		DueDate:        req.DueDate,
	}

	if err := s.projects.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return project, nil
}

// Get retrieves a project visible inside the current tenant
func (s *ProjectService) Get(orgID, id uuid.UUID) (*models.Project, error) {
	project, err := s.projects.GetByID(orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return project, nil
}

// List retrieves the tenant's projects matching the filter
func (s *ProjectService) List(orgID uuid.UUID, filter repository.ProjectFilter, limit, offset int) ([]models.Project, int64, error) {
	projects, total, err := s.projects.List(orgID, filter, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, total, nil
}

// Update updates a project inside the current tenant
func (s *ProjectService) Update(orgID, id uuid.UUID, req *UpdateProjectRequest) (*models.Project, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, asValidationError(err)
	}

	project, err := s.Get(orgID, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		status := models.ProjectStatus(*req.Status)
		if !status.IsValid() {
			return nil, apperrors.NewValidationError(fmt.Sprintf("invalid project status %q", *req.Status))
		}
		project.Status = status
	}

	if req.Name != nil && *req.Name != project.Name {
		taken, err := s.projects.NameExists(orgID, *req.Name, &project.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check project name: %w", err)
		}
		if taken {
			return nil, apperrors.ErrProjectExists
		}
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.ClearDueDate {
		project.DueDate = nil
	} else if req.DueDate != nil {
		project.DueDate = req.DueDate
	}

	if err := s.projects.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return project, nil
}

// Delete deletes a project inside the current tenant. Its tasks and their
// comments go with it.
func (s *ProjectService) Delete(orgID, id uuid.UUID) error {
	err := s.projects.Delete(orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProjectNotFound
		}
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}
