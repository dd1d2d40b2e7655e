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

// TaskService handles business logic for tasks
type TaskService struct {
	tasks     repository.TaskRepositoryInterface
	projects  repository.ProjectRepositoryInterface
	validator *validator.Validate
}

// NewTaskService creates a new task service
func NewTaskService(tasks repository.TaskRepositoryInterface, projects repository.ProjectRepositoryInterface, validator *validator.Validate) *TaskService {
	return &TaskService{
		tasks:     tasks,
		projects:  projects,
		validator: validator,
	}
}

// CreateTaskRequest represents the request to create a task
type CreateTaskRequest struct {
	ProjectID     uuid.UUID  `json:"project_id" validate:"required"`
	Title         string     `json:"title" validate:"required,min=1,max=200"`
	Description   string     `json:"description,omitempty"`
	Status        string     `json:"status,omitempty"`
	AssigneeEmail string     `json:"assignee_email,omitempty" validate:"omitempty,email,max=254"`
	DueDate       *time.Time `json:"due_date,omitempty"`
}

// UpdateTaskRequest represents the request to update a task.
// Nil fields are left unchanged; ClearDueDate removes a stored due date,
// which a nil DueDate alone cannot express.
type UpdateTaskRequest struct {
	Title         *string    `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description   *string    `json:"description,omitempty"`
	Status        *string    `json:"status,omitempty"`
	AssigneeEmail *string    `json:"assignee_email,omitempty" validate:"omitempty,email,max=254"`
	DueDate       *time.Time `json:"due_date,omitempty"`
	ClearDueDate  bool       `json:"clear_due_date,omitempty"`
}

// Create creates a new task. The target project must be visible inside the
// current tenant; a foreign project reads as absent.
func (s *TaskService) Create(orgID uuid.UUID, req *CreateTaskRequest) (*models.Task, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, asValidationError(err)
	}

	status := models.TaskStatusTodo
	if req.Status != "" {
		status = models.TaskStatus(req.Status)
		if !status.IsValid() {
			return nil, apperrors.NewValidationError(fmt.Sprintf("invalid task status %q", req.Status))
		}
	}

	if _, err := s.projects.GetByID(orgID, req.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to check project: %w", err)
	}

	task := &models.Task{
		ProjectID:     req.ProjectID,
		Title:         req.Title,
		Description:   req.Description,
		Status:        status,
		AssigneeEmail: req.AssigneeEmail,
		DueDate:       req.DueDate,
	}

	if err := s.tasks.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// Get retrieves a task visible inside the current tenant
func (s *TaskService) Get(orgID, id uuid.UUID) (*models.Task, error) {
	task, err := s.tasks.GetByID(orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return task, nil
}

// List retrieves the tenant's tasks matching the filter
func (s *TaskService) List(orgID uuid.UUID, filter repository.TaskFilter, limit, offset int) ([]models.Task, int64, error) {
	tasks, total, err := s.tasks.List(orgID, filter, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, total, nil
}

// Update updates a task inside the current tenant. Re-marking a done task as
// done is a no-op, not an error.
func (s *TaskService) Update(orgID, id uuid.UUID, req *UpdateTaskRequest) (*models.Task, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, asValidationError(err)
	}

	task, err := s.Get(orgID, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		status := models.TaskStatus(*req.Status)
		if !status.IsValid() {
			return nil, apperrors.NewValidationError(fmt.Sprintf("invalid task status %q", *req.Status))
		}
		task.Status = status
	}
	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.AssigneeEmail != nil {
		task.AssigneeEmail = *req.AssigneeEmail
	}
	if req.ClearDueDate {
		task.DueDate = nil
	} else if req.DueDate != nil {
		task.DueDate = req.DueDate
	}

	if err := s.tasks.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// Delete deletes a task inside the current tenant
func (s *TaskService) Delete(orgID, id uuid.UUID) error {
	err := s.tasks.Delete(orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTaskNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}
