package service

import (
	"errors"
	"fmt"

	"github.com/aniketmandloi/mini-project-management-system/internal/database/models"
	apperrors "github.com/aniketmandloi/mini-project-management-system/internal/errors"
	"github.com/aniketmandloi/mini-project-management-system/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskCommentService handles business logic for task comments
type TaskCommentService struct {
	comments  repository.TaskCommentRepositoryInterface
	tasks     repository.TaskRepositoryInterface
	validator *validator.Validate
}

// NewTaskCommentService creates a new task comment service
func NewTaskCommentService(comments repository.TaskCommentRepositoryInterface, tasks repository.TaskRepositoryInterface, validator *validator.Validate) *TaskCommentService {
	return &TaskCommentService{
		comments:  comments,
		tasks:     tasks,
		validator: validator,
	}
}

// CreateTaskCommentRequest represents the request to create a task comment
type CreateTaskCommentRequest struct {
	TaskID  uuid.UUID `json:"task_id" validate:"required"`
	Content string    `json:"content" validate:"required,min=1"`
}

// UpdateTaskCommentRequest represents the request to update a task comment
type UpdateTaskCommentRequest struct {
	Content string `json:"content" validate:"required,min=1"`
}

// Create creates a comment on a task visible inside the current tenant. The
// author is always the authenticated principal.
func (s *TaskCommentService) Create(orgID uuid.UUID, authorEmail string, req *CreateTaskCommentRequest) (*models.TaskComment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, asValidationError(err)
	}

	if _, err := s.tasks.GetByID(orgID, req.TaskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to check task: %w", err)
	}

	comment := &models.TaskComment{
		TaskID:      req.TaskID,
		Content:     req.Content,
		AuthorEmail: authorEmail,
	}

	if err := s.comments.Create(comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return comment, nil
}

// Get retrieves a comment visible inside the current tenant
func (s *TaskCommentService) Get(orgID, id uuid.UUID) (*models.TaskComment, error) {
	comment, err := s.comments.GetByID(orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	return comment, nil
}

// ListByTask retrieves a task's comments oldest-first. The task must be
// visible inside the current tenant.
func (s *TaskCommentService) ListByTask(orgID, taskID uuid.UUID, limit, offset int) ([]models.TaskComment, int64, error) {
	if _, err := s.tasks.GetByID(orgID, taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, apperrors.ErrTaskNotFound
		}
		return nil, 0, fmt.Errorf("failed to check task: %w", err)
	}

	comments, total, err := s.comments.ListByTask(orgID, taskID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, total, nil
}

// Update replaces a comment's content inside the current tenant
func (s *TaskCommentService) Update(orgID, id uuid.UUID, req *UpdateTaskCommentRequest) (*models.TaskComment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, asValidationError(err)
	}

	comment, err := s.Get(orgID, id)
	if err != nil {
		return nil, err
	}

	comment.Content = req.Content
	if err := s.comments.Update(comment); err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}

	return comment, nil
}

// Delete deletes a comment inside the current tenant
func (s *TaskCommentService) Delete(orgID, id uuid.UUID) error {
	err := s.comments.Delete(orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCommentNotFound
		}
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}
