package service

import (
	"errors"
	"fmt"

	"github.com/aniketmandloi/mini-project-management-system/internal/database/models"
	apperrors "github.com/aniketmandloi/mini-project-management-system/internal/errors"
	"github.com/aniketmandloi/mini-project-management-system/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService handles business logic for users
type UserService struct {
	users repository.UserRepositoryInterface
}

// NewUserService creates a new user service
func NewUserService(users repository.UserRepositoryInterface) *UserService {
	return &UserService{users: users}
}

// Get retrieves a user visible inside the current tenant
func (s *UserService) Get(orgID, id uuid.UUID) (*models.User, error) {
	user, err := s.users.GetScoped(orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// List retrieves the tenant's users with pagination
func (s *UserService) List(orgID uuid.UUID, limit, offset int) ([]models.User, int64, error) {
	users, total, err := s.users.ListByOrganization(orgID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	return users, total, nil
}
