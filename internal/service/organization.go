package service

import (
	"errors"
	"fmt"

	"github.com/aniketmandloi/mini-project-management-system/internal/database/models"
	apperrors "github.com/aniketmandloi/mini-project-management-system/internal/errors"
	"github.com/aniketmandloi/mini-project-management-system/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// OrganizationService handles business logic for organizations
type OrganizationService struct {
	orgs      repository.OrganizationRepositoryInterface
	users     repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(orgs repository.OrganizationRepositoryInterface, users repository.UserRepositoryInterface, validator *validator.Validate) *OrganizationService {
	return &OrganizationService{
		orgs:      orgs,
		users:     users,
		validator: validator,
	}
}

// CreateOrganizationRequest represents the request to create an organization
type CreateOrganizationRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=100"`
	ContactEmail string `json:"contact_email" validate:"required,email,max=254"`
	Description  string `json:"description,omitempty"`
}

// UpdateOrganizationRequest represents the request to update an organization.
// Nil fields are left unchanged.
type UpdateOrganizationRequest struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	ContactEmail *string `json:"contact_email,omitempty" validate:"omitempty,email,max=254"`
	Description  *string `json:"description,omitempty"`
	IsActive     *bool   `json:"is_active,omitempty"`
}

// Create creates a new organization and makes the creating user its admin.
// The slug is derived from the name; a taken slug is a conflict.
func (s *OrganizationService) Create(creator *models.User, req *CreateOrganizationRequest) (*models.Organization, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, asValidationError(err)
	}

	orgSlug := slug.Make(req.Name)
	taken, err := s.orgs.SlugExists(orgSlug, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check organization slug: %w", err)
	}
	if taken {
		return nil, apperrors.ErrOrganizationSlugExists
	}

	org := &models.Organization{
		Name:         req.Name,
		Slug:         orgSlug,
		ContactEmail: req.ContactEmail,
		Description:  req.Description,
		IsActive:     true,
	}

	if err := s.orgs.Create(org); err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	creator.OrganizationID = &org.ID
	creator.IsOrganizationAdmin = true
	if err := s.users.Update(creator); err != nil {
		return nil, fmt.Errorf("failed to attach creator to organization: %w", err)
	}

	return org, nil
}

// Get retrieves the active organization for the current tenant
func (s *OrganizationService) Get(orgID uuid.UUID) (*models.Organization, error) {
	org, err := s.orgs.GetScoped(orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	return org, nil
}

// Update updates the tenant's organization. The slug stays stable across
// renames so existing tenant headers keep working.
func (s *OrganizationService) Update(orgID uuid.UUID, req *UpdateOrganizationRequest) (*models.Organization, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, asValidationError(err)
	}

	org, err := s.Get(orgID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		org.Name = *req.Name
	}
	if req.ContactEmail != nil {
		org.ContactEmail = *req.ContactEmail
	}
	if req.Description != nil {
		org.Description = *req.Description
	}
	if req.IsActive != nil {
		org.IsActive = *req.IsActive
	}

	if err := s.orgs.Update(org); err != nil {
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}

	return org, nil
}
