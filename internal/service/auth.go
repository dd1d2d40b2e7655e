package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aniketmandloi/mini-project-management-system/internal/auth"
	"github.com/aniketmandloi/mini-project-management-system/internal/database/models"
	apperrors "github.com/aniketmandloi/mini-project-management-system/internal/errors"
	"github.com/aniketmandloi/mini-project-management-system/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthService handles registration, login and token refresh
type AuthService struct {
	users     repository.UserRepositoryInterface
	orgs      repository.OrganizationRepositoryInterface
	tokens    *auth.TokenService
	validator *validator.Validate
}

// NewAuthService creates a new auth service
func NewAuthService(users repository.UserRepositoryInterface, orgs repository.OrganizationRepositoryInterface, tokens *auth.TokenService, validator *validator.Validate) *AuthService {
	return &AuthService{
		users:     users,
		orgs:      orgs,
		tokens:    tokens,
		validator: validator,
	}
}

// RegisterRequest represents the request to register a new account
type RegisterRequest struct {
	Email          string     `json:"email" validate:"required,email,max=254"`
	Password       string     `json:"password" validate:"required"`
	FirstName      string     `json:"first_name" validate:"required,max=150"`
	LastName       string     `json:"last_name" validate:"required,max=150"`
	OrganizationID *uuid.UUID `json:"organization_id,omitempty"`
}

// LoginRequest represents the request to sign in
type LoginRequest struct {
	Email            string `json:"email" validate:"required,email"`
	Password         string `json:"password" validate:"required"`
	OrganizationSlug string `json:"organization_slug,omitempty"`
}

// LoginResult carries the signed-in user and their token pair
type LoginResult struct {
	User   *models.User
	Tokens *auth.TokenPair
}

// Register creates a new account. All field problems are reported together in
// one validation error, duplicate email included.
func (s *AuthService) Register(req *RegisterRequest) (*models.User, error) {
	var messages []string

	if err := s.validator.Struct(req); err != nil {
		verr := asValidationError(err)
		if !apperrors.IsValidation(verr) {
			return nil, verr
		}
		messages = append(messages, apperrors.ValidationMessages(verr)...)
	}

	messages = append(messages, passwordMessages(req.Password)...)

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email != "" {
		exists, err := s.users.EmailExists(email)
		if err != nil {
			return nil, fmt.Errorf("failed to check email: %w", err)
		}
		if exists {
			messages = append(messages, "a user with this email already exists")
		}
	}

	if req.OrganizationID != nil {
		if _, err := s.orgs.GetByID(*req.OrganizationID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				messages = append(messages, "organization does not exist")
			} else {
				return nil, fmt.Errorf("failed to check organization: %w", err)
			}
		}
	}

	if len(messages) > 0 {
		return nil, apperrors.NewValidationError(messages...)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:          email,
		PasswordHash:   hash,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		OrganizationID: req.OrganizationID,
		IsActive:       true,
	}

	if err := s.users.Create(user); err != nil {
		// The EmailExists check above races with concurrent registrations;
		// the unique index is the authority.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Login verifies credentials and issues a token pair. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(req *LoginRequest) (*LoginResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, asValidationError(err)
	}

	user, err := s.users.GetByEmail(strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	if req.OrganizationSlug != "" {
		org, err := s.orgs.GetBySlug(req.OrganizationSlug)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrTenantAccessDenied
			}
			return nil, fmt.Errorf("failed to look up organization: %w", err)
		}
		if !user.IsSuperuser && !user.BelongsTo(org.ID) {
			return nil, apperrors.ErrTenantAccessDenied
		}
	}

	tokens, err := s.tokens.GeneratePair(user.ID, user.Email, user.OrganizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}

	return &LoginResult{User: user, Tokens: tokens}, nil
}

// Refresh validates a refresh token and rotates the pair. The account is
// re-checked so a deactivated user cannot keep minting access tokens.
func (s *AuthService) Refresh(refreshToken string) (*LoginResult, error) {
	claims, err := s.tokens.ValidateRefresh(refreshToken)
	if err != nil {
		return nil, err
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, apperrors.ErrInvalidRefreshToken
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	tokens, err := s.tokens.GeneratePair(user.ID, user.Email, user.OrganizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}

	return &LoginResult{User: user, Tokens: tokens}, nil
}
