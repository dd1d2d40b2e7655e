package errors

import (
	"errors"
	"fmt"
	"strings"
)

// NotFoundError represents an error when an entity is not found. Entities
// filtered out by tenant scoping surface as NotFoundError as well, so callers
// cannot distinguish "absent" from "owned by another organization".
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in organization"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError collects per-field validation messages. Validation runs over
// the whole input before failing, so Messages holds every violation at once
// rather than just the first.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	if len(e.Messages) == 0 {
		return "validation failed"
	}
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// PermissionDeniedError carries the reason of the first failed policy. It is
// always surfaced to the caller, never silently filtered.
type PermissionDeniedError struct {
	Reason string
}

func (e *PermissionDeniedError) Error() string {
	return e.Reason
}

// Entity Not Found Errors
var (
	ErrOrganizationNotFound = &NotFoundError{Entity: "organization"}
	ErrUserNotFound         = &NotFoundError{Entity: "user"}
	ErrProjectNotFound      = &NotFoundError{Entity: "project"}
	ErrTaskNotFound         = &NotFoundError{Entity: "task"}
	ErrCommentNotFound      = &NotFoundError{Entity: "comment"}
)

// Already Exists Errors
var (
	ErrOrganizationSlugExists = &AlreadyExistsError{Entity: "organization", Context: "with this slug"}
	ErrUserExists             = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrProjectExists          = &AlreadyExistsError{Entity: "project", Context: "with this name in the organization"}
)

// Authentication Errors
var (
	ErrUnauthenticated     = &AuthenticationError{Message: "authentication required"}
	ErrTokenExpired        = &AuthenticationError{Message: "token has expired"}
	ErrInvalidToken        = &AuthenticationError{Message: "invalid token"}
	ErrInvalidCredentials  = &AuthenticationError{Message: "invalid email or password"}
	ErrAccountDisabled     = &AuthenticationError{Message: "user account is disabled"}
	ErrInvalidRefreshToken = &AuthenticationError{Message: "invalid refresh token"}
)

// Authorization Errors
var (
	ErrTenantAccessDenied    = &AuthorizationError{Message: "access denied to organization"}
	ErrTenantContextRequired = &AuthorizationError{Message: "organization context required"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsPermissionDenied checks if an error is a PermissionDeniedError
func IsPermissionDenied(err error) bool {
	var deniedErr *PermissionDeniedError
	return errors.As(err, &deniedErr)
}

// ValidationMessages extracts the per-field messages from a ValidationError,
// or falls back to the error string for any other error.
func ValidationMessages(err error) []string {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Messages
	}
	return []string{err.Error()}
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError from a list of messages
func NewValidationError(messages ...string) error {
	return &ValidationError{Messages: messages}
}

// NewPermissionDenied creates a new PermissionDeniedError
func NewPermissionDenied(reason string) error {
	return &PermissionDeniedError{Reason: reason}
}
