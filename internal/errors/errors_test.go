package errors_test

import (
	"errors"
	"fmt"
	"testing"

	apperrors "github.com/aniketmandloi/mini-project-management-system/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	err := apperrors.NewNotFoundError("project")

	assert.Equal(t, "project not found", err.Error())
	assert.True(t, apperrors.IsNotFound(err))
	assert.True(t, errors.Is(err, apperrors.ErrProjectNotFound))
	assert.False(t, errors.Is(err, apperrors.ErrTaskNotFound))
}

func TestNotFoundErrorThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("resolver failed: %w", apperrors.ErrTaskNotFound)

	assert.True(t, apperrors.IsNotFound(wrapped))
	assert.True(t, errors.Is(wrapped, apperrors.ErrTaskNotFound))
}

func TestAlreadyExistsError(t *testing.T) {
	assert.Equal(t, "project already exists with this name in the organization", apperrors.ErrProjectExists.Error())
	assert.True(t, apperrors.IsAlreadyExists(apperrors.ErrProjectExists))
	assert.False(t, apperrors.IsAlreadyExists(apperrors.ErrProjectNotFound))

	sameEntity := &apperrors.AlreadyExistsError{Entity: "project"}
	assert.True(t, errors.Is(sameEntity, apperrors.ErrProjectExists))
}

func TestValidationError(t *testing.T) {
	err := apperrors.NewValidationError("name is required", "status is invalid")

	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "validation failed: name is required; status is invalid", err.Error())
	assert.Equal(t, []string{"name is required", "status is invalid"}, apperrors.ValidationMessages(err))
}

func TestValidationErrorEmpty(t *testing.T) {
	err := apperrors.NewValidationError()

	assert.Equal(t, "validation failed", err.Error())
}

func TestValidationMessagesFallback(t *testing.T) {
	err := errors.New("boom")

	assert.Equal(t, []string{"boom"}, apperrors.ValidationMessages(err))
}

func TestAuthenticationErrors(t *testing.T) {
	for _, err := range []error{
		apperrors.ErrUnauthenticated,
		apperrors.ErrTokenExpired,
		apperrors.ErrInvalidToken,
		apperrors.ErrInvalidCredentials,
		apperrors.ErrAccountDisabled,
		apperrors.ErrInvalidRefreshToken,
	} {
		assert.True(t, apperrors.IsAuthentication(err), err.Error())
		assert.False(t, apperrors.IsAuthorization(err), err.Error())
	}
}

func TestAuthorizationErrors(t *testing.T) {
	assert.True(t, apperrors.IsAuthorization(apperrors.ErrTenantAccessDenied))
	assert.True(t, apperrors.IsAuthorization(apperrors.ErrTenantContextRequired))
	assert.False(t, apperrors.IsAuthentication(apperrors.ErrTenantAccessDenied))
}

func TestPermissionDeniedError(t *testing.T) {
	err := apperrors.NewPermissionDenied("only the assignee may modify this task")

	assert.True(t, apperrors.IsPermissionDenied(err))
	assert.Equal(t, "only the assignee may modify this task", err.Error())

	var denied *apperrors.PermissionDeniedError
	assert.True(t, errors.As(err, &denied))
	assert.Equal(t, "only the assignee may modify this task", denied.Reason)
}
