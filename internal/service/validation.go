package service

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	apperrors "github.com/aniketmandloi/mini-project-management-system/internal/errors"

	"github.com/go-playground/validator/v10"
)

// asValidationError converts validator failures into the application's batch
// validation error so callers see every invalid field at once.
func asValidationError(err error) error {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		messages = append(messages, fieldMessage(fe))
	}
	return apperrors.NewValidationError(messages...)
}

func fieldMessage(fe validator.FieldError) string {
	field := snakeCase(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func snakeCase(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// passwordMessages enforces the registration password policy: minimum eight
// characters with at least one letter and one digit.
func passwordMessages(password string) []string {
	var messages []string
	if len(password) < 8 {
		messages = append(messages, "password must be at least 8 characters")
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter {
		messages = append(messages, "password must contain at least one letter")
	}
	if !hasDigit {
		messages = append(messages, "password must contain at least one digit")
	}
	return messages
}
