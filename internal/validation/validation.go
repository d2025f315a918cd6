// Package validation holds request-level validation helpers shared by
// handlers and services. All checks run before any storage or network effect.
package validation

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/sageplan/sage-backend/internal/apperrors"
)

// ValidateUUID checks if a string is a valid UUID.
func ValidateUUID(id string) error {
	if id == "" {
		return apperrors.ErrEmptyID
	}
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidUUID, id)
	}
	return nil
}

// ValidateNonEmpty checks that a required text field has content beyond
// whitespace.
func ValidateNonEmpty(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s", apperrors.ErrMissingRequiredField, field)
	}
	return nil
}
