package usecase

import (
	"errors"
	"fmt"
	"strings"

	"travel-booking/pkg/utils"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid phone number or password")
	ErrForbidden          = errors.New("forbidden")
	ErrBookingFailed      = errors.New("booking failed")
	ErrInsufficientSeats  = errors.New("not enough seats available")
)

// ValidationError carries per-field messages and matches ErrValidation.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValidation, utils.FormatValidationErrors(e.Fields))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func newValidationError(fields map[string]string) error {
	return &ValidationError{Fields: fields}
}

func invalidField(field, msg string) error {
	return newValidationError(map[string]string{field: msg})
}

// validate runs the struct tags and wraps any failures.
func validate(req any) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return newValidationError(errs)
	}
	return nil
}

func notFound(resource, id string) error {
	return fmt.Errorf("%s %s %w", strings.ToLower(resource), id, ErrNotFound)
}
