package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation marks a missing required field or an out-of-set enum value.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks a reference to an id with no matching entity.
	ErrNotFound = errors.New("not found")
	// ErrNotEligible is returned when a request cannot be converted because it
	// is not accepted. Callers should stop offering conversion, not alert.
	ErrNotEligible = errors.New("request not eligible for conversion")
)

// ValidationError describes a single rejected field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func required(field string) error {
	return &ValidationError{Field: field, Message: "is required"}
}

func invalidEnum[T ~string](field, got string, allowed []T) error {
	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = string(a)
	}
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf("%q is not one of %s", got, strings.Join(names, ", ")),
	}
}

// NotFound wraps ErrNotFound with the entity kind and id.
func NotFound(entity, id string) error {
	return fmt.Errorf("%s %q: %w", entity, id, ErrNotFound)
}

// RequireText trims s and fails with a ValidationError when nothing is left.
func RequireText(field, s string) (string, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return "", required(field)
	}
	return t, nil
}
