package repository

import (
	"errors"
	"strings"

	"github.com/alexanderramin/intake/internal/domain"
)

// ErrNotFound is returned by Get* lookups with no matching row.
var ErrNotFound = domain.ErrNotFound

// ErrDuplicate is returned when an insert violates a uniqueness constraint,
// e.g. a second ticket for the same intake request.
var ErrDuplicate = errors.New("duplicate")

// isUniqueViolation reports whether err came from a UNIQUE or PRIMARY KEY
// constraint. The pure-Go driver only exposes this through the message.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "constraint failed: UNIQUE")
}
