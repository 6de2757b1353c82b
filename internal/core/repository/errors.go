package repository

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

var (
	// ErrNotFound matches any NotFoundError via errors.Is.
	ErrNotFound = errors.New("record not found")

	// ErrDeleteRestricted is returned when a delete would leave a dangling
	// reference (a publishing house with books, a member or employee with
	// rents).
	ErrDeleteRestricted = errors.New("record is referenced and cannot be deleted")
)

// NotFoundError identifies which record a read, edit or delete missed.
type NotFoundError struct {
	Kind string
	ID   uuid.UUID
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

func (e NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ReferenceNotFoundError identifies which required singular foreign reference
// of a mutation did not resolve. The mutation performs no write in that case.
type ReferenceNotFoundError struct {
	Kind string
	ID   uuid.UUID
}

func (e ReferenceNotFoundError) Error() string {
	return fmt.Sprintf("referenced %s %s does not exist", e.Kind, e.ID)
}

// foreign_key_violation, raised by the RESTRICT rules in the schema.
func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23503"
}
