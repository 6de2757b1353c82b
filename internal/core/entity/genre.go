package entity

import "github.com/google/uuid"

// Genre represents a book genre.
type Genre struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description,omitempty" db:"description"`
}
