package entity

import "github.com/google/uuid"

// Author represents a book author. Books are linked through the
// book_authors join table and carried as id lists on Book.
type Author struct {
	ID      uuid.UUID `json:"id" db:"id"`
	Name    string    `json:"name" db:"name"`
	Surname string    `json:"surname" db:"surname"`
}
