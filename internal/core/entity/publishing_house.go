package entity

import "github.com/google/uuid"

// PublishingHouse represents a publisher. A book belongs to exactly one
// publishing house.
type PublishingHouse struct {
	ID             uuid.UUID `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	FoundationYear *int      `json:"foundation_year,omitempty" db:"foundation_year"`
	Address        *string   `json:"address,omitempty" db:"address"`
	Website        *string   `json:"website,omitempty" db:"website"`
}
