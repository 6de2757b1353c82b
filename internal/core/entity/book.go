package entity

import (
	"time"

	"github.com/google/uuid"
)

// Book represents a catalog book. Author and genre relations are carried as
// id lists; the rows live in the book_authors and book_genres join tables.
// The "relase_date" wire name is inherited from the original API contract.
type Book struct {
	ID                uuid.UUID  `json:"id" db:"id"`
	Title             string     `json:"title" db:"title"`
	Description       *string    `json:"description,omitempty" db:"description"`
	ReleaseDate       *time.Time `json:"relase_date,omitempty" db:"release_date"`
	ISBN              string     `json:"isbn" db:"isbn"`
	PublishingHouseID uuid.UUID  `json:"publishing_house" db:"publishing_house_id"`
	AuthorIDs         []uuid.UUID `json:"authors" db:"-"`
	GenreIDs          []uuid.UUID `json:"genres" db:"-"`
}
