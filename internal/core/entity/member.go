package entity

import (
	"time"

	"github.com/google/uuid"
)

// Member represents a library patron. RentIDs lists the member's loan
// transactions and is populated from the rents table on read.
type Member struct {
	ID          uuid.UUID   `json:"id" db:"id"`
	Name        string      `json:"name" db:"name"`
	Surname     string      `json:"surname" db:"surname"`
	Birthdate   time.Time   `json:"birthdate" db:"birthdate"`
	Address     *string     `json:"address,omitempty" db:"address"`
	PhoneNumber *string     `json:"phone_number,omitempty" db:"phone_number"`
	Email       *string     `json:"email,omitempty" db:"email"`
	RentIDs     []uuid.UUID `json:"rents" db:"-"`
}
