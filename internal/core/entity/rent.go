package entity

import (
	"time"

	"github.com/google/uuid"
)

// Rent represents one loan transaction: one member, one employee who
// processed the loan, and the set of rented books. The loan state is derived
// from the dates, not stored.
type Rent struct {
	ID                uuid.UUID   `json:"id" db:"id"`
	RentDate          time.Time   `json:"rent_date" db:"rent_date"`
	PlannedReturnDate time.Time   `json:"planned_return_date" db:"planned_return_date"`
	ReturnDate        *time.Time  `json:"return_date,omitempty" db:"return_date"`
	MemberID          uuid.UUID   `json:"member" db:"member_id"`
	EmployeeID        uuid.UUID   `json:"employee" db:"employee_id"`
	BookIDs           []uuid.UUID `json:"books" db:"-"`
}

// Returned reports whether the loan has been closed by recording a return
// date. An edit may clear the date again, reopening the loan.
func (r Rent) Returned() bool {
	return r.ReturnDate != nil
}

// Overdue reports whether the loan is past its planned return date and still
// open. Computed at read time against the supplied clock value.
func (r Rent) Overdue(now time.Time) bool {
	return r.ReturnDate == nil && now.After(r.PlannedReturnDate)
}
