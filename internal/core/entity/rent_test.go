package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestRent_Returned tests the derived returned state
func TestRent_Returned(t *testing.T) {
	returnDate := time.Date(2023, 9, 2, 0, 0, 0, 0, time.UTC)

	open := Rent{}
	closed := Rent{ReturnDate: &returnDate}

	assert.False(t, open.Returned())
	assert.True(t, closed.Returned())
}

// TestRent_Overdue tests the derived overdue state against a clock value
func TestRent_Overdue(t *testing.T) {
	planned := time.Date(2023, 9, 23, 0, 0, 0, 0, time.UTC)
	returnDate := time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		rent    Rent
		now     time.Time
		overdue bool
	}{
		{
			name:    "open and before planned date",
			rent:    Rent{PlannedReturnDate: planned},
			now:     planned.AddDate(0, 0, -1),
			overdue: false,
		},
		{
			name:    "open and past planned date",
			rent:    Rent{PlannedReturnDate: planned},
			now:     planned.AddDate(0, 0, 1),
			overdue: true,
		},
		{
			name:    "open exactly at planned date",
			rent:    Rent{PlannedReturnDate: planned},
			now:     planned,
			overdue: false,
		},
		{
			name:    "returned late is not overdue",
			rent:    Rent{PlannedReturnDate: planned, ReturnDate: &returnDate},
			now:     planned.AddDate(0, 1, 0),
			overdue: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overdue, tt.rent.Overdue(tt.now))
		})
	}
}
