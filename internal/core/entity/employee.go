package entity

import "github.com/google/uuid"

// Employee represents a staff member. The credential hash is never included
// in JSON responses.
type Employee struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Surname      string    `json:"surname" db:"surname"`
	JobPosition  *string   `json:"job_position,omitempty" db:"job_position"`
	PasswordHash string    `json:"-" db:"password_hash"`
}

type RegisterEmployeeRequest struct {
	Name        string  `json:"name"`
	Surname     string  `json:"surname"`
	JobPosition *string `json:"job_position,omitempty"`
	Password    string  `json:"password"`
}

type LoginEmployeeRequest struct {
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Password string `json:"password"`
}

type LoginEmployeeResponse struct {
	Token string `json:"token"`
}
