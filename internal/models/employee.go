package models

import "time"

// Employee status values
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Employee struct {
	ID           int       `db:"id" json:"id"`
	EmployeeCode string    `db:"employee_code" json:"employee_code"`
	Name         string    `db:"name" json:"name"`
	Position     string    `db:"position" json:"position"`
	Department   string    `db:"department" json:"department"`
	Salary       int       `db:"salary" json:"salary"`
	Status       string    `db:"status" json:"status"` // active, inactive
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

type EmployeeRequest struct {
	EmployeeCode string `json:"employee_code" validate:"required"`
	Name         string `json:"name" validate:"required"`
	Position     string `json:"position" validate:"required"`
	Department   string `json:"department" validate:"required"`
	Salary       int    `json:"salary" validate:"gte=0"`
	Status       string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// EmployeeFilter holds per-field list predicates. Code and Status match
// exactly, the rest match as substrings. All present predicates are ANDed.
type EmployeeFilter struct {
	EmployeeCode string
	Name         string
	Position     string
	Department   string
	Status       string
}

func (f EmployeeFilter) IsZero() bool {
	return f.EmployeeCode == "" && f.Name == "" && f.Position == "" &&
		f.Department == "" && f.Status == ""
}

// EmployeeStats is the payload of the stats endpoint.
type EmployeeStats struct {
	Total        int            `json:"total"`
	Active       int            `json:"active"`
	Inactive     int            `json:"inactive"`
	ByDepartment map[string]int `json:"by_department"`
}
