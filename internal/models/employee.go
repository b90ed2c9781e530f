package models

import "time"

// Employee represents an employee entity.
type Employee struct {
	ID            string    `json:"id"`
	EmployeeName  string    `json:"employeeName"`
	Department    string    `json:"department"`
	ContactNumber string    `json:"contactNumber"`
	Designation   string    `json:"designation"`
	Email         string    `json:"email,omitempty"`
	Location      string    `json:"location,omitempty"`
	Manager       string    `json:"manager,omitempty"`
	Bio           string    `json:"bio,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// EmployeeInput carries the fields of a new employee record.
type EmployeeInput struct {
	EmployeeName  string `json:"employeeName"  validate:"required"`
	Department    string `json:"department"    validate:"required"`
	ContactNumber string `json:"contactNumber" validate:"required"`
	Designation   string `json:"designation"   validate:"required"`
	Email         string `json:"email"`
	Location      string `json:"location"`
	Manager       string `json:"manager"`
	Bio           string `json:"bio"`
}

// EmployeePatch carries a partial update. Nil fields are left untouched.
type EmployeePatch struct {
	EmployeeName  *string `json:"employeeName,omitempty"`
	Department    *string `json:"department,omitempty"`
	ContactNumber *string `json:"contactNumber,omitempty"`
	Designation   *string `json:"designation,omitempty"`
	Email         *string `json:"email,omitempty"`
	Location      *string `json:"location,omitempty"`
	Manager       *string `json:"manager,omitempty"`
	Bio           *string `json:"bio,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p EmployeePatch) IsEmpty() bool {
	return p.EmployeeName == nil && p.Department == nil && p.ContactNumber == nil && p.Designation == nil &&
		p.Email == nil && p.Location == nil && p.Manager == nil && p.Bio == nil
}
