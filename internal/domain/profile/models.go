package profile

import "time"

// The six satellite profiles are plain 1:1 extensions of an employee, unique
// on employee_id, with no cross-record invariants.

type Address struct {
	EmployeeID string    `json:"employeeId"`
	Line1      string    `json:"line1"`
	Line2      string    `json:"line2,omitempty"`
	City       string    `json:"city,omitempty"`
	State      string    `json:"state,omitempty"`
	PostalCode string    `json:"postalCode,omitempty"`
	Country    string    `json:"country,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type Education struct {
	EmployeeID           string    `json:"employeeId"`
	HighestQualification string    `json:"highestQualification"`
	Institute            string    `json:"institute,omitempty"`
	YearCompleted        int       `json:"yearCompleted,omitempty"`
	Grade                string    `json:"grade,omitempty"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

type Experience struct {
	EmployeeID       string    `json:"employeeId"`
	PreviousEmployer string    `json:"previousEmployer,omitempty"`
	LastDesignation  string    `json:"lastDesignation,omitempty"`
	TotalYears       float64   `json:"totalYears,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type Family struct {
	EmployeeID    string    `json:"employeeId"`
	SpouseName    string    `json:"spouseName,omitempty"`
	ChildrenCount int       `json:"childrenCount,omitempty"`
	FatherName    string    `json:"fatherName,omitempty"`
	MotherName    string    `json:"motherName,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type Identity struct {
	EmployeeID     string     `json:"employeeId"`
	NationalID     string     `json:"nationalId,omitempty"`
	PassportNumber string     `json:"passportNumber,omitempty"`
	PassportExpiry *time.Time `json:"passportExpiry,omitempty"`
	TaxID          string     `json:"taxId,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

type Skills struct {
	EmployeeID string    `json:"employeeId"`
	Skills     []string  `json:"skills,omitempty"`
	Languages  []string  `json:"languages,omitempty"`
	Summary    string    `json:"summary,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
