package employee

import "time"

const (
	StatusActive     = "active"
	StatusInactive   = "inactive"
	StatusTerminated = "terminated"
)

type Employee struct {
	ID            string     `json:"id"`
	EmployeeCode  string     `json:"employeeCode"`
	FirstName     string     `json:"firstName"`
	MiddleName    string     `json:"middleName,omitempty"`
	LastName      string     `json:"lastName"`
	DateOfBirth   *time.Time `json:"dateOfBirth,omitempty"`
	Gender        string     `json:"gender,omitempty"`
	Nationality   string     `json:"nationality,omitempty"`
	MaritalStatus string     `json:"maritalStatus,omitempty"`
	WorkEmail     string     `json:"workEmail"`
	PersonalEmail string     `json:"personalEmail,omitempty"`
	MobileNumber  string     `json:"mobileNumber,omitempty"`
	WorkNumber    string     `json:"workNumber,omitempty"`
	PhotoURL      string     `json:"photoUrl,omitempty"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// Filter narrows List results. Zero values mean "any".
type Filter struct {
	Status string
	Search string
	Limit  int
	Offset int
}
