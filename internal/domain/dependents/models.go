package dependents

import "time"

type EmergencyContact struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship,omitempty"`
	Phone        string `json:"phone"`
	Email        string `json:"email,omitempty"`
	Address      string `json:"address,omitempty"`
}

type Compensation struct {
	AnnualSalary  float64    `json:"annualSalary"`
	Currency      string     `json:"currency"`
	PayFrequency  string     `json:"payFrequency,omitempty"`
	EffectiveFrom *time.Time `json:"effectiveFrom,omitempty"`
}

type Document struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	FileURL  string `json:"fileUrl"`
}

type WorkPass struct {
	PassType   string     `json:"passType"`
	PassNumber string     `json:"passNumber"`
	IssuedOn   *time.Time `json:"issuedOn,omitempty"`
	ExpiresOn  *time.Time `json:"expiresOn,omitempty"`
}

type Qualification struct {
	Institute    string `json:"institute"`
	Degree       string `json:"degree,omitempty"`
	FieldOfStudy string `json:"fieldOfStudy,omitempty"`
	CompletedIn  int    `json:"completedIn,omitempty"`
}

type Certification struct {
	Name      string     `json:"name"`
	IssuedBy  string     `json:"issuedBy,omitempty"`
	IssuedOn  *time.Time `json:"issuedOn,omitempty"`
	ExpiresOn *time.Time `json:"expiresOn,omitempty"`
}
