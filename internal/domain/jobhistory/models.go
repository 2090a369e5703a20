package jobhistory

import "time"

// Record is one period of an employee's assignment. The open-ended current
// record has IsCurrent set and no EffectiveTo; closed periods are inclusive
// [EffectiveFrom, EffectiveTo].
type Record struct {
	ID                 string     `json:"id"`
	EmployeeID         string     `json:"employeeId"`
	Designation        string     `json:"designation"`
	Department         string     `json:"department,omitempty"`
	ReportingTo        string     `json:"reportingTo,omitempty"`
	Status             string     `json:"status,omitempty"`
	TimeType           string     `json:"timeType,omitempty"`
	Location           string     `json:"location,omitempty"`
	LegalEntity        string     `json:"legalEntity,omitempty"`
	BusinessUnit       string     `json:"businessUnit,omitempty"`
	WorkerType         string     `json:"workerType,omitempty"`
	ProbationPolicy    string     `json:"probationPolicy,omitempty"`
	NoticePeriod       string     `json:"noticePeriod,omitempty"`
	SecondaryJobTitles []string   `json:"secondaryJobTitles,omitempty"`
	IsCurrent          bool       `json:"isCurrent"`
	EffectiveFrom      time.Time  `json:"effectiveFrom"`
	EffectiveTo        *time.Time `json:"effectiveTo,omitempty"`
	CreatedBy          string     `json:"createdBy,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// Payload carries the assignment attributes supplied by callers; the manager
// owns IsCurrent and the effective period.
type Payload struct {
	Designation        string   `json:"designation"`
	Department         string   `json:"department,omitempty"`
	ReportingTo        string   `json:"reportingTo,omitempty"`
	Status             string   `json:"status,omitempty"`
	TimeType           string   `json:"timeType,omitempty"`
	Location           string   `json:"location,omitempty"`
	LegalEntity        string   `json:"legalEntity,omitempty"`
	BusinessUnit       string   `json:"businessUnit,omitempty"`
	WorkerType         string   `json:"workerType,omitempty"`
	ProbationPolicy    string   `json:"probationPolicy,omitempty"`
	NoticePeriod       string   `json:"noticePeriod,omitempty"`
	SecondaryJobTitles []string `json:"secondaryJobTitles,omitempty"`
	CreatedBy          string   `json:"-"`
}

func (p Payload) toRecord(employeeID string, effectiveFrom time.Time) Record {
	return Record{
		EmployeeID:         employeeID,
		Designation:        p.Designation,
		Department:         p.Department,
		ReportingTo:        p.ReportingTo,
		Status:             p.Status,
		TimeType:           p.TimeType,
		Location:           p.Location,
		LegalEntity:        p.LegalEntity,
		BusinessUnit:       p.BusinessUnit,
		WorkerType:         p.WorkerType,
		ProbationPolicy:    p.ProbationPolicy,
		NoticePeriod:       p.NoticePeriod,
		SecondaryJobTitles: p.SecondaryJobTitles,
		IsCurrent:          true,
		EffectiveFrom:      effectiveFrom,
		CreatedBy:          p.CreatedBy,
	}
}
