package employeeshandler

import (
	"time"

	"hris/internal/domain/dependents"
	"hris/internal/domain/jobhistory"
	"hris/internal/domain/onboarding"
	"hris/internal/transport/http/shared"
)

// Wire payloads accept dates as YYYY-MM-DD or RFC3339 strings; unparseable
// optional dates are dropped rather than failing the whole section.

type jsonJob struct {
	Designation        string   `json:"designation"`
	Department         string   `json:"department"`
	ReportingTo        string   `json:"reportingTo"`
	Status             string   `json:"status"`
	TimeType           string   `json:"timeType"`
	Location           string   `json:"location"`
	LegalEntity        string   `json:"legalEntity"`
	BusinessUnit       string   `json:"businessUnit"`
	WorkerType         string   `json:"workerType"`
	ProbationPolicy    string   `json:"probationPolicy"`
	NoticePeriod       string   `json:"noticePeriod"`
	SecondaryJobTitles []string `json:"secondaryJobTitles"`
}

func (j jsonJob) toPayload() jobhistory.Payload {
	return jobhistory.Payload{
		Designation:        j.Designation,
		Department:         j.Department,
		ReportingTo:        j.ReportingTo,
		Status:             j.Status,
		TimeType:           j.TimeType,
		Location:           j.Location,
		LegalEntity:        j.LegalEntity,
		BusinessUnit:       j.BusinessUnit,
		WorkerType:         j.WorkerType,
		ProbationPolicy:    j.ProbationPolicy,
		NoticePeriod:       j.NoticePeriod,
		SecondaryJobTitles: j.SecondaryJobTitles,
	}
}

type jsonContact struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Address      string `json:"address"`
}

type jsonCompensation struct {
	AnnualSalary  float64 `json:"annualSalary"`
	Currency      string  `json:"currency"`
	PayFrequency  string  `json:"payFrequency"`
	EffectiveFrom string  `json:"effectiveFrom"`
}

type jsonDocument struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	FileURL  string `json:"fileUrl"`
}

type jsonWorkPass struct {
	PassType   string `json:"passType"`
	PassNumber string `json:"passNumber"`
	IssuedOn   string `json:"issuedOn"`
	ExpiresOn  string `json:"expiresOn"`
}

type jsonQualification struct {
	Institute    string `json:"institute"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldOfStudy"`
	CompletedIn  int    `json:"completedIn"`
}

type jsonCertification struct {
	Name      string `json:"name"`
	IssuedBy  string `json:"issuedBy"`
	IssuedOn  string `json:"issuedOn"`
	ExpiresOn string `json:"expiresOn"`
}

func (p createEmployeeRequest) attachDependents(req *onboarding.Request) {
	if c := p.Contact; c != nil {
		req.Contact = &dependents.EmergencyContact{
			Name:         c.Name,
			Relationship: c.Relationship,
			Phone:        c.Phone,
			Email:        c.Email,
			Address:      c.Address,
		}
	}
	if c := p.Compensation; c != nil {
		req.Compensation = &dependents.Compensation{
			AnnualSalary:  c.AnnualSalary,
			Currency:      c.Currency,
			PayFrequency:  c.PayFrequency,
			EffectiveFrom: parseOptionalDate(c.EffectiveFrom),
		}
	}
	for _, d := range p.Documents {
		req.Documents = append(req.Documents, dependents.Document{
			Name:     d.Name,
			Category: d.Category,
			FileURL:  d.FileURL,
		})
	}
	if wp := p.WorkPass; wp != nil {
		req.WorkPass = &dependents.WorkPass{
			PassType:   wp.PassType,
			PassNumber: wp.PassNumber,
			IssuedOn:   parseOptionalDate(wp.IssuedOn),
			ExpiresOn:  parseOptionalDate(wp.ExpiresOn),
		}
	}
	for _, q := range p.Qualifications {
		req.Qualifications = append(req.Qualifications, dependents.Qualification{
			Institute:    q.Institute,
			Degree:       q.Degree,
			FieldOfStudy: q.FieldOfStudy,
			CompletedIn:  q.CompletedIn,
		})
	}
	for _, c := range p.Certifications {
		req.Certifications = append(req.Certifications, dependents.Certification{
			Name:      c.Name,
			IssuedBy:  c.IssuedBy,
			IssuedOn:  parseOptionalDate(c.IssuedOn),
			ExpiresOn: parseOptionalDate(c.ExpiresOn),
		})
	}
}

func parseOptionalDate(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	parsed, err := shared.ParseDate(raw)
	if err != nil || parsed.IsZero() {
		return nil
	}
	return &parsed
}
