package onboarding

import (
	"time"

	"hris/internal/domain/dependents"
	"hris/internal/domain/employee"
	"hris/internal/domain/jobhistory"
)

// Dependent kinds as reported back to the caller.
const (
	KindContact       = "contact"
	KindCompensation  = "compensation"
	KindDocument      = "document"
	KindWorkPass      = "work_pass"
	KindQualification = "qualification"
	KindCertification = "certification"
	KindJobHistory    = "job_history"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Request bundles the employee payload with the optional dependent payloads
// created in the same client-facing operation. Nil pointers and empty slices
// mean "section not supplied".
type Request struct {
	Employee       employee.Employee          `json:"employee"`
	Job            jobhistory.Payload         `json:"job"`
	JoiningDate    *time.Time                 `json:"joiningDate,omitempty"`
	Contact        *dependents.EmergencyContact `json:"contact,omitempty"`
	Compensation   *dependents.Compensation   `json:"compensation,omitempty"`
	Documents      []dependents.Document      `json:"documents,omitempty"`
	WorkPass       *dependents.WorkPass       `json:"workPass,omitempty"`
	Qualifications []dependents.Qualification `json:"qualifications,omitempty"`
	Certifications []dependents.Certification `json:"certifications,omitempty"`
}

// DependentResult reports how one dependent creation settled. Failures are
// returned for operator follow-up, never raised as a top-level error.
type DependentResult struct {
	Kind    string `json:"kind"`
	Outcome string `json:"outcome"`
	Error   string `json:"error,omitempty"`
}

type Result struct {
	Employee         *employee.Employee `json:"employee"`
	DependentResults []DependentResult  `json:"dependentResults"`
}
