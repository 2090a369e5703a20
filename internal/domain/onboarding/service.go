package onboarding

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"hris/internal/domain/dependents"
	"hris/internal/domain/employee"
	"hris/internal/domain/jobhistory"
)

type EmployeeCreator interface {
	Create(ctx context.Context, emp employee.Employee) (*employee.Employee, error)
}

type JobHistoryCreator interface {
	CreateInitial(ctx context.Context, employeeID string, payload jobhistory.Payload, effectiveFrom *time.Time) (*jobhistory.Record, error)
}

type DependentStore interface {
	CreateEmergencyContact(ctx context.Context, employeeID string, contact dependents.EmergencyContact) error
	CreateCompensation(ctx context.Context, employeeID string, comp dependents.Compensation) error
	CreateDocument(ctx context.Context, employeeID string, doc dependents.Document) error
	CreateWorkPass(ctx context.Context, employeeID string, pass dependents.WorkPass) error
	CreateQualification(ctx context.Context, employeeID string, qual dependents.Qualification) error
	CreateCertification(ctx context.Context, employeeID string, cert dependents.Certification) error
}

// Service creates an employee and fans out the dependent records as one
// client-facing operation. The employee write must succeed first; dependents
// then settle independently: one failing never aborts the others and nothing
// already created is rolled back.
type Service struct {
	employees EmployeeCreator
	history   JobHistoryCreator
	deps      DependentStore
}

func NewService(employees EmployeeCreator, history JobHistoryCreator, deps DependentStore) *Service {
	return &Service{employees: employees, history: history, deps: deps}
}

type task struct {
	kind string
	run  func(ctx context.Context) error
}

// CreateEmployeeWithDetails is deliberately not idempotent: two identical
// calls create two employees with distinct employee codes.
func (s *Service) CreateEmployeeWithDetails(ctx context.Context, req Request) (*Result, error) {
	created, err := s.employees.Create(ctx, req.Employee)
	if err != nil {
		return nil, err
	}

	tasks := s.collectTasks(created.ID, req)
	results := make([]DependentResult, len(tasks))

	var wg sync.WaitGroup
	wg.Add(len(tasks))
	for i, tk := range tasks {
		go func(i int, tk task) {
			defer wg.Done()
			if err := tk.run(ctx); err != nil {
				slog.Warn("dependent creation failed",
					"employeeId", created.ID, "kind", tk.kind, "err", err)
				results[i] = DependentResult{Kind: tk.kind, Outcome: OutcomeFailure, Error: err.Error()}
				return
			}
			results[i] = DependentResult{Kind: tk.kind, Outcome: OutcomeSuccess}
		}(i, tk)
	}
	wg.Wait()

	return &Result{Employee: created, DependentResults: results}, nil
}

// collectTasks filters each optional section for completeness before
// submission; an incomplete section is skipped, not reported as a failure.
func (s *Service) collectTasks(employeeID string, req Request) []task {
	var tasks []task

	tasks = append(tasks, task{kind: KindJobHistory, run: func(ctx context.Context) error {
		_, err := s.history.CreateInitial(ctx, employeeID, req.Job, req.JoiningDate)
		return err
	}})

	if contact := req.Contact; contact != nil {
		tasks = append(tasks, task{kind: KindContact, run: func(ctx context.Context) error {
			return s.deps.CreateEmergencyContact(ctx, employeeID, *contact)
		}})
	}
	if comp := req.Compensation; comp != nil {
		tasks = append(tasks, task{kind: KindCompensation, run: func(ctx context.Context) error {
			return s.deps.CreateCompensation(ctx, employeeID, *comp)
		}})
	}
	for _, doc := range req.Documents {
		if strings.TrimSpace(doc.Name) == "" && strings.TrimSpace(doc.FileURL) == "" {
			continue
		}
		doc := doc
		tasks = append(tasks, task{kind: KindDocument, run: func(ctx context.Context) error {
			return s.deps.CreateDocument(ctx, employeeID, doc)
		}})
	}
	if pass := req.WorkPass; pass != nil {
		tasks = append(tasks, task{kind: KindWorkPass, run: func(ctx context.Context) error {
			return s.deps.CreateWorkPass(ctx, employeeID, *pass)
		}})
	}
	for _, qual := range req.Qualifications {
		if strings.TrimSpace(qual.Institute) == "" {
			continue
		}
		qual := qual
		tasks = append(tasks, task{kind: KindQualification, run: func(ctx context.Context) error {
			return s.deps.CreateQualification(ctx, employeeID, qual)
		}})
	}
	for _, cert := range req.Certifications {
		if strings.TrimSpace(cert.Name) == "" {
			continue
		}
		cert := cert
		tasks = append(tasks, task{kind: KindCertification, run: func(ctx context.Context) error {
			return s.deps.CreateCertification(ctx, employeeID, cert)
		}})
	}

	return tasks
}
