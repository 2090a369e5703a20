package reports

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"hris/internal/domain/employee"
	"hris/internal/domain/jobhistory"
)

type EmployeeDirectory interface {
	Get(ctx context.Context, id string) (*employee.Employee, error)
}

type HistorySource interface {
	GetHistory(ctx context.Context, employeeID string) ([]jobhistory.Record, error)
}

// Service renders employment reports. PDFs stream straight to the caller,
// nothing is written to disk.
type Service struct {
	employees EmployeeDirectory
	history   HistorySource
}

func NewService(employees EmployeeDirectory, history HistorySource) *Service {
	return &Service{employees: employees, history: history}
}

// EmploymentHistoryPDF writes a chronological employment summary for one
// employee. Open-ended periods render as "present".
func (s *Service) EmploymentHistoryPDF(ctx context.Context, employeeID string, w io.Writer) error {
	emp, err := s.employees.Get(ctx, employeeID)
	if err != nil {
		return err
	}
	records, err := s.history.GetHistory(ctx, employeeID)
	if err != nil {
		return err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Employment History")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s %s (%s)", emp.FirstName, emp.LastName, emp.EmployeeCode))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Status: %s", emp.Status))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Generated: %s", time.Now().UTC().Format("2006-01-02")))
	pdf.Ln(12)

	if len(records) == 0 {
		pdf.Cell(0, 8, "No job assignments on record.")
		return pdf.Output(w)
	}

	for _, rec := range records {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, fmt.Sprintf("%s  (%s to %s)", rec.Designation, rec.EffectiveFrom.Format("2006-01-02"), periodEnd(rec)))
		pdf.Ln(7)
		pdf.SetFont("Helvetica", "", 11)
		for _, line := range recordLines(rec) {
			pdf.Cell(0, 6, line)
			pdf.Ln(6)
		}
		pdf.Ln(4)
	}

	return pdf.Output(w)
}

func periodEnd(rec jobhistory.Record) string {
	if rec.EffectiveTo == nil {
		return "present"
	}
	return rec.EffectiveTo.Format("2006-01-02")
}

func recordLines(rec jobhistory.Record) []string {
	var lines []string
	if rec.Department != "" {
		lines = append(lines, "Department: "+rec.Department)
	}
	if rec.Location != "" {
		lines = append(lines, "Location: "+rec.Location)
	}
	if rec.LegalEntity != "" {
		lines = append(lines, "Legal entity: "+rec.LegalEntity)
	}
	if rec.WorkerType != "" {
		lines = append(lines, "Worker type: "+rec.WorkerType)
	}
	if len(rec.SecondaryJobTitles) > 0 {
		lines = append(lines, "Also serving as: "+strings.Join(rec.SecondaryJobTitles, ", "))
	}
	if rec.IsCurrent {
		lines = append(lines, "Current assignment")
	}
	return lines
}
