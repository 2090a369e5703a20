package employee

import (
	"context"
	"strings"

	"hris/internal/domain/apperr"
)

var validStatuses = map[string]bool{
	StatusActive:     true,
	StatusInactive:   true,
	StatusTerminated: true,
}

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

func (s *Service) Create(ctx context.Context, emp Employee) (*Employee, error) {
	if emp.Status == "" {
		emp.Status = StatusActive
	}
	if err := validate(emp); err != nil {
		return nil, err
	}
	return s.store.Create(ctx, emp)
}

func (s *Service) Get(ctx context.Context, employeeID string) (*Employee, error) {
	return s.store.Get(ctx, employeeID)
}

func (s *Service) Exists(ctx context.Context, employeeID string) (bool, error) {
	return s.store.Exists(ctx, employeeID)
}

func (s *Service) List(ctx context.Context, filter Filter) ([]Employee, error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	return s.store.List(ctx, filter)
}

func (s *Service) Update(ctx context.Context, employeeID string, emp Employee) (*Employee, error) {
	if err := validate(emp); err != nil {
		return nil, err
	}
	return s.store.Update(ctx, employeeID, emp)
}

func (s *Service) Delete(ctx context.Context, employeeID string) error {
	return s.store.Delete(ctx, employeeID)
}

func validate(emp Employee) error {
	if strings.TrimSpace(emp.FirstName) == "" {
		return apperr.Validation("firstName is required")
	}
	if strings.TrimSpace(emp.LastName) == "" {
		return apperr.Validation("lastName is required")
	}
	if emp.DateOfBirth == nil {
		return apperr.Validation("dateOfBirth is required")
	}
	if strings.TrimSpace(emp.WorkEmail) == "" {
		return apperr.Validation("workEmail is required")
	}
	if !strings.Contains(emp.WorkEmail, "@") {
		return apperr.Validation("workEmail must be a valid email address")
	}
	if !validStatuses[emp.Status] {
		return apperr.Validation("status must be one of active, inactive, terminated")
	}
	return nil
}
