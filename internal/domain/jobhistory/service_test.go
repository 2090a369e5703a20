package jobhistory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"hris/internal/domain/apperr"
)

// fakeStore keeps records in memory and enforces the same rule the partial
// unique index enforces in Postgres: at most one current record per employee.
type fakeStore struct {
	mu      sync.Mutex
	seq     int
	records map[string]*Record
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: map[string]*Record{}}
}

func (f *fakeStore) Insert(ctx context.Context, rec Record) (*Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.insertLocked(rec)
}

func (f *fakeStore) insertLocked(rec Record) (*Record, error) {
	if rec.IsCurrent {
		for _, existing := range f.records {
			if existing.EmployeeID == rec.EmployeeID && existing.IsCurrent {
				return nil, apperr.Conflict("job history record already exists")
			}
		}
	}
	f.seq++
	rec.ID = fmt.Sprintf("rec-%d", f.seq)
	rec.CreatedAt = time.Now().UTC()
	rec.UpdatedAt = rec.CreatedAt
	stored := rec
	f.records[rec.ID] = &stored
	out := stored
	return &out, nil
}

func (f *fakeStore) FindCurrent(ctx context.Context, employeeID string) (*Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID && rec.IsCurrent {
			out := *rec
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) Get(ctx context.Context, recordID string) (*Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.records[recordID]
	if !ok {
		return nil, apperr.NotFound("job history record %s not found", recordID)
	}
	out := *rec
	return &out, nil
}

func (f *fakeStore) ListByEmployee(ctx context.Context, employeeID string) ([]Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []Record
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID {
			out = append(out, *rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EffectiveFrom.Before(out[j].EffectiveFrom) })
	return out, nil
}

func (f *fakeStore) Promote(ctx context.Context, rec Record, closeTo time.Time) (*Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.records {
		if existing.EmployeeID == rec.EmployeeID && existing.IsCurrent {
			to := closeTo
			if existing.EffectiveFrom.After(to) {
				to = existing.EffectiveFrom
			}
			existing.IsCurrent = false
			existing.EffectiveTo = &to
			existing.UpdatedAt = time.Now().UTC()
		}
	}
	return f.insertLocked(rec)
}

func (f *fakeStore) SetCurrent(ctx context.Context, recordID string) (*Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	target, ok := f.records[recordID]
	if !ok {
		return nil, apperr.NotFound("job history record %s not found", recordID)
	}
	today := time.Now().UTC().Truncate(24 * time.Hour)
	for _, existing := range f.records {
		if existing.EmployeeID == target.EmployeeID && existing.IsCurrent && existing.ID != recordID {
			to := today
			if existing.EffectiveFrom.After(to) {
				to = existing.EffectiveFrom
			}
			existing.IsCurrent = false
			existing.EffectiveTo = &to
		}
	}
	target.IsCurrent = true
	target.EffectiveTo = nil
	out := *target
	return &out, nil
}

func (f *fakeStore) Delete(ctx context.Context, recordID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.records[recordID]; !ok {
		return apperr.NotFound("job history record %s not found", recordID)
	}
	delete(f.records, recordID)
	return nil
}

func (f *fakeStore) currentCount(employeeID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID && rec.IsCurrent {
			count++
		}
	}
	return count
}

type fakeDirectory struct {
	known map[string]bool
}

func (f fakeDirectory) Exists(ctx context.Context, employeeID string) (bool, error) {
	return f.known[employeeID], nil
}

func newTestService(employees ...string) (*Service, *fakeStore) {
	store := newFakeStore()
	known := map[string]bool{}
	for _, id := range employees {
		known[id] = true
	}
	return NewService(store, fakeDirectory{known: known}), store
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestCreateInitialHire(t *testing.T) {
	svc, store := newTestService("e1")
	hired := date(2024, time.January, 1)

	rec, err := svc.CreateInitial(context.Background(), "e1", Payload{Designation: "Engineer"}, &hired)
	if err != nil {
		t.Fatalf("create initial: %v", err)
	}
	if !rec.IsCurrent {
		t.Fatal("expected initial record to be current")
	}
	if rec.EffectiveTo != nil {
		t.Fatal("expected open-ended record")
	}
	if !rec.EffectiveFrom.Equal(hired) {
		t.Fatalf("expected effectiveFrom %v, got %v", hired, rec.EffectiveFrom)
	}

	current, err := svc.GetCurrent(context.Background(), "e1")
	if err != nil {
		t.Fatalf("get current: %v", err)
	}
	if current == nil || current.Designation != "Engineer" {
		t.Fatalf("expected current Engineer record, got %+v", current)
	}
	if store.currentCount("e1") != 1 {
		t.Fatalf("expected exactly one current record, got %d", store.currentCount("e1"))
	}
}

func TestCreateInitialDefaultsToToday(t *testing.T) {
	svc, _ := newTestService("e1")

	rec, err := svc.CreateInitial(context.Background(), "e1", Payload{Designation: "Engineer"}, nil)
	if err != nil {
		t.Fatalf("create initial: %v", err)
	}
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if !rec.EffectiveFrom.Equal(today) {
		t.Fatalf("expected effectiveFrom to default to today, got %v", rec.EffectiveFrom)
	}
}

func TestCreateInitialRejectsSecondCurrent(t *testing.T) {
	svc, _ := newTestService("e1")
	hired := date(2024, time.January, 1)

	if _, err := svc.CreateInitial(context.Background(), "e1", Payload{Designation: "Engineer"}, &hired); err != nil {
		t.Fatalf("create initial: %v", err)
	}
	_, err := svc.CreateInitial(context.Background(), "e1", Payload{Designation: "Engineer II"}, &hired)
	if !apperr.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateInitialUnknownEmployee(t *testing.T) {
	svc, _ := newTestService("e1")
	_, err := svc.CreateInitial(context.Background(), "ghost", Payload{Designation: "Engineer"}, nil)
	if !apperr.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestCreateInitialValidatesPayload(t *testing.T) {
	svc, _ := newTestService("e1")
	if _, err := svc.CreateInitial(context.Background(), "e1", Payload{}, nil); !apperr.IsValidation(err) {
		t.Fatal("expected validation error for missing designation")
	}
	payload := Payload{Designation: "Engineer", ReportingTo: "e1"}
	if _, err := svc.CreateInitial(context.Background(), "e1", payload, nil); !apperr.IsValidation(err) {
		t.Fatal("expected validation error for self reporting line")
	}
}

func TestPromoteClosesPreviousRecord(t *testing.T) {
	svc, store := newTestService("e1")
	hired := date(2024, time.January, 1)
	if _, err := svc.CreateInitial(context.Background(), "e1", Payload{Designation: "Engineer"}, &hired); err != nil {
		t.Fatalf("create initial: %v", err)
	}

	promoted, err := svc.Promote(context.Background(), "e1", Payload{Designation: "Senior Engineer"}, date(2025, time.January, 1))
	if err != nil {
		t.Fatalf("promote: %v", err)
	}
	if !promoted.IsCurrent || promoted.EffectiveTo != nil {
		t.Fatalf("expected open current record, got %+v", promoted)
	}
	if !promoted.EffectiveFrom.Equal(date(2025, time.January, 1)) {
		t.Fatalf("unexpected effectiveFrom %v", promoted.EffectiveFrom)
	}

	history, err := svc.GetHistory(context.Background(), "e1")
	if err != nil {
		t.Fatalf("get history: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected two records, got %d", len(history))
	}
	first := history[0]
	if first.IsCurrent {
		t.Fatal("expected first record to be closed")
	}
	// Day-before boundary: periods are inclusive and never touch.
	if first.EffectiveTo == nil || !first.EffectiveTo.Equal(date(2024, time.December, 31)) {
		t.Fatalf("expected first record closed at 2024-12-31, got %v", first.EffectiveTo)
	}
	if history[1].Designation != "Senior Engineer" {
		t.Fatalf("unexpected second record %+v", history[1])
	}
	if store.currentCount("e1") != 1 {
		t.Fatalf("invariant violated: %d current records", store.currentCount("e1"))
	}
}

func TestPromoteRequiresEffectiveFrom(t *testing.T) {
	svc, _ := newTestService("e1")
	_, err := svc.Promote(context.Background(), "e1", Payload{Designation: "Lead"}, time.Time{})
	if !apperr.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestPromoteUnknownEmployee(t *testing.T) {
	svc, _ := newTestService("e1")
	_, err := svc.Promote(context.Background(), "ghost", Payload{Designation: "Lead"}, date(2025, time.March, 1))
	if !apperr.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestHistoryOrderedByEffectiveFrom(t *testing.T) {
	svc, _ := newTestService("e1")
	hired := date(2023, time.June, 1)
	if _, err := svc.CreateInitial(context.Background(), "e1", Payload{Designation: "Engineer"}, &hired); err != nil {
		t.Fatalf("create initial: %v", err)
	}
	for i, from := range []time.Time{date(2024, time.January, 1), date(2024, time.July, 1), date(2025, time.February, 1)} {
		if _, err := svc.Promote(context.Background(), "e1", Payload{Designation: fmt.Sprintf("Engineer %d", i+2)}, from); err != nil {
			t.Fatalf("promote %d: %v", i, err)
		}
	}

	history, err := svc.GetHistory(context.Background(), "e1")
	if err != nil {
		t.Fatalf("get history: %v", err)
	}
	if len(history) != 4 {
		t.Fatalf("expected four records, got %d", len(history))
	}
	for i := 1; i < len(history); i++ {
		if history[i].EffectiveFrom.Before(history[i-1].EffectiveFrom) {
			t.Fatalf("history out of order at %d: %v before %v", i, history[i].EffectiveFrom, history[i-1].EffectiveFrom)
		}
	}
	for i := 0; i < len(history)-1; i++ {
		if history[i].IsCurrent {
			t.Fatalf("closed record %d still current", i)
		}
		if history[i].EffectiveTo == nil {
			t.Fatalf("closed record %d has no end date", i)
		}
	}
	if !history[len(history)-1].IsCurrent {
		t.Fatal("expected last record to be current")
	}
}

func TestConcurrentPromotesKeepInvariant(t *testing.T) {
	svc, store := newTestService("e1")
	hired := date(2024, time.January, 1)
	if _, err := svc.CreateInitial(context.Background(), "e1", Payload{Designation: "Engineer"}, &hired); err != nil {
		t.Fatalf("create initial: %v", err)
	}

	const workers = 16
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			from := date(2025, time.January, 1).AddDate(0, 0, i)
			_, _ = svc.Promote(context.Background(), "e1", Payload{Designation: "Senior Engineer"}, from)
		}(i)
	}
	wg.Wait()

	if got := store.currentCount("e1"); got != 1 {
		t.Fatalf("invariant violated after concurrent promotes: %d current records", got)
	}
}

func TestGetCurrentNoHistoryIsNotAnError(t *testing.T) {
	svc, _ := newTestService("e1")
	current, err := svc.GetCurrent(context.Background(), "e1")
	if err != nil {
		t.Fatalf("get current: %v", err)
	}
	if current != nil {
		t.Fatalf("expected no current record, got %+v", current)
	}
}

func TestGetCurrentUnknownEmployee(t *testing.T) {
	svc, _ := newTestService("e1")
	_, err := svc.GetCurrent(context.Background(), "ghost")
	if !apperr.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestSetCurrentSwapsRecords(t *testing.T) {
	svc, store := newTestService("e1")
	hired := date(2024, time.January, 1)
	first, err := svc.CreateInitial(context.Background(), "e1", Payload{Designation: "Engineer"}, &hired)
	if err != nil {
		t.Fatalf("create initial: %v", err)
	}
	if _, err := svc.Promote(context.Background(), "e1", Payload{Designation: "Senior Engineer"}, date(2025, time.January, 1)); err != nil {
		t.Fatalf("promote: %v", err)
	}

	reopened, err := svc.SetCurrent(context.Background(), first.ID)
	if err != nil {
		t.Fatalf("set current: %v", err)
	}
	if !reopened.IsCurrent || reopened.EffectiveTo != nil {
		t.Fatalf("expected reopened record, got %+v", reopened)
	}
	if store.currentCount("e1") != 1 {
		t.Fatalf("invariant violated after set current: %d current records", store.currentCount("e1"))
	}
}

func TestSetCurrentUnknownRecord(t *testing.T) {
	svc, _ := newTestService("e1")
	_, err := svc.SetCurrent(context.Background(), "ghost")
	if !apperr.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestDeleteDoesNotRepairInvariant(t *testing.T) {
	svc, store := newTestService("e1")
	hired := date(2024, time.January, 1)
	if _, err := svc.CreateInitial(context.Background(), "e1", Payload{Designation: "Engineer"}, &hired); err != nil {
		t.Fatalf("create initial: %v", err)
	}
	promoted, err := svc.Promote(context.Background(), "e1", Payload{Designation: "Senior Engineer"}, date(2025, time.January, 1))
	if err != nil {
		t.Fatalf("promote: %v", err)
	}

	if err := svc.Delete(context.Background(), promoted.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	// Removing the current record leaves the employee with no current one;
	// the manager does not reopen the closed predecessor.
	if got := store.currentCount("e1"); got != 0 {
		t.Fatalf("expected no current record after deletion, got %d", got)
	}
}
