package employeeshandler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"hris/internal/domain/audit"
	"hris/internal/domain/auth"
	"hris/internal/domain/employee"
	"hris/internal/domain/onboarding"
	"hris/internal/transport/http/api"
	"hris/internal/transport/http/middleware"
	"hris/internal/transport/http/shared"
)

type Handler struct {
	Employees  *employee.Service
	Onboarding *onboarding.Service
	Audit      *audit.Service
}

func NewHandler(employees *employee.Service, onb *onboarding.Service, auditSvc *audit.Service) *Handler {
	return &Handler{Employees: employees, Onboarding: onb, Audit: auditSvc}
}

// RegisterRoutes mounts the employee collection; nested registrars hang
// additional resources (job history, profile sections) off /{employeeID}.
func (h *Handler) RegisterRoutes(r chi.Router, nested ...func(chi.Router)) {
	r.Get("/", h.handleList)
	r.With(middleware.RequireRole(auth.RoleHR)).Post("/", h.handleCreateWithDetails)
	r.Route("/{employeeID}", func(r chi.Router) {
		r.Get("/", h.handleGet)
		r.With(middleware.RequireRole(auth.RoleHR)).Put("/", h.handleUpdate)
		r.With(middleware.RequireRole(auth.RoleHR)).Delete("/", h.handleDelete)
		for _, register := range nested {
			register(r)
		}
	})
}

type employeePayload struct {
	FirstName     string `json:"firstName"`
	MiddleName    string `json:"middleName"`
	LastName      string `json:"lastName"`
	DateOfBirth   string `json:"dateOfBirth"`
	Gender        string `json:"gender"`
	Nationality   string `json:"nationality"`
	MaritalStatus string `json:"maritalStatus"`
	WorkEmail     string `json:"workEmail"`
	PersonalEmail string `json:"personalEmail"`
	MobileNumber  string `json:"mobileNumber"`
	WorkNumber    string `json:"workNumber"`
	PhotoURL      string `json:"photoUrl"`
	Status        string `json:"status"`
}

type createEmployeeRequest struct {
	Employee    employeePayload `json:"employee"`
	JoiningDate string          `json:"joiningDate"`

	Job            jsonJob                        `json:"job"`
	Contact        *jsonContact                   `json:"contact"`
	Compensation   *jsonCompensation              `json:"compensation"`
	Documents      []jsonDocument                 `json:"documents"`
	WorkPass       *jsonWorkPass                  `json:"workPass"`
	Qualifications []jsonQualification            `json:"qualifications"`
	Certifications []jsonCertification            `json:"certifications"`
}

func (h *Handler) handleCreateWithDetails(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload createEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("employee.firstName", payload.Employee.FirstName, "first name is required")
	v.Required("employee.lastName", payload.Employee.LastName, "last name is required")
	v.Required("employee.workEmail", payload.Employee.WorkEmail, "work email is required")
	v.Required("employee.dateOfBirth", payload.Employee.DateOfBirth, "date of birth is required")
	v.Required("job.designation", payload.Job.Designation, "designation is required")
	v.Enum("employee.status", payload.Employee.Status,
		[]string{employee.StatusActive, employee.StatusInactive, employee.StatusTerminated},
		"must be one of active, inactive, terminated")

	var dateOfBirth time.Time
	if payload.Employee.DateOfBirth != "" {
		dateOfBirth, _ = v.Date("employee.dateOfBirth", payload.Employee.DateOfBirth)
	}
	var joiningDate *time.Time
	if payload.JoiningDate != "" {
		if parsed, ok := v.Date("joiningDate", payload.JoiningDate); ok {
			joiningDate = &parsed
		}
	}
	if v.Reject(w, requestID) {
		return
	}

	req := onboarding.Request{
		Employee:    payload.Employee.toModel(dateOfBirth),
		Job:         payload.Job.toPayload(),
		JoiningDate: joiningDate,
	}
	if user, ok := middleware.GetUser(r.Context()); ok {
		req.Job.CreatedBy = user.UserID
	}
	payload.attachDependents(&req)

	result, err := h.Onboarding.CreateEmployeeWithDetails(r.Context(), req)
	if err != nil {
		api.FailFromError(w, err, requestID)
		return
	}

	h.recordAudit(r, "employee.create", result.Employee.ID, nil, result.Employee)
	api.Created(w, result, requestID)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	page := shared.ParsePagination(r, 50, 200)

	employees, err := h.Employees.List(r.Context(), employee.Filter{
		Status: r.URL.Query().Get("status"),
		Search: r.URL.Query().Get("search"),
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		api.FailFromError(w, err, requestID)
		return
	}
	api.Success(w, employees, requestID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	emp, err := h.Employees.Get(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		api.FailFromError(w, err, requestID)
		return
	}
	api.Success(w, emp, requestID)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	employeeID := chi.URLParam(r, "employeeID")

	var payload employeePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("firstName", payload.FirstName, "first name is required")
	v.Required("lastName", payload.LastName, "last name is required")
	v.Required("workEmail", payload.WorkEmail, "work email is required")
	v.Required("dateOfBirth", payload.DateOfBirth, "date of birth is required")
	var dateOfBirth time.Time
	if payload.DateOfBirth != "" {
		dateOfBirth, _ = v.Date("dateOfBirth", payload.DateOfBirth)
	}
	if v.Reject(w, requestID) {
		return
	}

	before, err := h.Employees.Get(r.Context(), employeeID)
	if err != nil {
		api.FailFromError(w, err, requestID)
		return
	}

	updated, err := h.Employees.Update(r.Context(), employeeID, payload.toModel(dateOfBirth))
	if err != nil {
		api.FailFromError(w, err, requestID)
		return
	}

	h.recordAudit(r, "employee.update", employeeID, before, updated)
	api.Success(w, updated, requestID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	employeeID := chi.URLParam(r, "employeeID")

	before, err := h.Employees.Get(r.Context(), employeeID)
	if err != nil {
		api.FailFromError(w, err, requestID)
		return
	}
	if err := h.Employees.Delete(r.Context(), employeeID); err != nil {
		api.FailFromError(w, err, requestID)
		return
	}

	h.recordAudit(r, "employee.delete", employeeID, before, nil)
	api.Success(w, map[string]string{"status": "deleted"}, requestID)
}

func (h *Handler) recordAudit(r *http.Request, action, entityID string, before, after any) {
	if h.Audit == nil {
		return
	}
	actorID := ""
	if user, ok := middleware.GetUser(r.Context()); ok {
		actorID = user.UserID
	}
	err := h.Audit.Record(r.Context(), actorID, action, "employee", entityID,
		middleware.GetRequestID(r.Context()), middleware.ClientIP(r), before, after)
	if err != nil {
		slog.Warn("audit record failed", "action", action, "entityId", entityID, "err", err)
	}
}

func (p employeePayload) toModel(dateOfBirth time.Time) employee.Employee {
	emp := employee.Employee{
		FirstName:     p.FirstName,
		MiddleName:    p.MiddleName,
		LastName:      p.LastName,
		Gender:        p.Gender,
		Nationality:   p.Nationality,
		MaritalStatus: p.MaritalStatus,
		WorkEmail:     p.WorkEmail,
		PersonalEmail: p.PersonalEmail,
		MobileNumber:  p.MobileNumber,
		WorkNumber:    p.WorkNumber,
		PhotoURL:      p.PhotoURL,
		Status:        p.Status,
	}
	if !dateOfBirth.IsZero() {
		emp.DateOfBirth = &dateOfBirth
	}
	return emp
}
