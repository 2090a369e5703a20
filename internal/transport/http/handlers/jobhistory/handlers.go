package jobhistoryhandler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"hris/internal/domain/audit"
	"hris/internal/domain/auth"
	"hris/internal/domain/jobhistory"
	"hris/internal/transport/http/api"
	"hris/internal/transport/http/middleware"
	"hris/internal/transport/http/shared"
)

type Handler struct {
	History *jobhistory.Service
	Audit   *audit.Service
}

func NewHandler(history *jobhistory.Service, auditSvc *audit.Service) *Handler {
	return &Handler{History: history, Audit: auditSvc}
}

// RegisterEmployeeRoutes mounts the per-employee views under
// /employees/{employeeID}/job-history.
func (h *Handler) RegisterEmployeeRoutes(r chi.Router) {
	r.Get("/", h.handleHistory)
	r.Get("/current", h.handleCurrent)
	r.With(middleware.RequireRole(auth.RoleHR)).Post("/", h.handleCreateInitial)
	r.With(middleware.RequireRole(auth.RoleHR)).Post("/promote", h.handlePromote)
}

// RegisterRecordRoutes mounts record-level operations under
// /job-history/{recordID}.
func (h *Handler) RegisterRecordRoutes(r chi.Router) {
	r.Get("/", h.handleGetRecord)
	r.With(middleware.RequireRole(auth.RoleHR)).Post("/set-current", h.handleSetCurrent)
	r.With(middleware.RequireRole(auth.RoleHR)).Delete("/", h.handleDeleteRecord)
}

type recordRequest struct {
	jobhistory.Payload
	EffectiveFrom string `json:"effectiveFrom"`
}

func (h *Handler) handleCreateInitial(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	employeeID := chi.URLParam(r, "employeeID")

	var payload recordRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("designation", payload.Designation, "designation is required")
	var effectiveFrom *time.Time
	if payload.EffectiveFrom != "" {
		if parsed, ok := v.Date("effectiveFrom", payload.EffectiveFrom); ok {
			effectiveFrom = &parsed
		}
	}
	if v.Reject(w, requestID) {
		return
	}

	if user, ok := middleware.GetUser(r.Context()); ok {
		payload.Payload.CreatedBy = user.UserID
	}
	record, err := h.History.CreateInitial(r.Context(), employeeID, payload.Payload, effectiveFrom)
	if err != nil {
		api.FailFromError(w, err, requestID)
		return
	}

	h.recordAudit(r, "job_history.create", record.ID, nil, record)
	api.Created(w, record, requestID)
}

func (h *Handler) handlePromote(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	employeeID := chi.URLParam(r, "employeeID")

	var payload recordRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("designation", payload.Designation, "designation is required")
	v.Required("effectiveFrom", payload.EffectiveFrom, "effective date is required")
	var effectiveFrom time.Time
	if payload.EffectiveFrom != "" {
		effectiveFrom, _ = v.Date("effectiveFrom", payload.EffectiveFrom)
	}
	if v.Reject(w, requestID) {
		return
	}

	before, err := h.History.GetCurrent(r.Context(), employeeID)
	if err != nil {
		api.FailFromError(w, err, requestID)
		return
	}

	if user, ok := middleware.GetUser(r.Context()); ok {
		payload.Payload.CreatedBy = user.UserID
	}
	record, err := h.History.Promote(r.Context(), employeeID, payload.Payload, effectiveFrom)
	if err != nil {
		api.FailFromError(w, err, requestID)
		return
	}

	h.recordAudit(r, "job_history.promote", record.ID, before, record)
	api.Created(w, record, requestID)
}

func (h *Handler) handleCurrent(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	record, err := h.History.GetCurrent(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		api.FailFromError(w, err, requestID)
		return
	}
	// No current assignment is a valid state, not an error.
	if record == nil {
		api.Success(w, nil, requestID)
		return
	}
	api.Success(w, record, requestID)
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	records, err := h.History.GetHistory(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		api.FailFromError(w, err, requestID)
		return
	}
	api.Success(w, records, requestID)
}

func (h *Handler) handleGetRecord(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	record, err := h.History.Get(r.Context(), chi.URLParam(r, "recordID"))
	if err != nil {
		api.FailFromError(w, err, requestID)
		return
	}
	api.Success(w, record, requestID)
}

func (h *Handler) handleSetCurrent(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	recordID := chi.URLParam(r, "recordID")

	record, err := h.History.SetCurrent(r.Context(), recordID)
	if err != nil {
		api.FailFromError(w, err, requestID)
		return
	}

	h.recordAudit(r, "job_history.set_current", recordID, nil, record)
	api.Success(w, record, requestID)
}

func (h *Handler) handleDeleteRecord(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	recordID := chi.URLParam(r, "recordID")

	before, err := h.History.Get(r.Context(), recordID)
	if err != nil {
		api.FailFromError(w, err, requestID)
		return
	}
	if err := h.History.Delete(r.Context(), recordID); err != nil {
		api.FailFromError(w, err, requestID)
		return
	}

	h.recordAudit(r, "job_history.delete", recordID, before, nil)
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
	err := h.Audit.Record(r.Context(), actorID, action, "job_history", entityID,
		middleware.GetRequestID(r.Context()), middleware.ClientIP(r), before, after)
	if err != nil {
		slog.Warn("audit record failed", "action", action, "entityId", entityID, "err", err)
	}
}
