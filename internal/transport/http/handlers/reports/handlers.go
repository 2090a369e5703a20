package reportshandler

import (
	"bytes"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hris/internal/domain/reports"
	"hris/internal/transport/http/api"
	"hris/internal/transport/http/middleware"
)

type Handler struct {
	Reports *reports.Service
}

func NewHandler(reportsSvc *reports.Service) *Handler {
	return &Handler{Reports: reportsSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/employees/{employeeID}/employment-history.pdf", h.handleEmploymentHistoryPDF)
}

func (h *Handler) handleEmploymentHistoryPDF(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	employeeID := chi.URLParam(r, "employeeID")

	// Render to a buffer first so failures still produce a JSON error body.
	var buf bytes.Buffer
	if err := h.Reports.EmploymentHistoryPDF(r.Context(), employeeID, &buf); err != nil {
		api.FailFromError(w, err, requestID)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="employment-history-`+employeeID+`.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
