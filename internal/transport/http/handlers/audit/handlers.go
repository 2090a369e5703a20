package audithandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hris/internal/domain/audit"
	"hris/internal/transport/http/api"
	"hris/internal/transport/http/middleware"
	"hris/internal/transport/http/shared"
)

type Handler struct {
	Audit *audit.Service
}

func NewHandler(auditSvc *audit.Service) *Handler {
	return &Handler{Audit: auditSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.handleList)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	page := shared.ParsePagination(r, 50, 200)

	events, err := h.Audit.List(r.Context(),
		r.URL.Query().Get("entityType"),
		r.URL.Query().Get("entityId"),
		page.Limit, page.Offset)
	if err != nil {
		api.FailFromError(w, err, requestID)
		return
	}
	api.Success(w, events, requestID)
}
