package profileshandler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"hris/internal/domain/profile"
	"hris/internal/transport/http/middleware"
	"hris/internal/transport/http/shared"
)

type identityPayload struct {
	NationalID     string `json:"nationalId"`
	PassportNumber string `json:"passportNumber"`
	PassportExpiry string `json:"passportExpiry"`
	TaxID          string `json:"taxId"`
}

func (p identityPayload) toModel(employeeID string, expiry *time.Time) profile.Identity {
	return profile.Identity{
		EmployeeID:     employeeID,
		NationalID:     p.NationalID,
		PassportNumber: p.PassportNumber,
		PassportExpiry: expiry,
		TaxID:          p.TaxID,
	}
}

func (h *Handler) createIdentity(w http.ResponseWriter, r *http.Request) {
	payload, ok := decode[identityPayload](w, r)
	if !ok {
		return
	}
	expiry, ok := h.parseExpiry(w, r, payload.PassportExpiry)
	if !ok {
		return
	}
	ident, err := h.Profiles.CreateIdentity(r.Context(), payload.toModel(chi.URLParam(r, "employeeID"), expiry))
	respond(w, r, ident, err, true)
}

func (h *Handler) getIdentity(w http.ResponseWriter, r *http.Request) {
	ident, err := h.Profiles.GetIdentity(r.Context(), chi.URLParam(r, "employeeID"))
	respond(w, r, ident, err, false)
}

func (h *Handler) updateIdentity(w http.ResponseWriter, r *http.Request) {
	payload, ok := decode[identityPayload](w, r)
	if !ok {
		return
	}
	expiry, ok := h.parseExpiry(w, r, payload.PassportExpiry)
	if !ok {
		return
	}
	ident, err := h.Profiles.UpdateIdentity(r.Context(), payload.toModel(chi.URLParam(r, "employeeID"), expiry))
	respond(w, r, ident, err, false)
}

func (h *Handler) parseExpiry(w http.ResponseWriter, r *http.Request, raw string) (*time.Time, bool) {
	if raw == "" {
		return nil, true
	}
	v := shared.NewValidator()
	parsed, ok := v.Date("passportExpiry", raw)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return nil, false
	}
	if !ok {
		return nil, false
	}
	return &parsed, true
}
