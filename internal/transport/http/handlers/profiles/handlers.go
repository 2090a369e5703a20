package profileshandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hris/internal/domain/auth"
	"hris/internal/domain/profile"
	"hris/internal/transport/http/api"
	"hris/internal/transport/http/middleware"
	"hris/internal/transport/http/shared"
)

type Handler struct {
	Profiles *profile.Store
}

func NewHandler(profiles *profile.Store) *Handler {
	return &Handler{Profiles: profiles}
}

// RegisterRoutes mounts the profile sections under
// /employees/{employeeID}/profile.
func (h *Handler) RegisterRoutes(r chi.Router) {
	sections := []struct {
		path   string
		get    http.HandlerFunc
		create http.HandlerFunc
		update http.HandlerFunc
	}{
		{"/address", h.getAddress, h.createAddress, h.updateAddress},
		{"/education", h.getEducation, h.createEducation, h.updateEducation},
		{"/experience", h.getExperience, h.createExperience, h.updateExperience},
		{"/family", h.getFamily, h.createFamily, h.updateFamily},
		{"/identity", h.getIdentity, h.createIdentity, h.updateIdentity},
		{"/skills", h.getSkills, h.createSkills, h.updateSkills},
	}
	for _, section := range sections {
		r.Get(section.path, section.get)
		r.With(middleware.RequireRole(auth.RoleHR)).Post(section.path, section.create)
		r.With(middleware.RequireRole(auth.RoleHR)).Put(section.path, section.update)
	}
}

func decode[T any](w http.ResponseWriter, r *http.Request) (T, bool) {
	var payload T
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload",
			middleware.GetRequestID(r.Context()))
		return payload, false
	}
	return payload, true
}

func respond[T any](w http.ResponseWriter, r *http.Request, value *T, err error, created bool) {
	requestID := middleware.GetRequestID(r.Context())
	if err != nil {
		api.FailFromError(w, err, requestID)
		return
	}
	if created {
		api.Created(w, value, requestID)
		return
	}
	api.Success(w, value, requestID)
}

func (h *Handler) createAddress(w http.ResponseWriter, r *http.Request) {
	payload, ok := decode[profile.Address](w, r)
	if !ok {
		return
	}
	payload.EmployeeID = chi.URLParam(r, "employeeID")
	v := shared.NewValidator()
	v.Required("line1", payload.Line1, "address line 1 is required")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}
	addr, err := h.Profiles.CreateAddress(r.Context(), payload)
	respond(w, r, addr, err, true)
}

func (h *Handler) getAddress(w http.ResponseWriter, r *http.Request) {
	addr, err := h.Profiles.GetAddress(r.Context(), chi.URLParam(r, "employeeID"))
	respond(w, r, addr, err, false)
}

func (h *Handler) updateAddress(w http.ResponseWriter, r *http.Request) {
	payload, ok := decode[profile.Address](w, r)
	if !ok {
		return
	}
	payload.EmployeeID = chi.URLParam(r, "employeeID")
	addr, err := h.Profiles.UpdateAddress(r.Context(), payload)
	respond(w, r, addr, err, false)
}

func (h *Handler) createEducation(w http.ResponseWriter, r *http.Request) {
	payload, ok := decode[profile.Education](w, r)
	if !ok {
		return
	}
	payload.EmployeeID = chi.URLParam(r, "employeeID")
	v := shared.NewValidator()
	v.Required("highestQualification", payload.HighestQualification, "highest qualification is required")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}
	edu, err := h.Profiles.CreateEducation(r.Context(), payload)
	respond(w, r, edu, err, true)
}

func (h *Handler) getEducation(w http.ResponseWriter, r *http.Request) {
	edu, err := h.Profiles.GetEducation(r.Context(), chi.URLParam(r, "employeeID"))
	respond(w, r, edu, err, false)
}

func (h *Handler) updateEducation(w http.ResponseWriter, r *http.Request) {
	payload, ok := decode[profile.Education](w, r)
	if !ok {
		return
	}
	payload.EmployeeID = chi.URLParam(r, "employeeID")
	edu, err := h.Profiles.UpdateEducation(r.Context(), payload)
	respond(w, r, edu, err, false)
}

func (h *Handler) createExperience(w http.ResponseWriter, r *http.Request) {
	payload, ok := decode[profile.Experience](w, r)
	if !ok {
		return
	}
	payload.EmployeeID = chi.URLParam(r, "employeeID")
	exp, err := h.Profiles.CreateExperience(r.Context(), payload)
	respond(w, r, exp, err, true)
}

func (h *Handler) getExperience(w http.ResponseWriter, r *http.Request) {
	exp, err := h.Profiles.GetExperience(r.Context(), chi.URLParam(r, "employeeID"))
	respond(w, r, exp, err, false)
}

func (h *Handler) updateExperience(w http.ResponseWriter, r *http.Request) {
	payload, ok := decode[profile.Experience](w, r)
	if !ok {
		return
	}
	payload.EmployeeID = chi.URLParam(r, "employeeID")
	exp, err := h.Profiles.UpdateExperience(r.Context(), payload)
	respond(w, r, exp, err, false)
}

func (h *Handler) createFamily(w http.ResponseWriter, r *http.Request) {
	payload, ok := decode[profile.Family](w, r)
	if !ok {
		return
	}
	payload.EmployeeID = chi.URLParam(r, "employeeID")
	fam, err := h.Profiles.CreateFamily(r.Context(), payload)
	respond(w, r, fam, err, true)
}

func (h *Handler) getFamily(w http.ResponseWriter, r *http.Request) {
	fam, err := h.Profiles.GetFamily(r.Context(), chi.URLParam(r, "employeeID"))
	respond(w, r, fam, err, false)
}

func (h *Handler) updateFamily(w http.ResponseWriter, r *http.Request) {
	payload, ok := decode[profile.Family](w, r)
	if !ok {
		return
	}
	payload.EmployeeID = chi.URLParam(r, "employeeID")
	fam, err := h.Profiles.UpdateFamily(r.Context(), payload)
	respond(w, r, fam, err, false)
}

func (h *Handler) createSkills(w http.ResponseWriter, r *http.Request) {
	payload, ok := decode[profile.Skills](w, r)
	if !ok {
		return
	}
	payload.EmployeeID = chi.URLParam(r, "employeeID")
	sk, err := h.Profiles.CreateSkills(r.Context(), payload)
	respond(w, r, sk, err, true)
}

func (h *Handler) getSkills(w http.ResponseWriter, r *http.Request) {
	sk, err := h.Profiles.GetSkills(r.Context(), chi.URLParam(r, "employeeID"))
	respond(w, r, sk, err, false)
}

func (h *Handler) updateSkills(w http.ResponseWriter, r *http.Request) {
	payload, ok := decode[profile.Skills](w, r)
	if !ok {
		return
	}
	payload.EmployeeID = chi.URLParam(r, "employeeID")
	sk, err := h.Profiles.UpdateSkills(r.Context(), payload)
	respond(w, r, sk, err, false)
}
