package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"hris/internal/domain/apperr"
)

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type Envelope struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data,omitempty"`
	Error     *Error `json:"error,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, payload Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Warn("write json failed", "err", err)
	}
}

func Success(w http.ResponseWriter, data any, requestID string) {
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Data: data, RequestID: requestID})
}

func Created(w http.ResponseWriter, data any, requestID string) {
	WriteJSON(w, http.StatusCreated, Envelope{Success: true, Data: data, RequestID: requestID})
}

func Fail(w http.ResponseWriter, status int, code, message, requestID string) {
	WriteJSON(w, status, Envelope{Success: false, Error: &Error{Code: code, Message: message}, RequestID: requestID})
}

func FailWithDetails(w http.ResponseWriter, status int, code, message string, details any, requestID string) {
	WriteJSON(w, status, Envelope{Success: false, Error: &Error{Code: code, Message: message, Details: details}, RequestID: requestID})
}

// FailFromError maps a domain error onto an HTTP response. Unknown errors
// become a generic 500 without leaking internals.
func FailFromError(w http.ResponseWriter, err error, requestID string) {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		Fail(w, http.StatusBadRequest, "validation_error", err.Error(), requestID)
	case apperr.KindNotFound:
		Fail(w, http.StatusNotFound, "not_found", err.Error(), requestID)
	case apperr.KindConflict:
		Fail(w, http.StatusConflict, "conflict", err.Error(), requestID)
	case apperr.KindUnavailable:
		Fail(w, http.StatusServiceUnavailable, "unavailable", "the service is temporarily unavailable", requestID)
	default:
		slog.Error("unhandled error", "err", err, "requestId", requestID)
		Fail(w, http.StatusInternalServerError, "internal_error", "internal server error", requestID)
	}
}
