package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/blogem/ptlog/database"
	"github.com/blogem/ptlog/models"
	"github.com/blogem/ptlog/services"
)

// MessageResponse reports a successful mutation
type MessageResponse struct {
	Message  string `json:"message"`
	Rows     int64  `json:"rows"`
	Testnamn string `json:"testnamn,omitempty"`
}

// ErrorResponse reports a failed request
type ErrorResponse struct {
	Error  string                   `json:"error"`
	Fields []models.ValidationError `json:"fields,omitempty"`
}

// writeJSON renders v as the JSON response body with the given status code
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// writeError maps err onto a status code and renders it
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)

	resp := ErrorResponse{Error: database.MaskDSN(err.Error())}
	var verrs models.ValidationErrors
	if errors.As(err, &verrs) {
		resp.Fields = verrs
	}

	if status >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "status", status, "error", resp.Error)
	}

	writeJSON(w, status, resp)
}

// statusFor returns the HTTP status of an error from the service layer
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, models.ErrPoolExhausted):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// decodeJSON decodes the request body into v. Malformed bodies are
// validation errors.
func decodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return fmt.Errorf("%w: request body is required", models.ErrValidation)
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: invalid JSON: %v", models.ErrValidation, err)
	}
	return nil
}

// Controllers holds all controller instances
type Controllers struct {
	Health      *HealthController
	Projects    *ProjectController
	Logs        *LogController
	Diagnostics *DiagnosticsController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services, db DiagnosticsSource) *Controllers {
	return &Controllers{
		Health:      NewHealthController(),
		Projects:    NewProjectController(services),
		Logs:        NewLogController(services),
		Diagnostics: NewDiagnosticsController(db),
	}
}
