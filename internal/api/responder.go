package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/JustinArce/MicroservicioAlmacen/internal/apperrors"
	"github.com/nhalm/canonlog"
)

const (
	codeValidation    = "validation_error"
	codeNotFound      = "not_found"
	codeBodyTooLarge  = "request_too_large"
	codeInternalError = "internal_error"
)

func renderJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

func renderError(w http.ResponseWriter, r *http.Request, statusCode int, err error, code, message, param string, details []FieldDetail) {
	canonlog.AddRequestError(r.Context(), err)
	sanitizedMessage := sanitizeErrorMessage(message, statusCode)
	renderJSON(w, statusCode, NewErrorResponse(statusCode, code, sanitizedMessage, param, details))
}

func sanitizeErrorMessage(message string, statusCode int) string {
	lowerMsg := strings.ToLower(message)

	if strings.Contains(lowerMsg, "sql") ||
		strings.Contains(lowerMsg, "database") ||
		strings.Contains(lowerMsg, "postgres") {
		if statusCode >= 500 {
			return "An internal error occurred"
		}
		return "Invalid request"
	}

	if statusCode >= 500 {
		return "An internal error occurred"
	}

	return message
}

func Success(w http.ResponseWriter, data any) {
	renderJSON(w, http.StatusOK, data)
}

func Created(w http.ResponseWriter, data any) {
	renderJSON(w, http.StatusCreated, data)
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func UnprocessableEntity(w http.ResponseWriter, r *http.Request, err *apperrors.ValidationError) {
	details := make([]FieldDetail, len(err.Violations))
	for i, v := range err.Violations {
		details[i] = FieldDetail{Field: v.Field, Message: v.Message}
	}
	renderError(w, r, http.StatusUnprocessableEntity, err, codeValidation, err.Error(), err.Field(), details)
}

func NotFound(w http.ResponseWriter, r *http.Request, err error, message string) {
	renderError(w, r, http.StatusNotFound, err, codeNotFound, message, "", nil)
}

func RequestTooLarge(w http.ResponseWriter, r *http.Request, err error) {
	renderError(w, r, http.StatusRequestEntityTooLarge, err, codeBodyTooLarge, "request body too large", "", nil)
}

func InternalError(w http.ResponseWriter, r *http.Request, err error, message string) {
	renderError(w, r, http.StatusInternalServerError, err, codeInternalError, message, "", nil)
}
