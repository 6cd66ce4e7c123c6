// Package httputil holds the JSON helpers shared by all entity handlers.
package httputil

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/abinsights/analytics-service/internal/apperrors"
)

type errorBody struct {
	Detail string `json:"detail"`
}

type messageBody struct {
	Message string `json:"message"`
}

// WriteJSON serializes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteMessage writes the {"message": ...} confirmation shape used by deletes.
func WriteMessage(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, messageBody{Message: msg})
}

// DecodeJSON strictly decodes the request body into v. Unknown fields and
// mistyped values are rejected, not ignored. Returns false after writing a
// 422 response.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		WriteJSON(w, http.StatusUnprocessableEntity, errorBody{Detail: "invalid request body: " + err.Error()})
		return false
	}
	return true
}

// WriteError maps the service error taxonomy onto fixed status codes:
// NotFound 404, ValidationError 422, ConstraintViolation 409, other 500.
func WriteError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		WriteJSON(w, http.StatusNotFound, errorBody{Detail: err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		WriteJSON(w, http.StatusUnprocessableEntity, errorBody{Detail: err.Error()})
	case errors.Is(err, apperrors.ErrConstraintViolation):
		WriteJSON(w, http.StatusConflict, errorBody{Detail: err.Error()})
	default:
		WriteJSON(w, http.StatusInternalServerError, errorBody{Detail: "internal server error"})
	}
}

// PaginationParams reads skip/limit query parameters with the 0/100 defaults.
// Negative or unparsable values fall back to the defaults.
func PaginationParams(r *http.Request) (skip, limit int) {
	skip, limit = 0, 100
	if v := r.URL.Query().Get("skip"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			skip = n
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			limit = n
		}
	}
	return skip, limit
}
