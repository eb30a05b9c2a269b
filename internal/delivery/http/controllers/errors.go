package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	h "congressprogram/internal/delivery/http/helpers"
	"congressprogram/internal/domain"
)

// writeServiceError maps domain sentinel errors to HTTP statuses and writes
// the JSON error envelope. Unknown errors become 500 and are logged.
func writeServiceError(logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "not found")
	case errors.Is(err, domain.ErrInvalidInput):
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrDuplicateEmail):
		h.WriteJSONError(w, http.StatusConflict, h.ErrCodeConflict, "email already registered")
	case errors.Is(err, domain.ErrForbidden):
		h.WriteJSONError(w, http.StatusForbidden, h.ErrCodeForbidden, "forbidden")
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
	}
}
