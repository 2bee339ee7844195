package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/founddesk/founddesk/internal/model"
)

// jsonResponse writes a JSON response with the given status code.
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			slog.Error("failed to encode response", "error", err)
		}
	}
}

// jsonError writes a JSON error response.
func jsonError(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]string{"error": message})
}

// decodeJSON decodes a JSON request body into the given target.
func decodeJSON(r *http.Request, target any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(target)
}

// storeError maps domain error kinds to HTTP responses. Unknown errors
// are logged and reported with a generic message.
func storeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, model.ErrValidation):
		jsonError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, model.ErrNotFound):
		jsonError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, model.ErrConflict):
		jsonError(w, http.StatusConflict, err.Error())
	default:
		slog.Error(fallback, "error", err)
		jsonError(w, http.StatusInternalServerError, fallback)
	}
}
