// internal/handlers/respond.go
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/akozlova/marketplace-be/internal/core/domain"
)

func respondJSON(logger *slog.Logger, w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

func respondError(logger *slog.Logger, w http.ResponseWriter, status int, message string) {
	respondJSON(logger, w, status, map[string]string{"error": message})
}

// respondServiceError maps service errors onto HTTP statuses: validation
// failures are 400, missing records 404, business-rule conflicts 409,
// everything else 500 with the detail kept out of the response body.
func respondServiceError(logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var businessErr *domain.BusinessError

	switch {
	case errors.Is(err, domain.ErrValidation):
		respondError(logger, w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		respondError(logger, w, http.StatusNotFound, err.Error())
	case errors.As(err, &businessErr):
		respondError(logger, w, http.StatusConflict, businessErr.Reason)
	default:
		logger.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()))
		respondError(logger, w, http.StatusInternalServerError, "internal server error")
	}
}

// parseIDQuery reads the required ?id= query parameter.
func parseIDQuery(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(r.URL.Query().Get("id"))
}
