package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/utakatalp/season-simulator/internal/league"
	"github.com/utakatalp/season-simulator/internal/logging"
	"github.com/utakatalp/season-simulator/internal/simulation"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Error(logger, "failed to encode response", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	body := map[string]string{"error": message}
	if reqID := RequestIDFromContext(r.Context()); reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// writeFailure maps domain errors onto HTTP statuses.
func writeFailure(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	switch {
	case errors.Is(err, league.ErrMissingData):
		writeError(w, r, http.StatusNotFound, err.Error(), logger)
	case errors.Is(err, simulation.ErrInvalidOptions), errors.Is(err, errBadParam):
		writeError(w, r, http.StatusBadRequest, err.Error(), logger)
	default:
		logging.Error(logger, "request failed", err)
		writeError(w, r, http.StatusInternalServerError, "internal error", logger)
	}
}
