package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/utakatalp/season-simulator/internal/metrics"
)

// NewRouter registers the HTTP routes.
func NewRouter(h *Handler, rec *metrics.Recorder, logger *slog.Logger) http.Handler {
	r := mux.NewRouter()
	r.Use(loggingMiddleware(logger, rec))

	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	r.HandleFunc("/seasons", h.Seasons).Methods(http.MethodGet)
	r.HandleFunc("/seasons/{season}/teams", h.Teams).Methods(http.MethodGet)
	r.HandleFunc("/seasons/{season}/simulate", h.Simulate).Methods(http.MethodPost)
	r.HandleFunc("/seasons/{season}/teams/{team}/calendar", h.Calendar).Methods(http.MethodGet)
	r.HandleFunc("/seasons/{season}/teams/{team}/projection", h.Projection).Methods(http.MethodGet)
	r.Handle("/metrics", rec.Handler()).Methods(http.MethodGet)
	return r
}
