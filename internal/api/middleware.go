package api

import (
	"context"
	"log/slog"
	"net/http"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/utakatalp/season-simulator/internal/logging"
	"github.com/utakatalp/season-simulator/internal/metrics"
)

type requestIDKey struct{}
type loggerKey struct{}

var requestIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)

// RequestIDFromContext extracts the request ID stored by the logging middleware.
func RequestIDFromContext(ctx context.Context) string {
	if val, ok := ctx.Value(requestIDKey{}).(string); ok {
		return val
	}
	return ""
}

func loggerFromContext(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && l != nil {
		return l
	}
	return fallback
}

func sanitizeRequestID(id string) string {
	if requestIDPattern.MatchString(id) {
		return id
	}
	return uuid.NewString()
}

type responseWriter struct {
	http.ResponseWriter
	status int
}

func (w *responseWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// loggingMiddleware attaches a request ID and request-scoped logger, then
// logs and counts the response under its route template.
func loggingMiddleware(base *slog.Logger, rec *metrics.Recorder) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			reqID := sanitizeRequestID(r.Header.Get("X-Request-ID"))
			w.Header().Set("X-Request-ID", reqID)

			route := r.URL.Path
			if cur := mux.CurrentRoute(r); cur != nil {
				if tpl, err := cur.GetPathTemplate(); err == nil {
					route = tpl
				}
			}

			var logger *slog.Logger
			if base != nil {
				logger = base.With(
					slog.String(logging.FieldRequestID, reqID),
					slog.String(logging.FieldMethod, r.Method),
					slog.String(logging.FieldPath, r.URL.Path),
				)
			}
			ctx := context.WithValue(r.Context(), requestIDKey{}, reqID)
			ctx = context.WithValue(ctx, loggerKey{}, logger)
			ww := &responseWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(ww, r.WithContext(ctx))

			rec.RecordRequest(route, ww.status)
			logging.Info(logger, "request complete",
				slog.Int(logging.FieldStatusCode, ww.status),
				slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
			)
		})
	}
}
