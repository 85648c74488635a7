package api

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/campfinder/campfinder-server/internal/http/response"
	"github.com/campfinder/campfinder-server/internal/metrics"
)

// EnvelopeVersion is the schema version of every response body.
const EnvelopeVersion = response.Version

// EnvelopeTransformer wraps every huma response body in the
// {v, success, data|error} envelope.
func EnvelopeTransformer(_ huma.Context, status string, v any) (any, error) {
	code, _ := strconv.Atoi(status) //nolint:errcheck // huma always passes a numeric status

	switch body := v.(type) {
	case *APIError:
		return response.Envelope{
			Version: EnvelopeVersion,
			Error: &response.ErrorBody{
				Code:    body.Code,
				Message: body.Message,
				Details: body.Details,
			},
		}, nil
	case error:
		return response.Envelope{
			Version: EnvelopeVersion,
			Error: &response.ErrorBody{
				Code:    string(response.CodeForStatus(code)),
				Message: body.Error(),
			},
		}, nil
	}

	return response.Envelope{
		Version: EnvelopeVersion,
		Success: code < 400,
		Data:    v,
	}, nil
}

// MetricsMiddleware records request counts and latencies by route pattern.
// Unmatched paths are grouped under "unmatched" to bound label cardinality.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		metrics.TrackActiveRequest(true)
		defer metrics.TrackActiveRequest(false)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		metrics.RecordAPIRequest(r.Method, route, status, time.Since(start))
	})
}

// requestLogger adapts chi's request logging to slog.
type requestLogger struct {
	logger *slog.Logger
}

// NewLogEntry implements middleware.LogFormatter.
func (l requestLogger) NewLogEntry(r *http.Request) middleware.LogEntry {
	return &requestLogEntry{logger: l.logger.With(
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", middleware.GetReqID(r.Context()),
		"remote", r.RemoteAddr,
	)}
}

type requestLogEntry struct {
	logger *slog.Logger
}

func (e *requestLogEntry) Write(status, bytes int, _ http.Header, elapsed time.Duration, _ any) {
	level := slog.LevelInfo
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	e.logger.Log(context.Background(), level, "request",
		"status", status,
		"bytes", bytes,
		"elapsed", elapsed,
	)
}

func (e *requestLogEntry) Panic(v any, stack []byte) {
	e.logger.Error("panic", "panic", v, "stack", string(stack))
}
