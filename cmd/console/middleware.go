package main

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/hubenschmidt/hotel-voice-console/internal/metrics"
)

// withMiddleware wraps the mux with request IDs, panic recovery and
// per-route logging and metrics.
func withMiddleware(mux *http.ServeMux) http.Handler {
	var h http.Handler = observe(mux)
	h = middleware.Recoverer(h)
	h = middleware.RealIP(h)
	h = middleware.RequestID(h)
	return h
}

// observe must sit directly around the mux: the mux records the matched
// pattern on the request it is handed.
func observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		pattern := r.Pattern
		if pattern == "" {
			pattern = "unmatched"
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		elapsed := time.Since(start)

		metrics.HTTPRequests.WithLabelValues(pattern, strconv.Itoa(status)).Inc()
		metrics.HTTPDuration.WithLabelValues(pattern).Observe(elapsed.Seconds())
		slog.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"pattern", pattern,
			"status", status,
			"duration_ms", elapsed.Milliseconds(),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
