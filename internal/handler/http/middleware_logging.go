package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/account-service/internal/logger"
)

// withLogging emits one structured entry per completed request, using
// the responseWriter decorator to recover the status and body size
// after the downstream handler has returned.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		logger.FromRequest(r).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("query", r.URL.RawQuery).
			Int("status", lw.status).
			Int("size", lw.size).
			Dur("duration", time.Since(start)).
			Msg("request completed")
	})
}
