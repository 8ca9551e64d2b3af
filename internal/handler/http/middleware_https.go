package http

import (
	"net/http"
	"net/url"

	"github.com/MKhiriev/account-service/internal/logger"
)

// withForcedHTTPS redirects plain-HTTP requests to their HTTPS
// equivalent with 308 so the method and body survive the redirect.
// Requests already terminated over TLS (or arriving through a proxy
// that set X-Forwarded-Proto) pass through.
func (h *Handler) withForcedHTTPS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.enforceHTTPS || r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
			next.ServeHTTP(w, r)
			return
		}

		target := url.URL{
			Scheme:   "https",
			Host:     r.Host,
			Path:     r.URL.Path,
			RawQuery: r.URL.RawQuery,
		}

		logger.FromRequest(r).Info().Str("location", target.String()).Msg("redirecting plain-http request")
		http.Redirect(w, r, target.String(), http.StatusPermanentRedirect)
	})
}
