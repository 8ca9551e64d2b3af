package http

import "net/http"

// securityHeaders is attached to every response, including errors
// produced by the router itself (404s, 405s), because the middleware
// runs before routing resolves.
var securityHeaders = map[string]string{
	"X-Frame-Options":             "SAMEORIGIN",
	"X-Content-Type-Options":      "nosniff",
	"Content-Security-Policy":     "default-src 'self'; object-src 'none'",
	"Referrer-Policy":             "strict-origin-when-cross-origin",
	"Access-Control-Allow-Origin": "*",
}

func (h *Handler) withSecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for header, value := range securityHeaders {
			w.Header().Set(header, value)
		}
		next.ServeHTTP(w, r)
	})
}
