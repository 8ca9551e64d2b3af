package http

import (
	"mime"
	"net/http"

	"github.com/MKhiriev/account-service/internal/logger"
)

const jsonMediaType = "application/json"

// requireJSONContentType rejects body-carrying requests whose
// Content-Type is not application/json before the handler reads the
// body. Media-type parameters such as charset are ignored during the
// comparison.
func (h *Handler) requireJSONContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType := r.Header.Get("Content-Type")

		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil || mediaType != jsonMediaType {
			logger.FromRequest(r).Error().Str("content_type", contentType).Msg("unsupported media type")
			http.Error(w, http.StatusText(http.StatusUnsupportedMediaType), http.StatusUnsupportedMediaType)
			return
		}

		next.ServeHTTP(w, r)
	})
}
