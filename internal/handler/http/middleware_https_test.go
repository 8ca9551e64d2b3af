package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/account-service/internal/config"
	"github.com/MKhiriev/account-service/internal/logger"
	"github.com/MKhiriev/account-service/internal/service"
)

func newHTTPSHandler(t *testing.T, enforce bool) *Handler {
	t.Helper()
	return NewHandler(&service.Services{}, config.Server{EnforceHTTPS: enforce}, logger.Nop())
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestWithForcedHTTPS_Disabled_PassesThrough(t *testing.T) {
	h := newHTTPSHandler(t, false)

	req := httptest.NewRequest(http.MethodGet, "http://example.com/accounts", nil)
	rec := httptest.NewRecorder()
	h.withForcedHTTPS(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWithForcedHTTPS_RedirectsPlainHTTP(t *testing.T) {
	h := newHTTPSHandler(t, true)

	req := httptest.NewRequest(http.MethodPost, "http://example.com/accounts?name=John", nil)
	rec := httptest.NewRecorder()
	h.withForcedHTTPS(okHandler()).ServeHTTP(rec, req)

	// 308 keeps the method and body across the redirect
	assert.Equal(t, http.StatusPermanentRedirect, rec.Code)
	assert.Equal(t, "https://example.com/accounts?name=John", rec.Header().Get("Location"))
}

func TestWithForcedHTTPS_ForwardedProtoPassesThrough(t *testing.T) {
	h := newHTTPSHandler(t, true)

	req := httptest.NewRequest(http.MethodGet, "http://example.com/accounts", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	rec := httptest.NewRecorder()
	h.withForcedHTTPS(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWithForcedHTTPS_TLSPassesThrough(t *testing.T) {
	h := newHTTPSHandler(t, true)

	req := httptest.NewRequest(http.MethodGet, "https://example.com/accounts", nil)
	rec := httptest.NewRecorder()
	h.withForcedHTTPS(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
