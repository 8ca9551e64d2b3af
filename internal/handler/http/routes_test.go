package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/account-service/internal/config"
	"github.com/MKhiriev/account-service/internal/logger"
	"github.com/MKhiriev/account-service/internal/service"
	"github.com/MKhiriev/account-service/models"
)

// ─────────────────────────────────────────────
// Mocks
// ─────────────────────────────────────────────

// mockAccountSvc implements service.AccountService with overridable
// func fields. Unset fields return zero values.
type mockAccountSvc struct {
	createFn func(ctx context.Context, account models.Account) (models.Account, error)
	getFn    func(ctx context.Context, id int64) (models.Account, error)
	listFn   func(ctx context.Context, filter models.AccountFilter) ([]models.Account, error)
	updateFn func(ctx context.Context, account models.Account) (models.Account, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockAccountSvc) Create(ctx context.Context, account models.Account) (models.Account, error) {
	if m.createFn != nil {
		return m.createFn(ctx, account)
	}
	return models.Account{}, nil
}

func (m *mockAccountSvc) Get(ctx context.Context, id int64) (models.Account, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.Account{}, nil
}

func (m *mockAccountSvc) List(ctx context.Context, filter models.AccountFilter) ([]models.Account, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return []models.Account{}, nil
}

func (m *mockAccountSvc) Update(ctx context.Context, account models.Account) (models.Account, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, account)
	}
	return models.Account{}, nil
}

func (m *mockAccountSvc) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockAppInfoSvc struct {
	name    string
	version string
}

func (m *mockAppInfoSvc) GetAppName(_ context.Context) string    { return m.name }
func (m *mockAppInfoSvc) GetAppVersion(_ context.Context) string { return m.version }

// newTestHandler builds a Handler around the given account service
// mock. HTTPS enforcement stays off so requests are not redirected.
func newTestHandler(t *testing.T, svc service.AccountService) *Handler {
	t.Helper()

	return NewHandler(&service.Services{
		AccountService: svc,
		AppInfoService: &mockAppInfoSvc{name: "Account REST API Service", version: "1.0"},
	}, config.Server{}, logger.Nop())
}

// ─────────────────────────────────────────────
// Init — route registration
// ─────────────────────────────────────────────

func TestInit_ReturnsRouter(t *testing.T) {
	router := newTestHandler(t, &mockAccountSvc{}).Init()

	require.NotNil(t, router)
}

// routeCase describes a single expected route.
type routeCase struct {
	method string
	path   string
}

// expectedRoutes lists every route that Init() must register.
var expectedRoutes = []routeCase{
	{http.MethodGet, "/health"},
	{http.MethodGet, "/"},
	{http.MethodGet, "/accounts"},
	{http.MethodPost, "/accounts"},
	{http.MethodGet, "/accounts/1"},
	{http.MethodPut, "/accounts/1"},
	{http.MethodDelete, "/accounts/1"},
}

func TestInit_RegistersAllRoutes(t *testing.T) {
	router := newTestHandler(t, &mockAccountSvc{}).Init()

	for _, tc := range expectedRoutes {
		tc := tc
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			// A registered route returns anything except 404 (not
			// found, barring the {id} routes which may legitimately
			// miss) or 405 (method not allowed).
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code,
				"method not allowed: %s %s", tc.method, tc.path)
		})
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	router := newTestHandler(t, &mockAccountSvc{}).Init()

	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_WrongMethodReturns405(t *testing.T) {
	router := newTestHandler(t, &mockAccountSvc{}).Init()

	for _, tc := range []routeCase{
		{http.MethodPut, "/accounts"},
		{http.MethodDelete, "/accounts"},
		{http.MethodPost, "/accounts/1"},
		{http.MethodPost, "/health"},
	} {
		tc := tc
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		})
	}
}

func TestInit_SecurityHeadersOnEveryResponse(t *testing.T) {
	router := newTestHandler(t, &mockAccountSvc{}).Init()

	// including router-generated errors
	for _, tc := range []routeCase{
		{http.MethodGet, "/health"},
		{http.MethodGet, "/nonexistent"},
		{http.MethodPost, "/health"},
	} {
		tc := tc
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			for header, value := range securityHeaders {
				assert.Equal(t, value, rec.Header().Get(header), header)
			}
		})
	}
}

func TestInit_SecurityHeadersOnHTTPSRedirect(t *testing.T) {
	h := NewHandler(&service.Services{
		AccountService: &mockAccountSvc{},
		AppInfoService: &mockAppInfoSvc{},
	}, config.Server{EnforceHTTPS: true}, logger.Nop())
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "http://example.com/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusPermanentRedirect, rec.Code)
	for header, value := range securityHeaders {
		assert.Equal(t, value, rec.Header().Get(header), header)
	}
}

func TestInit_TraceIDHeaderSet(t *testing.T) {
	router := newTestHandler(t, &mockAccountSvc{}).Init()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}
