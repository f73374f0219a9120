package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"x2colon-api/api/handlers"
	"x2colon-api/api/middleware"
	"x2colon-api/core/durations"
	"x2colon-api/core/interfaces"
)

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}

func newLimiter(t *testing.T, limit int, window time.Duration) *middleware.RateLimiter {
	t.Helper()
	limiter := middleware.NewRateLimiter(limit, window)
	t.Cleanup(limiter.Stop)
	return limiter
}

func registerAll(api huma.API) {
	svc := durations.NewService(interfaces.Dependencies{}, durations.ServiceOptions{})
	handlers.NewRootHandler(Version).RegisterRoutes(api)
	handlers.NewTimestampHandler(svc).RegisterRoutes(api)
	handlers.NewCleanHandler(svc).RegisterRoutes(api)
}

func TestNewAPI(t *testing.T) {
	api, router := NewAPI()
	require.NotNil(t, api)
	require.NotNil(t, router)

	info := api.OpenAPI().Info
	assert.Equal(t, "x2colon API", info.Title)
	assert.Equal(t, "1.0.0", info.Version)
}

func TestAPI_OpenAPIEndpoint(t *testing.T) {
	_, router := NewAPI()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/vnd.oai.openapi+json", rec.Header().Get("Content-Type"))
}

func TestAPI_DocsEndpoint(t *testing.T) {
	_, router := NewAPI()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html", rec.Header().Get("Content-Type"))
}

func TestAPI_CORSPreflight(t *testing.T) {
	api, router := NewAPIWithMiddleware(APIConfig{})
	registerAll(api)

	req := httptest.NewRequest(http.MethodOptions, "/timestamp", nil)
	req.Header.Set("Origin", "https://editor.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestAPIWithMiddleware_EndToEnd(t *testing.T) {
	api, router := NewAPIWithMiddleware(APIConfig{
		Logger:      nopLogger{},
		RateLimiter: newLimiter(t, 100, time.Minute),
	})
	registerAll(api)

	req := httptest.NewRequest(http.MethodPost, "/timestamp", strings.NewReader(`{"content":"(0:00-1:00) + (2:00-2:30)"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.Equal(t, "100", rec.Header().Get("X-RateLimit-Limit"))
	assert.Contains(t, rec.Body.String(), `"format":"1:30"`)
}

func TestAPIWithMiddleware_RateLimited(t *testing.T) {
	api, router := NewAPIWithMiddleware(APIConfig{RateLimiter: newLimiter(t, 1, time.Hour)})
	registerAll(api)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestAPIWithMiddleware_RecoversPanics(t *testing.T) {
	api, router := NewAPIWithMiddleware(APIConfig{})
	huma.Register(api, huma.Operation{
		OperationID: "explode",
		Method:      http.MethodGet,
		Path:        "/explode",
	}, func(ctx context.Context, input *struct{}) (*struct{}, error) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/explode", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestAPIWithMiddleware_Compresses(t *testing.T) {
	api, router := NewAPIWithMiddleware(APIConfig{})
	registerAll(api)

	req := httptest.NewRequest(http.MethodPost, "/clean", strings.NewReader(`{"script":"Start (0:00-0:10) end"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
}
