// internal/routing/router_test.go
//
// End-to-end tests through the full middleware stack with the real
// components mounted.

package routing

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/yanizio/apidemo/components/client"
	"github.com/yanizio/apidemo/components/health"
	"github.com/yanizio/apidemo/components/text"
	"github.com/yanizio/apidemo/components/users"
	"github.com/yanizio/apidemo/internal/component"
	"github.com/yanizio/apidemo/internal/config"
)

type panicComp struct{}

func (panicComp) Name() string   { return "panic" }
func (panicComp) Prefix() string { return "/boom" }
func (panicComp) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", func(http.ResponseWriter, *http.Request) { panic("exploded") })
	return r
}

func newHandler(t *testing.T, env map[string]string) (http.Handler, *observer.ObservedLogs) {
	t.Helper()
	cfg, err := config.FromMap(env)
	require.NoError(t, err)

	core, logs := observer.New(zapcore.DebugLevel)
	log := zap.New(core).Sugar()

	h, err := New(Deps{
		Config: cfg,
		Log:    log,
		Components: []component.Component{
			health.New(),
			users.New(users.NewStore(users.SeedUsers()...), log),
			text.New(log),
			&client.Comp{},
			panicComp{},
		},
	})
	require.NoError(t, err)
	return h, logs
}

func do(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func failure(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m), rec.Body.String())
	assert.Equal(t, false, m["success"])
	return m
}

func TestHealthThroughStack(t *testing.T) {
	h, logs := newHandler(t, nil)

	rec := do(h, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Empty(t, rec.Header().Get("Strict-Transport-Security"), "no HSTS outside production")
	assert.Contains(t, rec.Body.String(), `"message":"Server is running"`)

	assert.Equal(t, 1, logs.FilterMessage("Incoming request").Len())
	assert.Equal(t, 1, logs.FilterMessage("HTTP Request").Len())
}

func TestProductionSendsHSTS(t *testing.T) {
	h, _ := newHandler(t, map[string]string{config.KeyEnv: "production"})
	rec := do(h, http.MethodGet, "/health", "")
	assert.NotEmpty(t, rec.Header().Get("Strict-Transport-Security"))
}

func TestUnknownRoute(t *testing.T) {
	h, _ := newHandler(t, nil)

	rec := do(h, http.MethodGet, "/nope?x=1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	m := failure(t, rec)
	assert.Equal(t, "NOT_FOUND", m["code"])
	assert.Equal(t, "Route GET /nope?x=1 not found", m["error"])

	rec = do(h, http.MethodGet, "/api/v1/users/1/extra", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", failure(t, rec)["code"], "sub-routers share the JSON 404")
}

func TestMethodNotAllowed(t *testing.T) {
	h, _ := newHandler(t, nil)
	rec := do(h, http.MethodDelete, "/health", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "METHOD_NOT_ALLOWED", failure(t, rec)["code"])
}

func TestPreflight(t *testing.T) {
	h, _ := newHandler(t, map[string]string{config.KeyCORSOrigin: "https://app.test"})
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/users", nil)
	req.Header.Set("Origin", "https://app.test")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://app.test", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestQueryValidationThroughStack(t *testing.T) {
	h, logs := newHandler(t, nil)

	rec := do(h, http.MethodGet, "/api/v1/users/search", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	m := failure(t, rec)
	assert.Equal(t, "QUERY_VALIDATION_ERROR", m["code"])
	details := m["details"].([]any)
	require.Len(t, details, 1)
	assert.Equal(t, "q", details[0].(map[string]any)["param"])

	entries := logs.FilterMessage("Query validation failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, rec.Header().Get("X-Request-ID"), entries[0].ContextMap()["request_id"])

	rec = do(h, http.MethodGet, "/api/v1/users?page=2&limit=10", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBodyValidationThroughStack(t *testing.T) {
	h, _ := newHandler(t, nil)

	rec := do(h, http.MethodPost, "/api/v1/users", `{"name":"A","email":"a@b.co","age":16}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	m := failure(t, rec)
	assert.Equal(t, "VALIDATION_ERROR", m["code"])
	assert.Len(t, m["details"], 1)

	rec = do(h, http.MethodPost, "/api/v1/users", `{"name":"Ann Lee","email":"ann@lee.dev","age":16}`)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(h, http.MethodPost, "/api/v1/text/analyze", `{"text":"hi there"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"capitalized":"Hi There"`)
}

func TestPanicIsRecovered(t *testing.T) {
	h, logs := newHandler(t, map[string]string{config.KeyEnv: "production"})

	rec := do(h, http.MethodGet, "/boom", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	m := failure(t, rec)
	assert.Equal(t, "INTERNAL_ERROR", m["code"])
	assert.Equal(t, "Internal Server Error", m["error"])
	assert.NotContains(t, m, "stack")

	assert.Equal(t, 1, logs.FilterMessage("Error caught by middleware").Len())
	done := logs.FilterMessage("HTTP Request").All()
	require.Len(t, done, 1)
	assert.Equal(t, int64(http.StatusInternalServerError), done[0].ContextMap()["status_code"])
}

func TestClientInfoAndMetrics(t *testing.T) {
	h, _ := newHandler(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/client", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.5")
	req.Header.Set("Authorization", "Bearer x")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ip":"203.0.113.5"`)
	assert.Contains(t, rec.Body.String(), `"authorization":"present"`)

	rec = do(h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total")
	assert.Contains(t, rec.Body.String(), "users_stored")
}

func TestDuplicatePrefixFails(t *testing.T) {
	cfg, err := config.FromMap(nil)
	require.NoError(t, err)
	_, err = New(Deps{
		Config:     cfg,
		Log:        zap.NewNop().Sugar(),
		Components: []component.Component{health.New(), health.New()},
	})
	assert.Error(t, err)
}
