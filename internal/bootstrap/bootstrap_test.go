package bootstrap

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/schoolfm/internal/config"
)

// newTestRouter wires the full router without a database. Only endpoints that
// never reach the store are exercised.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	dir := t.TempDir()
	public := filepath.Join(dir, "public")
	require.NoError(t, os.MkdirAll(public, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(public, "index.html"), []byte("<h1>School Admin</h1>"), 0o644))

	cfg := &config.Config{}
	cfg.Server.Mode = "production"
	cfg.Server.StaticPath = public
	cfg.Server.SettingsPath = filepath.Join(dir, "data", "settings.json")

	deps, err := BuildDependencies(cfg, nil, zerolog.Nop())
	require.NoError(t, err)

	router, err := SetupRouter(cfg, deps, zerolog.Nop())
	require.NoError(t, err)
	return router
}

func serve(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRouterServesSettingsRoundTrip(t *testing.T) {
	router := newTestRouter(t)

	rec := serve(router, http.MethodPut, "/api/settings", `{"theme":"dark"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = serve(router, http.MethodGet, "/api/settings", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"theme":"dark"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRouterRejectsInvalidInputBeforeTheStore(t *testing.T) {
	router := newTestRouter(t)

	rec := serve(router, http.MethodPost, "/api/classes", `{"name":"Grade 5","extra":true}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(router, http.MethodGet, "/api/bus-stops?bus_route_id=x", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(router, http.MethodPut, "/api/staff/abc/archive", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouterRejectsAmountsTheColumnCannotHold(t *testing.T) {
	router := newTestRouter(t)

	for _, tc := range []struct{ path, body, field string }{
		{"/api/fees", `{"student_id":1,"amount":10000000000,"status":"Due"}`, "amount"},
		{"/api/fee-structures", `{"fee_type":"Tuition","amount":1e12}`, "amount"},
		{"/api/bus-stops", `{"bus_route_id":1,"stop_name":"Gate","fee_amount":1e10}`, "fee_amount"},
	} {
		rec := serve(router, http.MethodPost, tc.path, tc.body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, tc.path)
		assert.Contains(t, rec.Body.String(), `"field":"`+tc.field+`"`, tc.path)
		assert.Contains(t, rec.Body.String(), "must be less than", tc.path)
	}
}

func TestRouterServesStaticUI(t *testing.T) {
	router := newTestRouter(t)

	rec := serve(router, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "School Admin")

	rec = serve(router, http.MethodGet, "/api/unknown", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"RES_001"`)
}

func TestLoadConfigAndSetupLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: debug\n  format: text\n"), 0o644))

	cfg, _, err := LoadConfigAndSetupLogger(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}
