package health

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stakehall/core/internal/config"
	"github.com/stakehall/core/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T, cfg *config.AppConfig) *gin.Engine {
	t.Helper()
	store := database.Connect(context.Background(), cfg, zap.NewNop())
	r := gin.New()
	NewHandler(cfg, store).RegisterRoutes(r)
	return r
}

func TestRoot(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	newTestRouter(t, &config.AppConfig{}).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Casino Affiliate Backend Running", body["message"])
}

func TestDiagnosticsWhenUnconfigured(t *testing.T) {
	cfg := &config.AppConfig{
		Database: config.DatabaseRuntimeConfig{URL: "mongodb://localhost:27017"},
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	newTestRouter(t, cfg).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "✅ Running", body["backend"])
	assert.Equal(t, "❌ Connection Failed", body["database"])
	assert.Equal(t, "Set", body["database_url"])
	assert.Equal(t, "Not Set", body["database_name"])
}
