package click

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
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

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	store := database.Connect(context.Background(), &config.AppConfig{}, zap.NewNop())
	r := gin.New()
	api := r.Group("/api")
	NewHandler(NewService(store), zap.NewNop()).RegisterRoutes(api)
	return r
}

func TestTrackAcksWhenStoreDown(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/click", strings.NewReader(`{"casino_slug":"lucky-spin","source":"toplist"}`))
	req.Header.Set("Content-Type", "application/json")
	newTestRouter(t).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Nil(t, body["id"])
}

func TestTrackRequiresSlug(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/click", strings.NewReader(`{"source":"toplist"}`))
	req.Header.Set("Content-Type", "application/json")
	newTestRouter(t).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
