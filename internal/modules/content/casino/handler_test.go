package casino

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

func newTestRouter(t *testing.T, adminSecret string) *gin.Engine {
	t.Helper()
	store := database.Connect(context.Background(), &config.AppConfig{}, zap.NewNop())
	r := gin.New()
	api := r.Group("/api")
	noAuth := func(c *gin.Context) { c.Next() }
	NewHandler(NewService(store), adminSecret, zap.NewNop()).RegisterRoutes(api, noAuth)
	return r
}

func TestListDegradesToEmptyPage(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/casinos?page=2&page_size=5", nil)
	newTestRouter(t, "").ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Items      []json.RawMessage `json:"items"`
		Pagination struct {
			Page     int   `json:"page"`
			PageSize int   `json:"page_size"`
			Total    int64 `json:"total"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Empty(t, body.Items)
	assert.Equal(t, 2, body.Pagination.Page)
	assert.Equal(t, 5, body.Pagination.PageSize)
	assert.Equal(t, int64(0), body.Pagination.Total)
}

func TestDetailNotFoundWhenStoreDown(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/casinos/lucky-spin", nil)
	newTestRouter(t, "").ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSeedRejectsWrongSecret(t *testing.T) {
	payload := `{"name":"Lucky Spin","slug":"lucky-spin","affiliate_url":"https://example.com"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/seed/casino", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Admin-Secret", "wrong")
	newTestRouter(t, "expected").ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateRejectsInvalidScore(t *testing.T) {
	payload := `{"name":"Lucky Spin","slug":"lucky-spin","affiliate_url":"https://example.com","base_score":7}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/casinos", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	newTestRouter(t, "").ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
