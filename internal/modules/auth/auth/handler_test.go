package auth

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T, adminSecret string) *gin.Engine {
	t.Helper()
	r := gin.New()
	api := r.Group("/api")
	NewHandler(NewService(degradedStore(t), time.Hour), adminSecret).RegisterRoutes(api)
	return r
}

func postForm(r *gin.Engine, path string, form url.Values, secret string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if secret != "" {
		req.Header.Set("X-Admin-Secret", secret)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestLoginRequiresCredentials(t *testing.T) {
	w := postForm(newTestRouter(t, ""), "/api/auth/login", url.Values{"username": {"a@example.com"}}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginUnavailable(t *testing.T) {
	form := url.Values{"username": {"a@example.com"}, "password": {"hunter2"}}
	w := postForm(newTestRouter(t, ""), "/api/auth/login", form, "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestSeedAdminSecretGuard(t *testing.T) {
	form := url.Values{"email": {"a@example.com"}, "password": {"hunter2"}}

	w := postForm(newTestRouter(t, "expected"), "/api/auth/seed-admin", form, "wrong")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// no configured secret leaves the endpoint open
	w = postForm(newTestRouter(t, ""), "/api/auth/seed-admin", form, "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
