package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stakehall/core/internal/models"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func rolesRouter(user *models.AdminUser, allowed ...models.Role) *gin.Engine {
	r := gin.New()
	r.GET("/guarded",
		func(c *gin.Context) {
			if user != nil {
				c.Set(contextKeyUser, user)
			}
			c.Next()
		},
		RequireRoles(allowed...),
		func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) },
	)
	return r
}

func TestRequireRoles(t *testing.T) {
	tests := []struct {
		name       string
		user       *models.AdminUser
		allowed    []models.Role
		wantStatus int
	}{
		{
			name:       "no user",
			user:       nil,
			allowed:    []models.Role{models.RoleAdmin},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "role not allowed",
			user:       &models.AdminUser{Email: "r@example.com", Role: models.RoleReviewer},
			allowed:    []models.Role{models.RoleAdmin, models.RoleEditor},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "role allowed",
			user:       &models.AdminUser{Email: "e@example.com", Role: models.RoleEditor},
			allowed:    []models.Role{models.RoleAdmin, models.RoleEditor},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
			rolesRouter(tt.user, tt.allowed...).ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestExtractToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"bearer prefix", "Bearer abc.def.ghi", "abc.def.ghi"},
		{"lowercase bearer", "bearer tok", "tok"},
		{"raw token", "tok", "tok"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				c.Request.Header.Set("Authorization", tt.header)
			}
			assert.Equal(t, tt.want, ExtractToken(c))
		})
	}
}
