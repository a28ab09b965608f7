package review

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stakehall/core/internal/config"
	"github.com/stakehall/core/internal/database"
	"github.com/stakehall/core/internal/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func degradedService(t *testing.T) *Service {
	t.Helper()
	return NewService(database.Connect(context.Background(), &config.AppConfig{}, zap.NewNop()))
}

func TestSubmitDTOToModel(t *testing.T) {
	dto := SubmitDTO{CasinoSlug: "lucky-spin", UserName: "alex", Rating: 4, Comment: "decent"}
	m := dto.toModel()

	assert.Equal(t, models.ReviewApproved, m.Status)
	assert.Equal(t, 4, m.Rating)
	assert.Equal(t, "lucky-spin", m.CasinoSlug)
}

func TestModerateInvalidID(t *testing.T) {
	err := degradedService(t).Moderate(context.Background(), "not-an-object-id", &ModerateDTO{})
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestModerateNoFieldsIsNoop(t *testing.T) {
	// valid hex id, empty patch: no store round trip happens
	err := degradedService(t).Moderate(context.Background(), "507f1f77bcf86cd799439011", &ModerateDTO{})
	assert.NoError(t, err)
}

func TestModerateUnavailableStore(t *testing.T) {
	status := "rejected"
	err := degradedService(t).Moderate(context.Background(), "507f1f77bcf86cd799439011", &ModerateDTO{Status: &status})
	assert.ErrorIs(t, err, database.ErrUnavailable)
}

func TestSubmitValidation(t *testing.T) {
	r := gin.New()
	api := r.Group("/api")
	noAuth := func(c *gin.Context) { c.Next() }
	NewHandler(degradedService(t)).RegisterRoutes(api, noAuth)

	tests := []struct {
		name       string
		payload    string
		wantStatus int
	}{
		{"rating too high", `{"casino_slug":"x","user_name":"a","rating":6}`, http.StatusBadRequest},
		{"rating missing", `{"casino_slug":"x","user_name":"a"}`, http.StatusBadRequest},
		{"slug missing", `{"user_name":"a","rating":3}`, http.StatusBadRequest},
		{"valid payload hits degraded store", `{"casino_slug":"x","user_name":"a","rating":3}`, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/reviews", strings.NewReader(tt.payload))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
