// Package health exposes the root liveness probe and a storage
// diagnostics endpoint.
package health

import (
	"github.com/gin-gonic/gin"
	"github.com/stakehall/core/internal/config"
	"github.com/stakehall/core/internal/database"
	"github.com/stakehall/core/internal/pkg/response"
)

type Handler struct {
	cfg   *config.AppConfig
	store *database.Store
}

func NewHandler(cfg *config.AppConfig, store *database.Store) *Handler {
	return &Handler{cfg: cfg, store: store}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.root)
	r.GET("/test", h.test)
}

// GET /
func (h *Handler) root(c *gin.Context) {
	response.OK(c, gin.H{"message": "Casino Affiliate Backend Running"})
}

// GET /test reports connectivity without failing the request: a
// broken database yields a diagnostic body, not an error status.
func (h *Handler) test(c *gin.Context) {
	collections, err := h.store.ListCollectionNames(c.Request.Context())
	if err != nil {
		response.OK(c, gin.H{
			"backend":       "✅ Running",
			"database":      "❌ Connection Failed",
			"error":         err.Error(),
			"database_url":  setOrNot(h.cfg.Database.URL),
			"database_name": setOrNot(h.cfg.Database.Name),
		})
		return
	}
	response.OK(c, gin.H{
		"backend":       "✅ Running",
		"database":      "✅ Connected & Working",
		"database_name": h.store.Name(),
		"collections":   collections,
	})
}

func setOrNot(v string) string {
	if v == "" {
		return "Not Set"
	}
	return "Set"
}
