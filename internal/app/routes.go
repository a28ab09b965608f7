package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stakehall/core/internal/middleware"
	"github.com/stakehall/core/internal/modules/auth/auth"
	"github.com/stakehall/core/internal/modules/content/blog"
	"github.com/stakehall/core/internal/modules/content/casino"
	"github.com/stakehall/core/internal/modules/content/click"
	"github.com/stakehall/core/internal/modules/content/media"
	"github.com/stakehall/core/internal/modules/content/offer"
	"github.com/stakehall/core/internal/modules/content/review"
	"github.com/stakehall/core/internal/modules/health"
	"github.com/stakehall/core/internal/pkg/response"
)

func (a *App) registerRoutes() {
	r := a.router
	authMW := middleware.Auth(a.store)

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "")
	})

	health.NewHandler(a.cfg, a.store).RegisterRoutes(r)

	api := r.Group("/api")
	api.Use(middleware.HTTPCache(a.rc.Raw(), middleware.HTTPCacheOptions{
		TTL:          15 * time.Second,
		Disable:      a.cfg.IsDev(),
		PathPrefixes: []string{"/api/casinos", "/api/blogs"},
	}))

	auth.NewHandler(auth.NewService(a.store, a.cfg.TokenTTL()), a.cfg.AdminSecret).RegisterRoutes(api)

	casino.NewHandler(casino.NewService(a.store), a.cfg.AdminSecret, a.logger).RegisterRoutes(api, authMW)
	offer.NewHandler(offer.NewService(a.store)).RegisterRoutes(api, authMW)
	review.NewHandler(review.NewService(a.store)).RegisterRoutes(api, authMW)
	click.NewHandler(click.NewService(a.store), a.logger).RegisterRoutes(api)
	blog.NewHandler(blog.NewService(a.store), a.logger).RegisterRoutes(api, authMW)
	media.NewHandler(media.NewService(a.store)).RegisterRoutes(api, authMW)
}
