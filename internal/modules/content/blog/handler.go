package blog

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/stakehall/core/internal/database"
	"github.com/stakehall/core/internal/middleware"
	"github.com/stakehall/core/internal/models"
	"github.com/stakehall/core/internal/pkg/pagination"
	"github.com/stakehall/core/internal/pkg/response"
	"go.uber.org/zap"
)

type Handler struct {
	svc    *Service
	logger *zap.Logger
}

func NewHandler(svc *Service, logger *zap.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.GET("/blogs", h.list)
	rg.GET("/blogs/:slug", h.get)

	admin := rg.Group("/admin/blogs", authMW, middleware.RequireRoles(models.RoleAdmin, models.RoleEditor))
	admin.POST("", h.create)
	admin.PUT("/:slug", h.update)
}

// GET /blogs?tag=&page=&page_size=
// Degrades to an empty page when storage is down, same as the casino
// listing.
func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c)
	posts, meta, err := h.svc.List(c.Request.Context(), c.Query("tag"), q)
	if err != nil {
		h.logger.Warn("blog listing degraded", zap.Error(err))
		response.Paged(c, []models.BlogPost{}, q.Empty())
		return
	}
	response.Paged(c, posts, meta)
}

// GET /blogs/:slug
func (h *Handler) get(c *gin.Context) {
	post, err := h.svc.Get(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, database.ErrUnavailable) {
			response.NotFound(c, "Blog post not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, post)
}

// POST /admin/blogs
func (h *Handler) create(c *gin.Context) {
	var dto UpsertDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	var authorEmail string
	if user := middleware.CurrentUser(c); user != nil {
		authorEmail = user.Email
	}
	id, err := h.svc.Create(c.Request.Context(), &dto, authorEmail)
	if err != nil {
		switch {
		case errors.Is(err, ErrSlugExists):
			response.Conflict(c, "Slug already exists")
		case errors.Is(err, database.ErrUnavailable):
			response.ServiceUnavailable(c, "")
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.OK(c, gin.H{"id": id})
}

// PUT /admin/blogs/:slug
func (h *Handler) update(c *gin.Context) {
	var dto UpsertDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := h.svc.Update(c.Request.Context(), c.Param("slug"), &dto); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.NotFound(c, "Blog post not found")
		case errors.Is(err, database.ErrUnavailable):
			response.ServiceUnavailable(c, "")
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.OK(c, gin.H{"updated": true})
}
