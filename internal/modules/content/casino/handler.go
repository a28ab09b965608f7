package casino

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/stakehall/core/internal/middleware"
	"github.com/stakehall/core/internal/models"
	"github.com/stakehall/core/internal/pkg/pagination"
	"github.com/stakehall/core/internal/pkg/response"
	"go.uber.org/zap"
)

type Handler struct {
	svc         *Service
	adminSecret string
	logger      *zap.Logger
}

func NewHandler(svc *Service, adminSecret string, logger *zap.Logger) *Handler {
	return &Handler{svc: svc, adminSecret: adminSecret, logger: logger}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.GET("/casinos", h.list)
	rg.GET("/casinos/:slug", h.detail)

	admin := rg.Group("/admin/casinos", authMW, middleware.RequireRoles(models.RoleAdmin, models.RoleEditor))
	admin.POST("", h.create)
	admin.PUT("/:slug", h.update)

	rg.POST("/seed/casino", h.seed)
}

// GET /casinos?country=&q=&page=&page_size=&sort=
// Any storage failure degrades to an empty page: the public listing
// must never hard-fail.
func (h *Handler) list(c *gin.Context) {
	params := ListParams{
		Country: c.Query("country"),
		Query:   c.Query("q"),
		Sort:    c.Query("sort"),
		Page:    pagination.FromContext(c),
	}

	items, meta, err := h.svc.List(c.Request.Context(), params)
	if err != nil {
		h.logger.Warn("casino listing degraded", zap.Error(err))
		response.Paged(c, []models.Casino{}, params.Page.Empty())
		return
	}
	response.Paged(c, items, meta)
}

// GET /casinos/:slug
func (h *Handler) detail(c *gin.Context) {
	detail, err := h.svc.Detail(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(c, "Casino not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, detail)
}

// POST /admin/casinos
func (h *Handler) create(c *gin.Context) {
	var dto UpsertDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	id, err := h.svc.Create(c.Request.Context(), &dto)
	if err != nil {
		if errors.Is(err, ErrSlugExists) {
			response.Conflict(c, "Slug already exists")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"id": id})
}

// PUT /admin/casinos/:slug
func (h *Handler) update(c *gin.Context) {
	var dto UpsertDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := h.svc.Update(c.Request.Context(), c.Param("slug"), &dto); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(c, "Casino not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"updated": true})
}

// POST /seed/casino — legacy bootstrap path guarded by the admin
// secret header.
func (h *Handler) seed(c *gin.Context) {
	if h.adminSecret != "" && c.GetHeader("X-Admin-Secret") != h.adminSecret {
		response.Unauthorized(c, "Unauthorized")
		return
	}
	var dto UpsertDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	id, err := h.svc.Seed(c.Request.Context(), &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"id": id})
}
