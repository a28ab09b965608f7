package review

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/stakehall/core/internal/database"
	"github.com/stakehall/core/internal/middleware"
	"github.com/stakehall/core/internal/models"
	"github.com/stakehall/core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.POST("/reviews", h.submit)

	moderators := middleware.RequireRoles(models.RoleAdmin, models.RoleReviewer, models.RoleEditor)
	rg.PUT("/admin/reviews/:review_id", authMW, moderators, h.moderate)
}

// POST /reviews
func (h *Handler) submit(c *gin.Context) {
	var dto SubmitDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	id, err := h.svc.Submit(c.Request.Context(), &dto)
	if err != nil {
		if errors.Is(err, database.ErrUnavailable) {
			response.ServiceUnavailable(c, "")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"id": id, "message": "Review submitted"})
}

// PUT /admin/reviews/:review_id
func (h *Handler) moderate(c *gin.Context) {
	var dto ModerateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	err := h.svc.Moderate(c.Request.Context(), c.Param("review_id"), &dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidID):
			response.BadRequest(c, "Invalid review id")
		case errors.Is(err, ErrNotFound):
			response.NotFound(c, "Review not found")
		case errors.Is(err, database.ErrUnavailable):
			response.ServiceUnavailable(c, "")
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.OK(c, gin.H{"updated": true})
}
