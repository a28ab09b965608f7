package offer

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
	rg.POST("/offers", authMW, middleware.RequireRoles(models.RoleAdmin, models.RoleEditor), h.create)
}

// POST /offers
func (h *Handler) create(c *gin.Context) {
	var dto CreateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	id, err := h.svc.Create(c.Request.Context(), &dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrCasinoMissing):
			response.BadRequest(c, "Casino does not exist")
		case errors.Is(err, database.ErrUnavailable):
			response.ServiceUnavailable(c, "")
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.OK(c, gin.H{"id": id, "message": "Offer created"})
}
