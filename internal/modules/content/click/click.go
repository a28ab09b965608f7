// Package click records outbound affiliate clicks. Tracking is best
// effort: the endpoint acknowledges even when storage is down so the
// frontend redirect is never blocked.
package click

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/stakehall/core/internal/database"
	"github.com/stakehall/core/internal/models"
	"github.com/stakehall/core/internal/pkg/response"
	"go.uber.org/zap"
)

type TrackDTO struct {
	CasinoSlug string `json:"casino_slug" binding:"required"`
	Source     string `json:"source"`
}

type Service struct {
	store *database.Store
}

func NewService(store *database.Store) *Service { return &Service{store: store} }

// Track stores a click stamped with the caller's user agent and IP.
func (s *Service) Track(ctx context.Context, dto *TrackDTO, userAgent, ip string) (string, error) {
	doc := models.Click{
		CasinoSlug: dto.CasinoSlug,
		Source:     dto.Source,
		UserAgent:  userAgent,
		IP:         ip,
	}
	return s.store.Create(ctx, models.CollectionClick, &doc)
}

type Handler struct {
	svc    *Service
	logger *zap.Logger
}

func NewHandler(svc *Service, logger *zap.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/click", h.track)
}

// POST /click
func (h *Handler) track(c *gin.Context) {
	var dto TrackDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	id, err := h.svc.Track(c.Request.Context(), &dto, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		h.logger.Warn("click not recorded", zap.Error(err), zap.String("casino_slug", dto.CasinoSlug))
		response.OK(c, gin.H{"id": nil, "status": "ok"})
		return
	}
	response.OK(c, gin.H{"id": id, "status": "ok"})
}
