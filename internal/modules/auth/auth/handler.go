package auth

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/stakehall/core/internal/database"
	"github.com/stakehall/core/internal/pkg/response"
)

type Handler struct {
	svc         *Service
	adminSecret string
}

func NewHandler(svc *Service, adminSecret string) *Handler {
	return &Handler{svc: svc, adminSecret: adminSecret}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	a := rg.Group("/auth")
	a.POST("/login", h.login)
	a.POST("/seed-admin", h.seedAdmin)
}

// POST /auth/login — form-encoded, username carries the email.
func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBind(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	token, err := h.svc.Login(c.Request.Context(), dto.Username, dto.Password)
	if err != nil {
		if errors.Is(err, errInvalidCredentials) {
			response.Unauthorized(c, "Invalid credentials")
			return
		}
		if errors.Is(err, database.ErrUnavailable) {
			response.ServiceUnavailable(c, "")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// POST /auth/seed-admin — guarded by the X-Admin-Secret header when
// a secret is configured.
func (h *Handler) seedAdmin(c *gin.Context) {
	if h.adminSecret != "" && c.GetHeader("X-Admin-Secret") != h.adminSecret {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	var dto SeedAdminDTO
	if err := c.ShouldBind(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	id, created, err := h.svc.SeedAdmin(c.Request.Context(), dto.Email, dto.Password)
	if err != nil {
		if errors.Is(err, database.ErrUnavailable) {
			response.ServiceUnavailable(c, "")
			return
		}
		response.InternalError(c, err)
		return
	}
	if !created {
		response.OK(c, gin.H{"status": "exists"})
		return
	}
	response.OK(c, gin.H{"id": id, "status": "created"})
}
