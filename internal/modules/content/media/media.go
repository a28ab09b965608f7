// Package media stores upload metadata. File bytes are read to
// measure size but are not persisted; serving the binary content is
// out of scope for this service.
package media

import (
	"context"
	"errors"
	"io"
	"mime/multipart"

	"github.com/gin-gonic/gin"
	"github.com/stakehall/core/internal/database"
	"github.com/stakehall/core/internal/middleware"
	"github.com/stakehall/core/internal/models"
	"github.com/stakehall/core/internal/pkg/response"
)

type Service struct {
	store *database.Store
}

func NewService(store *database.Store) *Service { return &Service{store: store} }

// Save records the upload's metadata and returns the new id.
func (s *Service) Save(ctx context.Context, header *multipart.FileHeader, alt, caption string) (*models.Media, string, error) {
	file, err := header.Open()
	if err != nil {
		return nil, "", err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", err
	}

	doc := models.Media{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        int64(len(data)),
		Storage:     models.MediaGridFS,
		Alt:         alt,
		Caption:     caption,
	}
	id, err := s.store.Create(ctx, models.CollectionMedia, &doc)
	if err != nil {
		return nil, "", err
	}
	return &doc, id, nil
}

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.POST("/admin/media", authMW, middleware.RequireRoles(models.RoleAdmin, models.RoleEditor), h.upload)
}

// POST /admin/media
func (h *Handler) upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "File is required")
		return
	}
	doc, id, err := h.svc.Save(c.Request.Context(), header, c.PostForm("alt"), c.PostForm("caption"))
	if err != nil {
		if errors.Is(err, database.ErrUnavailable) {
			response.ServiceUnavailable(c, "")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"id": id, "filename": doc.Filename, "size": doc.Size})
}
