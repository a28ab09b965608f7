package blog

import (
	"errors"
	"time"

	"github.com/stakehall/core/internal/models"
)

// UpsertDTO is the admin payload for creating or replacing a post.
type UpsertDTO struct {
	Title          string     `json:"title" binding:"required"`
	Slug           string     `json:"slug" binding:"required"`
	CoverImage     string     `json:"cover_image"`
	Content        string     `json:"content" binding:"required"`
	Tags           []string   `json:"tags"`
	Status         string     `json:"status" binding:"omitempty,oneof=draft published"`
	PublishedAt    *time.Time `json:"published_at"`
	SEOTitle       string     `json:"seo_title"`
	SEODescription string     `json:"seo_description"`
}

func (d *UpsertDTO) toModel() models.BlogPost {
	status := models.BlogStatus(d.Status)
	if status == "" {
		status = models.BlogDraft
	}
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	return models.BlogPost{
		Title:          d.Title,
		Slug:           d.Slug,
		CoverImage:     d.CoverImage,
		Content:        d.Content,
		Tags:           tags,
		Status:         status,
		PublishedAt:    d.PublishedAt,
		SEOTitle:       d.SEOTitle,
		SEODescription: d.SEODescription,
	}
}

var (
	ErrNotFound   = errors.New("blog post not found")
	ErrSlugExists = errors.New("blog slug already exists")
)
