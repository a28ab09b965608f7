package blog

import (
	"context"
	"errors"
	"time"

	"github.com/stakehall/core/internal/database"
	"github.com/stakehall/core/internal/models"
	"github.com/stakehall/core/internal/pkg/pagination"
	"github.com/stakehall/core/internal/pkg/response"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type Service struct {
	store *database.Store
}

func NewService(store *database.Store) *Service { return &Service{store: store} }

// List returns published posts, newest first, optionally filtered by
// tag.
func (s *Service) List(ctx context.Context, tag string, q pagination.Query) ([]models.BlogPost, response.Pagination, error) {
	col, err := s.store.Collection(models.CollectionBlogPost)
	if err != nil {
		return nil, response.Pagination{}, err
	}

	filter := bson.M{"status": models.BlogPublished}
	if tag != "" {
		filter["tags"] = tag
	}

	var posts []models.BlogPost
	meta, err := pagination.Find(ctx, col, filter, bson.D{{Key: "published_at", Value: -1}}, q, &posts)
	if err != nil {
		return nil, response.Pagination{}, err
	}
	if posts == nil {
		posts = []models.BlogPost{}
	}
	return posts, meta, nil
}

// Get returns a published post by slug. Drafts are invisible here.
func (s *Service) Get(ctx context.Context, slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	filter := bson.M{"slug": slug, "status": models.BlogPublished}
	if err := s.store.FindOne(ctx, models.CollectionBlogPost, filter, &post); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// Create inserts a post. The author is stamped from the caller and
// published_at is set on creation when the post goes straight to
// published.
func (s *Service) Create(ctx context.Context, dto *UpsertDTO, authorEmail string) (string, error) {
	n, err := s.store.Count(ctx, models.CollectionBlogPost, bson.M{"slug": dto.Slug})
	if err != nil {
		return "", err
	}
	if n > 0 {
		return "", ErrSlugExists
	}

	post := dto.toModel()
	post.AuthorEmail = authorEmail
	if post.Status == models.BlogPublished && post.PublishedAt == nil {
		now := time.Now().UTC()
		post.PublishedAt = &now
	}
	return s.store.Create(ctx, models.CollectionBlogPost, &post)
}

// Update replaces a post's fields by slug. An existing published_at
// is kept unless the payload supplies one.
func (s *Service) Update(ctx context.Context, slug string, dto *UpsertDTO) error {
	post := dto.toModel()
	set := bson.M{
		"title":           post.Title,
		"slug":            post.Slug,
		"cover_image":     post.CoverImage,
		"content":         post.Content,
		"tags":            post.Tags,
		"status":          post.Status,
		"seo_title":       post.SEOTitle,
		"seo_description": post.SEODescription,
	}
	if post.PublishedAt != nil {
		set["published_at"] = *post.PublishedAt
	}

	matched, err := s.store.UpdateOne(ctx, models.CollectionBlogPost, bson.M{"slug": slug}, set)
	if err != nil {
		return err
	}
	if matched == 0 {
		return ErrNotFound
	}
	return nil
}
