package offer

import (
	"context"

	"github.com/stakehall/core/internal/database"
	"github.com/stakehall/core/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

type Service struct {
	store *database.Store
}

func NewService(store *database.Store) *Service { return &Service{store: store} }

// Create inserts an offer after verifying its casino exists.
func (s *Service) Create(ctx context.Context, dto *CreateDTO) (string, error) {
	n, err := s.store.Count(ctx, models.CollectionCasino, bson.M{"slug": dto.CasinoSlug})
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", ErrCasinoMissing
	}
	doc := dto.toModel()
	return s.store.Create(ctx, models.CollectionOffer, &doc)
}
