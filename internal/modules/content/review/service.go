package review

import (
	"context"
	"errors"

	"github.com/stakehall/core/internal/database"
	"github.com/stakehall/core/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrInvalidID = errors.New("invalid review id")
	ErrNotFound  = errors.New("review not found")
)

type Service struct {
	store *database.Store
}

func NewService(store *database.Store) *Service { return &Service{store: store} }

// Submit stores a public review. Submissions go live immediately;
// moderation can pull them afterwards.
func (s *Service) Submit(ctx context.Context, dto *SubmitDTO) (string, error) {
	doc := dto.toModel()
	return s.store.Create(ctx, models.CollectionReview, &doc)
}

// Moderate applies the non-nil fields of dto to a review by id.
func (s *Service) Moderate(ctx context.Context, id string, dto *ModerateDTO) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	set := bson.M{}
	if dto.Rating != nil {
		set["rating"] = *dto.Rating
	}
	if dto.Comment != nil {
		set["comment"] = *dto.Comment
	}
	if dto.Status != nil {
		set["status"] = *dto.Status
	}
	if dto.ModerationNotes != nil {
		set["moderation_notes"] = *dto.ModerationNotes
	}
	if len(set) == 0 {
		return nil
	}

	matched, err := s.store.UpdateOne(ctx, models.CollectionReview, bson.M{"_id": oid}, set)
	if err != nil {
		return err
	}
	if matched == 0 {
		return ErrNotFound
	}
	return nil
}
