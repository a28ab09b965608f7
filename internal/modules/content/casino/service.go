package casino

import (
	"context"
	"errors"
	"strings"

	"github.com/stakehall/core/internal/database"
	"github.com/stakehall/core/internal/models"
	"github.com/stakehall/core/internal/pkg/pagination"
	"github.com/stakehall/core/internal/pkg/ratings"
	"github.com/stakehall/core/internal/pkg/response"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type Service struct {
	store *database.Store
}

func NewService(store *database.Store) *Service { return &Service{store: store} }

// ListParams are the public listing filters.
type ListParams struct {
	Country string
	Query   string
	Sort    string
	Page    pagination.Query
}

// List returns published casinos filtered by country/name with
// sort + skip/limit applied on the direct query path.
func (s *Service) List(ctx context.Context, p ListParams) ([]models.Casino, response.Pagination, error) {
	filter := bson.M{"is_published": true}
	if p.Country != "" {
		filter["supported_countries"] = bson.M{"$in": []string{strings.ToUpper(p.Country)}}
	}
	if p.Query != "" {
		filter["name"] = bson.M{"$regex": p.Query, "$options": "i"}
	}

	col, err := s.store.Collection(models.CollectionCasino)
	if err != nil {
		return nil, response.Pagination{}, err
	}

	items := []models.Casino{}
	meta, err := pagination.Find(ctx, col, filter, sortSpec(p.Sort), p.Page, &items)
	if err != nil {
		return nil, response.Pagination{}, err
	}
	return items, meta, nil
}

func sortSpec(sort string) bson.D {
	switch sort {
	case "score_desc":
		return bson.D{{Key: "base_score", Value: -1}}
	case "score_asc":
		return bson.D{{Key: "base_score", Value: 1}}
	case "name_desc":
		return bson.D{{Key: "name", Value: -1}}
	default:
		return bson.D{{Key: "name", Value: 1}}
	}
}

// Detail loads a casino by slug together with every offer and review
// referencing it, plus the rating summary.
func (s *Service) Detail(ctx context.Context, slug string) (*Detail, error) {
	var c models.Casino
	if err := s.store.FindOne(ctx, models.CollectionCasino, bson.M{"slug": slug}, &c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) || errors.Is(err, database.ErrUnavailable) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	offers := []models.Offer{}
	if err := s.store.Find(ctx, models.CollectionOffer, bson.M{"casino_slug": slug}, 0, &offers); err != nil {
		return nil, err
	}
	reviews := []models.Review{}
	if err := s.store.Find(ctx, models.CollectionReview, bson.M{"casino_slug": slug}, 0, &reviews); err != nil {
		return nil, err
	}

	values := make([]int, len(reviews))
	for i, r := range reviews {
		values[i] = r.Rating
	}

	return &Detail{
		Casino:  c,
		Offers:  offers,
		Reviews: reviews,
		Ratings: ratings.Tally(values),
	}, nil
}

// Create inserts a casino after checking slug uniqueness. The
// check-then-insert pair is not atomic; concurrent creates with the
// same slug can both pass the check.
func (s *Service) Create(ctx context.Context, dto *UpsertDTO) (string, error) {
	count, err := s.store.Count(ctx, models.CollectionCasino, bson.M{"slug": dto.Slug})
	if err != nil {
		return "", err
	}
	if count > 0 {
		return "", ErrSlugExists
	}
	return s.store.Create(ctx, models.CollectionCasino, dto.toModel())
}

// Update replaces the full field set of the casino identified by slug.
func (s *Service) Update(ctx context.Context, slug string, dto *UpsertDTO) error {
	m := dto.toModel()
	set := bson.M{
		"name":                m.Name,
		"slug":                m.Slug,
		"logo_url":            m.LogoURL,
		"affiliate_url":       m.AffiliateURL,
		"bonus_text":          m.BonusText,
		"features":            m.Features,
		"supported_countries": m.SupportedCountries,
		"base_score":          m.BaseScore,
		"pros":                m.Pros,
		"cons":                m.Cons,
		"payment_methods":     m.PaymentMethods,
		"providers":           m.Providers,
		"gallery":             m.Gallery,
		"seo_title":           m.SEOTitle,
		"seo_description":     m.SEODescription,
		"is_published":        m.IsPublished,
	}
	matched, err := s.store.UpdateOne(ctx, models.CollectionCasino, bson.M{"slug": slug}, set)
	if err != nil {
		return err
	}
	if matched == 0 {
		return ErrNotFound
	}
	return nil
}

// Seed is the legacy direct-create path. It deliberately skips the
// slug uniqueness check, matching the historical endpoint.
func (s *Service) Seed(ctx context.Context, dto *UpsertDTO) (string, error) {
	return s.store.Create(ctx, models.CollectionCasino, dto.toModel())
}
