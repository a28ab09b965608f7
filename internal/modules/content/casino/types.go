package casino

import (
	"errors"

	"github.com/stakehall/core/internal/models"
	"github.com/stakehall/core/internal/pkg/ratings"
)

// UpsertDTO is the full casino payload used by admin create, admin
// update (full replace) and the legacy seed endpoint.
type UpsertDTO struct {
	Name               string    `json:"name"          binding:"required"`
	Slug               string    `json:"slug"          binding:"required"`
	AffiliateURL       string    `json:"affiliate_url" binding:"required"`
	LogoURL            string    `json:"logo_url"`
	BonusText          string    `json:"bonus_text"`
	Features           []string  `json:"features"`
	SupportedCountries []string  `json:"supported_countries"`
	BaseScore          *float64  `json:"base_score"    binding:"omitempty,gte=0,lte=5"`
	Pros               []string  `json:"pros"`
	Cons               []string  `json:"cons"`
	PaymentMethods     []string  `json:"payment_methods"`
	Providers          []string  `json:"providers"`
	Gallery            []string  `json:"gallery"`
	SEOTitle           string    `json:"seo_title"`
	SEODescription     string    `json:"seo_description"`
	IsPublished        *bool     `json:"is_published"`
}

const defaultBaseScore = 4.0

func (d *UpsertDTO) toModel() models.Casino {
	score := defaultBaseScore
	if d.BaseScore != nil {
		score = *d.BaseScore
	}
	published := true
	if d.IsPublished != nil {
		published = *d.IsPublished
	}
	return models.Casino{
		Name:               d.Name,
		Slug:               d.Slug,
		LogoURL:            d.LogoURL,
		AffiliateURL:       d.AffiliateURL,
		BonusText:          d.BonusText,
		Features:           emptyIfNil(d.Features),
		SupportedCountries: emptyIfNil(d.SupportedCountries),
		BaseScore:          score,
		Pros:               emptyIfNil(d.Pros),
		Cons:               emptyIfNil(d.Cons),
		PaymentMethods:     emptyIfNil(d.PaymentMethods),
		Providers:          emptyIfNil(d.Providers),
		Gallery:            emptyIfNil(d.Gallery),
		SEOTitle:           d.SEOTitle,
		SEODescription:     d.SEODescription,
		IsPublished:        published,
	}
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// Detail is the casino page payload: the record plus all of its
// offers and reviews and the rating summary.
type Detail struct {
	Casino  models.Casino   `json:"casino"`
	Offers  []models.Offer  `json:"offers"`
	Reviews []models.Review `json:"reviews"`
	Ratings ratings.Summary `json:"ratings"`
}

var (
	ErrNotFound   = errors.New("casino not found")
	ErrSlugExists = errors.New("slug already exists")
)
