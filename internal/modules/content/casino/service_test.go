package casino

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestUpsertDTOToModelDefaults(t *testing.T) {
	dto := UpsertDTO{
		Name:         "Lucky Spin",
		Slug:         "lucky-spin",
		AffiliateURL: "https://example.com/go/lucky-spin",
	}
	m := dto.toModel()

	assert.Equal(t, 4.0, m.BaseScore)
	assert.True(t, m.IsPublished)
	assert.NotNil(t, m.Features)
	assert.NotNil(t, m.SupportedCountries)
	assert.NotNil(t, m.Pros)
	assert.NotNil(t, m.Gallery)
	assert.Empty(t, m.Features)
}

func TestUpsertDTOToModelExplicit(t *testing.T) {
	score := 2.5
	published := false
	dto := UpsertDTO{
		Name:               "Lucky Spin",
		Slug:               "lucky-spin",
		AffiliateURL:       "https://example.com/go/lucky-spin",
		BaseScore:          &score,
		IsPublished:        &published,
		SupportedCountries: []string{"DE", "AT"},
	}
	m := dto.toModel()

	assert.Equal(t, 2.5, m.BaseScore)
	assert.False(t, m.IsPublished)
	assert.Equal(t, []string{"DE", "AT"}, m.SupportedCountries)
}

func TestSortSpec(t *testing.T) {
	tests := []struct {
		sort string
		want bson.D
	}{
		{"score_desc", bson.D{{Key: "base_score", Value: -1}}},
		{"score_asc", bson.D{{Key: "base_score", Value: 1}}},
		{"name_desc", bson.D{{Key: "name", Value: -1}}},
		{"", bson.D{{Key: "name", Value: 1}}},
		{"bogus", bson.D{{Key: "name", Value: 1}}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, sortSpec(tt.sort), "sort=%q", tt.sort)
	}
}
