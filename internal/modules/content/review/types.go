package review

import "github.com/stakehall/core/internal/models"

// SubmitDTO is the public review submission payload.
type SubmitDTO struct {
	CasinoSlug string `json:"casino_slug" binding:"required"`
	UserName   string `json:"user_name" binding:"required"`
	Rating     int    `json:"rating" binding:"required,min=1,max=5"`
	Comment    string `json:"comment"`
}

func (d *SubmitDTO) toModel() models.Review {
	return models.Review{
		CasinoSlug: d.CasinoSlug,
		UserName:   d.UserName,
		Rating:     d.Rating,
		Comment:    d.Comment,
		Status:     models.ReviewApproved,
	}
}

// ModerateDTO is a partial update: nil fields are left untouched.
type ModerateDTO struct {
	Rating          *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Comment         *string `json:"comment"`
	Status          *string `json:"status" binding:"omitempty,oneof=pending approved rejected"`
	ModerationNotes *string `json:"moderation_notes"`
}
