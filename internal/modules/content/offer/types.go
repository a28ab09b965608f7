package offer

import (
	"errors"

	"github.com/stakehall/core/internal/models"
)

// CreateDTO is the payload for attaching an offer to a casino.
type CreateDTO struct {
	CasinoSlug  string `json:"casino_slug" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	BonusAmount string `json:"bonus_amount"`
	Wagering    string `json:"wagering"`
	Code        string `json:"code"`
}

func (d *CreateDTO) toModel() models.Offer {
	return models.Offer{
		CasinoSlug:  d.CasinoSlug,
		Title:       d.Title,
		Description: d.Description,
		BonusAmount: d.BonusAmount,
		Wagering:    d.Wagering,
		Code:        d.Code,
	}
}

// ErrCasinoMissing means the referenced casino slug does not exist.
var ErrCasinoMissing = errors.New("casino does not exist")
