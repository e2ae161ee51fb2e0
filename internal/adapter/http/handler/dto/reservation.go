package dto

import (
	"github.com/Temutjin2k/wtl-cabs/internal/domain/models"
	"github.com/Temutjin2k/wtl-cabs/internal/domain/types"
	"github.com/Temutjin2k/wtl-cabs/pkg/validator"
)

type ReservationRequest struct {
	QuoteToken string `json:"quote_token" validate:"required"`
	Category   string `json:"category" validate:"required"`
	Model      string `json:"model"`
}

func (r *ReservationRequest) Validate(v *validator.Validator) {
	v.Struct(r)

	if r.Category == "" {
		return
	}
	c, ok := types.ParseCategory(r.Category)
	if !ok {
		v.AddError("category", "must be one of Hatchback, Sedan, Sedan Premium, SUV, MUV")
		return
	}
	if r.Model != "" {
		_, err := models.DefaultSelection().Select(c, r.Model)
		v.Check(err == nil, "model", "is not offered for "+c.String())
	}
}

type ReservationResponse struct {
	InvoiceURL  string             `json:"invoice_url"`
	Reservation models.Reservation `json:"reservation"`
}

type VerifyRequest struct {
	Token string `json:"token" validate:"required"`
}

func (r *VerifyRequest) Validate(v *validator.Validator) {
	v.Struct(r)
}
