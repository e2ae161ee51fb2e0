package search

import (
	"context"

	"github.com/Temutjin2k/wtl-cabs/internal/domain/models"
)

type PricingClient interface {
	FetchQuote(ctx context.Context, q models.TripQuery) (models.Quote, error)
}
