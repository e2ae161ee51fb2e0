package handler

import (
	"context"
	"net/http"

	"github.com/Temutjin2k/wtl-cabs/internal/domain/models"
)

type (
	LandingService interface {
		DefaultCity() string
		Page(ctx context.Context, slug, open, tab string) (models.LandingPage, error)
	}

	SearchService interface {
		Search(ctx context.Context, q models.TripQuery, sel models.Selection, filter string) models.SearchResults
		Placeholder(q models.TripQuery, sel models.Selection, filter string) models.SearchResults
	}

	QuoteTokens interface {
		SignQuote(ctx context.Context, q models.TripQuery, quote models.Quote) (string, error)
		OpenQuote(ctx context.Context, token string) (models.TripQuery, models.Quote, error)
	}

	ReservationService interface {
		Reserve(ctx context.Context, req models.ReserveRequest) (models.Handoff, error)
		Verify(ctx context.Context, token string) (models.Reservation, error)
	}

	// Renderer writes HTML pages.
	Renderer interface {
		Render(ctx context.Context, w http.ResponseWriter, status int, page string, data any)
	}
)
