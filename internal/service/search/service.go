package search

import (
	"context"
	"strings"

	"github.com/Temutjin2k/wtl-cabs/internal/domain/models"
	"github.com/Temutjin2k/wtl-cabs/internal/domain/types"
	"github.com/Temutjin2k/wtl-cabs/internal/service/fare"
	"github.com/Temutjin2k/wtl-cabs/pkg/logger"
	wrap "github.com/Temutjin2k/wtl-cabs/pkg/logger/wrapper"
	"github.com/Temutjin2k/wtl-cabs/pkg/metrics"
)

type Service struct {
	pricing PricingClient
	calc    fare.Calculator
	l       logger.Logger
}

func New(pricing PricingClient, calc fare.Calculator, l logger.Logger) *Service {
	return &Service{
		pricing: pricing,
		calc:    calc,
		l:       l,
	}
}

// Quote fetches the quote for q exactly once. When the fetch fails the default
// quote is returned with placeholder set, so the page can still render.
func (s *Service) Quote(ctx context.Context, q models.TripQuery) (quote models.Quote, placeholder bool) {
	ctx = wrap.WithAction(ctx, "search_quote")

	quote, err := s.pricing.FetchQuote(ctx, q)
	if err != nil {
		s.l.Error(wrap.ErrorCtx(ctx, err), "pricing fetch failed, rendering default catalog", err,
			"trip_type", q.TripType.String(),
			"pickup", q.Pickup,
			"drop", q.Drop,
			"date", q.Date,
		)
		return models.DefaultQuote(), true
	}

	if len(quote.Catalog) == 0 {
		quote.Catalog = models.DefaultCatalog()
	}

	return quote, false
}

// Search fetches a quote and builds the results page from it.
func (s *Service) Search(ctx context.Context, q models.TripQuery, sel models.Selection, filter string) models.SearchResults {
	quote, placeholder := s.Quote(ctx, q)
	tripType := types.OneWay
	if q.TripType.IsRoundTrip() {
		tripType = types.RoundTrip
	}
	metrics.RecordSearch(tripType.String(), placeholder)
	return s.Results(q, quote, sel, filter, placeholder)
}

// Placeholder builds the results shown before the pricing API has answered.
func (s *Service) Placeholder(q models.TripQuery, sel models.Selection, filter string) models.SearchResults {
	return s.Results(q, models.DefaultQuote(), sel, filter, true)
}

// Results prices every catalog entry of quote, in catalog order. Entries whose type
// is not a known category are skipped; filter limits the cards to one category.
func (s *Service) Results(q models.TripQuery, quote models.Quote, sel models.Selection, filter string, placeholder bool) models.SearchResults {
	if sel == nil {
		sel = models.DefaultSelection()
	}

	filter = strings.TrimSpace(filter)
	if filter == "" {
		filter = types.CategoryFilterAll
	}
	only, filtered := types.ParseCategory(filter)

	cards := make([]models.CabCard, 0, len(quote.Catalog))
	for _, entry := range quote.Catalog {
		category, ok := EntryCategory(entry)
		if !ok {
			continue
		}
		if filtered && category != only {
			continue
		}

		profile, _ := models.Profile(category)
		name, image := sel.Chosen(category, entry.ImageOrFallback())

		cards = append(cards, models.CabCard{
			Category:      category,
			Profile:       profile,
			Entry:         entry,
			Price:         s.calc.Price(category, quote, q.TripType),
			BaseRate:      s.calc.BaseRate(category, quote),
			SelectedModel: name,
			Image:         image,
			Rating:        entry.RatingOrDefault(),
			Reviews:       entry.ReviewsOrDefault(),
		})
	}

	return models.SearchResults{
		Query:       q,
		Quote:       quote,
		Selection:   sel,
		Filter:      filter,
		Cards:       cards,
		Placeholder: placeholder,
	}
}

// EntryCategory resolves the category a catalog entry is priced as: its type first,
// then its category label.
func EntryCategory(e models.CabEntry) (types.Category, bool) {
	if c, ok := types.ParseCategory(e.Type); ok {
		return c, true
	}
	return types.ParseCategory(e.Category)
}
