package search

import (
	"context"
	"errors"
	"testing"

	"github.com/Temutjin2k/wtl-cabs/internal/domain/models"
	"github.com/Temutjin2k/wtl-cabs/internal/domain/types"
	"github.com/Temutjin2k/wtl-cabs/internal/service/fare"
	"github.com/Temutjin2k/wtl-cabs/pkg/logger"
)

type stubPricing struct {
	quote models.Quote
	err   error
	calls int
}

func (s *stubPricing) FetchQuote(ctx context.Context, q models.TripQuery) (models.Quote, error) {
	s.calls++
	return s.quote, s.err
}

func pricedQuote() models.Quote {
	q := models.DefaultQuote()
	q.TripInfo = models.TripInfo{"hatchback": 10.0, "sedan": 12.0, "sedanpremium": 14.0, "suv": 16.0, "suvplus": 20.0}
	q.Distance = 300
	q.Days = 2
	return q
}

func TestSearch_NetworkErrorRendersDefaults(t *testing.T) {
	pricing := &stubPricing{err: errors.New("dial tcp: connection refused")}
	s := New(pricing, fare.New(), logger.Nop())

	res := s.Search(context.Background(), models.TripQuery{TripType: types.OneWay}, nil, "")

	if pricing.calls != 1 {
		t.Fatalf("expected exactly one fetch, got %d", pricing.calls)
	}
	if !res.Placeholder {
		t.Fatal("expected placeholder results")
	}
	if len(res.Cards) != 5 {
		t.Fatalf("expected 5 default cards, got %d", len(res.Cards))
	}

	seeded := models.DefaultCatalog()
	for i, card := range res.Cards {
		if card.Entry.Type != seeded[i].Type {
			t.Fatalf("card %d: expected %s, got %s", i, seeded[i].Type, card.Entry.Type)
		}
		if card.Rating != seeded[i].Rating || card.Reviews != seeded[i].Reviews {
			t.Fatalf("card %d: seeded rating/reviews lost: %+v", i, card)
		}
		if len(card.Entry.Features) == 0 {
			t.Fatalf("card %d: seeded features lost", i)
		}
		if card.Price != 0 {
			t.Fatalf("card %d: expected 0 price without rates, got %d", i, card.Price)
		}
	}
}

func TestSearch_PricesFromOneQuote(t *testing.T) {
	s := New(&stubPricing{quote: pricedQuote()}, fare.New(), logger.Nop())

	res := s.Search(context.Background(), models.TripQuery{TripType: types.RoundTrip}, nil, "")

	want := map[types.Category]int{
		types.Hatchback:    6000,
		types.Sedan:        7200,
		types.SedanPremium: 8400,
		types.SUV:          9600,
		types.MUV:          12000,
	}
	for _, card := range res.Cards {
		if card.Price != want[card.Category] {
			t.Fatalf("%s: expected %d, got %d", card.Category, want[card.Category], card.Price)
		}
	}
	if res.Placeholder {
		t.Fatal("priced results must not be placeholders")
	}
}

func TestResults_SelectionDoesNotChangeOtherCategories(t *testing.T) {
	s := New(&stubPricing{}, fare.New(), logger.Nop())
	quote := pricedQuote()
	q := models.TripQuery{TripType: types.OneWay}

	before := s.Results(q, quote, models.DefaultSelection(), "", false)

	sel, err := models.DefaultSelection().Select(types.Sedan, "Honda Amaze")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	after := s.Results(q, quote, sel, "", false)

	for i := range before.Cards {
		b, a := before.Cards[i], after.Cards[i]
		if b.Price != a.Price {
			t.Fatalf("%s: selection changed price %d -> %d", b.Category, b.Price, a.Price)
		}
		if b.Category == types.Sedan {
			if a.SelectedModel != "Honda Amaze" || a.Image != "/images/amaze.jpg" {
				t.Fatalf("sedan selection not applied: %+v", a)
			}
			continue
		}
		if b.SelectedModel != a.SelectedModel || b.Image != a.Image {
			t.Fatalf("%s: selection leaked from sedan", b.Category)
		}
	}
}

func TestResults_FilterAndUnknownEntries(t *testing.T) {
	s := New(&stubPricing{}, fare.New(), logger.Nop())
	quote := pricedQuote()
	quote.Catalog = append(quote.Catalog, models.CabEntry{Type: "Tempo Traveller"})

	all := s.Results(models.TripQuery{}, quote, nil, types.CategoryFilterAll, false)
	if len(all.Cards) != 5 {
		t.Fatalf("unknown entry must be skipped, got %d cards", len(all.Cards))
	}

	suv := s.Results(models.TripQuery{}, quote, nil, "SUV", false)
	if len(suv.Cards) != 1 || suv.Cards[0].Category != types.SUV {
		t.Fatalf("unexpected filtered cards %+v", suv.Cards)
	}
}

func TestResults_MUVUsesTitleAndCatalogImage(t *testing.T) {
	s := New(&stubPricing{}, fare.New(), logger.Nop())
	res := s.Results(models.TripQuery{}, models.DefaultQuote(), nil, "MUV", true)

	if len(res.Cards) != 1 {
		t.Fatalf("expected one card, got %d", len(res.Cards))
	}
	if res.Cards[0].SelectedModel != "MUV" || res.Cards[0].Image != "/images/innova.jpg" {
		t.Fatalf("unexpected MUV card %+v", res.Cards[0])
	}
}
