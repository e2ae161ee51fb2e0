package dto

import (
	"github.com/Temutjin2k/wtl-cabs/internal/domain/models"
	"github.com/Temutjin2k/wtl-cabs/internal/domain/types"
	"github.com/Temutjin2k/wtl-cabs/pkg/validator"
)

type QuoteRequest struct {
	TripType   string            `json:"tripType" validate:"omitempty,oneof=oneWay roundTrip round-trip"`
	Pickup     string            `json:"pickup" validate:"max=255"`
	Drop       string            `json:"drop" validate:"max=255"`
	Date       string            `json:"date" validate:"max=32"`
	Time       string            `json:"time" validate:"max=32"`
	ReturnDate string            `json:"Returndate" validate:"max=32"`
	Category   string            `json:"category" validate:"omitempty,max=32"`
	Selection  map[string]string `json:"selection"`
}

func (r *QuoteRequest) Validate(v *validator.Validator) {
	v.Struct(r)

	if r.Category != "" && r.Category != types.CategoryFilterAll {
		_, ok := types.ParseCategory(r.Category)
		v.Check(ok, "category", "must be one of Hatchback, Sedan, Sedan Premium, SUV, MUV or All Cars")
	}

	for category, model := range r.Selection {
		c, ok := types.ParseCategory(category)
		if !ok {
			v.AddError("selection", "unknown category "+category)
			continue
		}
		if _, err := models.DefaultSelection().Select(c, model); err != nil {
			v.AddError("selection", err.Error())
		}
	}
}

func (r *QuoteRequest) TripQuery() models.TripQuery {
	return models.TripQuery{
		TripType:   types.TripType(r.TripType),
		Pickup:     r.Pickup,
		Drop:       r.Drop,
		Date:       r.Date,
		Time:       r.Time,
		ReturnDate: r.ReturnDate,
	}.Normalize()
}

// ToSelection applies the requested models over the default selection.
// It expects a validated request.
func (r *QuoteRequest) ToSelection() models.Selection {
	sel := models.DefaultSelection()
	for category, model := range r.Selection {
		c, _ := types.ParseCategory(category)
		if next, err := sel.Select(c, model); err == nil {
			sel = next
		}
	}
	return sel
}

type CabQuote struct {
	Category      string   `json:"category"`
	Title         string   `json:"title"`
	Subtitle      string   `json:"subtitle"`
	Price         int      `json:"price"`
	BaseRate      float64  `json:"base_rate"`
	SelectedModel string   `json:"selected_model"`
	Models        []string `json:"models,omitempty"`
	Image         string   `json:"image"`
	Features      []string `json:"features"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
}

type QuoteResponse struct {
	Query         models.TripQuery `json:"query"`
	Distance      float64          `json:"distance"`
	Days          int              `json:"days"`
	DistanceKnown bool             `json:"distance_known"`
	Placeholder   bool             `json:"placeholder"`
	Cabs          []CabQuote       `json:"cabs"`
	QuoteToken    string           `json:"quote_token,omitempty"`
}

func NewQuoteResponse(res models.SearchResults, token string) QuoteResponse {
	cabs := make([]CabQuote, 0, len(res.Cards))
	for _, c := range res.Cards {
		var names []string
		for _, o := range c.Profile.Options {
			names = append(names, o.Name)
		}
		features := c.Entry.Features
		if features == nil {
			features = []string{}
		}
		cabs = append(cabs, CabQuote{
			Category:      c.Category.String(),
			Title:         c.Profile.Title,
			Subtitle:      c.Profile.Subtitle,
			Price:         c.Price,
			BaseRate:      c.BaseRate,
			SelectedModel: c.SelectedModel,
			Models:        names,
			Image:         c.Image,
			Features:      features,
			Rating:        c.Rating,
			Reviews:       c.Reviews,
		})
	}

	return QuoteResponse{
		Query:         res.Query,
		Distance:      res.Quote.Distance,
		Days:          res.Quote.Days,
		DistanceKnown: res.Quote.DistanceKnown(),
		Placeholder:   res.Placeholder,
		Cabs:          cabs,
		QuoteToken:    token,
	}
}
