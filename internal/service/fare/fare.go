package fare

import (
	"errors"
	"fmt"
	"math"

	"github.com/Temutjin2k/wtl-cabs/internal/domain/models"
	"github.com/Temutjin2k/wtl-cabs/internal/domain/types"
)

const (
	// used for display while the pricing API has not established them
	placeholderDistanceKm = 100
	placeholderDays       = 1
)

var (
	ErrNegativePrice = errors.New("negative price")
	ErrPriceOverflow = errors.New("price out of range")
)

type Calculator interface {
	Compute(category types.Category, quote models.Quote, tripType types.TripType) (int, error)
	Price(category types.Category, quote models.Quote, tripType types.TripType) int
	BaseRate(category types.Category, quote models.Quote) float64
}

type CalculatorImpl struct{}

func New() *CalculatorImpl {
	return &CalculatorImpl{}
}

// Compute derives the display price of a category from one quote.
//
//	round trip: distance × rate × days
//	one way:    distance × rate
func (c *CalculatorImpl) Compute(category types.Category, quote models.Quote, tripType types.TripType) (int, error) {
	profile, ok := models.Profile(category)
	if !ok {
		return 0, fmt.Errorf("%w: %q", types.ErrUnknownCategory, category)
	}

	rate, err := quote.TripInfo.Rate(profile.PriceKey)
	if err != nil {
		return 0, fmt.Errorf("%s rate %q: %w", category, profile.PriceKey, err)
	}

	distance := quote.Distance
	if distance <= 0 {
		distance = placeholderDistanceKm
	}
	days := quote.Days
	if days <= 0 {
		days = placeholderDays
	}

	total := distance * rate
	if tripType.IsRoundTrip() {
		total *= float64(days)
	}

	if math.IsNaN(total) || math.IsInf(total, 0) {
		return 0, fmt.Errorf("%s: %w", category, models.ErrRateNotNumeric)
	}
	if total < 0 {
		return 0, fmt.Errorf("%s: %w", category, ErrNegativePrice)
	}
	if total >= math.MaxInt32 {
		return 0, fmt.Errorf("%s: %w", category, ErrPriceOverflow)
	}

	return int(math.Round(total)), nil
}

// Price is Compute with every failure collapsed to 0.
func (c *CalculatorImpl) Price(category types.Category, quote models.Quote, tripType types.TripType) int {
	price, err := c.Compute(category, quote, tripType)
	if err != nil {
		return 0
	}
	return price
}

// BaseRate returns the raw per-kilometre rate of a category, 0 when absent.
func (c *CalculatorImpl) BaseRate(category types.Category, quote models.Quote) float64 {
	profile, ok := models.Profile(category)
	if !ok {
		return 0
	}
	rate, err := quote.TripInfo.Rate(profile.PriceKey)
	if err != nil {
		return 0
	}
	return rate
}
