package models

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

var (
	ErrRateAbsent     = errors.New("rate absent")
	ErrRateNotNumeric = errors.New("rate is not numeric")
)

// TripInfo is the pricing API trip record: per-kilometre rates keyed by price key
// plus whatever metadata the API sends along.
type TripInfo map[string]any

// Rate returns the per-kilometre rate stored under key. Numbers and numeric
// strings are accepted.
func (t TripInfo) Rate(key string) (float64, error) {
	raw, ok := t[key]
	if !ok || raw == nil {
		return 0, ErrRateAbsent
	}

	var rate float64
	switch v := raw.(type) {
	case float64:
		rate = v
	case int:
		rate = float64(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, ErrRateNotNumeric
		}
		rate = f
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, ErrRateAbsent
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, ErrRateNotNumeric
		}
		rate = f
	default:
		return 0, ErrRateNotNumeric
	}

	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		return 0, ErrRateNotNumeric
	}
	return rate, nil
}

// Quote is the immutable result of one pricing API call.
// Zero Distance or Days means the API did not establish them.
type Quote struct {
	TripInfo TripInfo   `json:"tripinfo,omitempty"`
	Distance float64    `json:"distance,omitempty"`
	Days     int        `json:"days,omitempty"`
	Catalog  []CabEntry `json:"cabinfo"`
}

// DefaultQuote is what the page shows before, or instead of, a pricing response.
func DefaultQuote() Quote {
	return Quote{
		Catalog: DefaultCatalog(),
	}
}

func (q Quote) DistanceKnown() bool {
	return q.Distance > 0
}

// Entry finds the catalog entry for a vehicle type.
func (q Quote) Entry(typ string) (CabEntry, bool) {
	for _, e := range q.Catalog {
		if e.Type == typ {
			return e, true
		}
	}
	return CabEntry{}, false
}
