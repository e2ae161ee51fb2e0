package models

import (
	"net/url"
	"strings"

	"github.com/Temutjin2k/wtl-cabs/internal/domain/types"
)

// Inbound search page parameter names.
const (
	ParamTripType   = "tripType"
	ParamPickup     = "pickup"
	ParamDrop       = "drop"
	ParamDate       = "date"
	ParamTime       = "time"
	ParamReturnDate = "Returndate"
)

// TripQuery is what the visitor searched for. It is immutable for a page's lifetime.
type TripQuery struct {
	TripType   types.TripType `json:"tripType"`
	Pickup     string         `json:"pickup"`
	Drop       string         `json:"drop"`
	Date       string         `json:"date"`
	Time       string         `json:"time"`
	ReturnDate string         `json:"Returndate"`
}

// TripQueryFromValues reads the inbound search parameters. Missing values become
// empty strings and a missing trip type becomes one way.
func TripQueryFromValues(v url.Values) TripQuery {
	return TripQuery{
		TripType:   types.ParseTripType(v.Get(ParamTripType)),
		Pickup:     strings.TrimSpace(v.Get(ParamPickup)),
		Drop:       strings.TrimSpace(v.Get(ParamDrop)),
		Date:       strings.TrimSpace(v.Get(ParamDate)),
		Time:       strings.TrimSpace(v.Get(ParamTime)),
		ReturnDate: strings.TrimSpace(v.Get(ParamReturnDate)),
	}
}

// Normalize applies the same defaults as TripQueryFromValues to a decoded query.
func (q TripQuery) Normalize() TripQuery {
	q.TripType = types.ParseTripType(q.TripType.String())
	q.Pickup = strings.TrimSpace(q.Pickup)
	q.Drop = strings.TrimSpace(q.Drop)
	q.Date = strings.TrimSpace(q.Date)
	q.Time = strings.TrimSpace(q.Time)
	q.ReturnDate = strings.TrimSpace(q.ReturnDate)
	return q
}

// SearchValues encodes the query back into search page parameters.
func (q TripQuery) SearchValues() url.Values {
	v := url.Values{}
	v.Set(ParamTripType, q.TripType.String())
	v.Set(ParamPickup, q.Pickup)
	v.Set(ParamDrop, q.Drop)
	v.Set(ParamDate, q.Date)
	v.Set(ParamTime, q.Time)
	v.Set(ParamReturnDate, q.ReturnDate)
	return v
}

// PricingForm encodes the query as the pricing API expects it.
func (q TripQuery) PricingForm() url.Values {
	tripType := q.TripType
	if tripType == "" {
		tripType = types.OneWay
	}

	v := url.Values{}
	v.Set("tripType", tripType.String())
	v.Set("pickupLocation", q.Pickup)
	v.Set("dropLocation", q.Drop)
	v.Set("date", q.Date)
	v.Set("time", q.Time)
	v.Set("Returndate", q.ReturnDate)
	return v
}
