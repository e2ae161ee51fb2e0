package types

import "strings"

type ServiceMode string

// Site Service - serves city landing pages, cab search results and the reservation hand-off
const (
	SiteService ServiceMode = "site"
)

// TripType decides which fare formula applies
type TripType string

func (t TripType) String() string {
	return string(t)
}

const (
	OneWay    TripType = "oneWay"
	RoundTrip TripType = "roundTrip"
)

// ParseTripType normalises the inbound tripType parameter. Empty means one way,
// "round-trip" is accepted as an alias of roundTrip, anything else is passed through.
func ParseTripType(s string) TripType {
	switch strings.TrimSpace(s) {
	case "":
		return OneWay
	case "roundTrip", "round-trip":
		return RoundTrip
	default:
		return TripType(strings.TrimSpace(s))
	}
}

func (t TripType) IsRoundTrip() bool {
	return t == RoundTrip
}

// Enum для категорий автомобилей
type Category string

func (c Category) String() string {
	return string(c)
}

const (
	Hatchback    Category = "Hatchback"
	Sedan        Category = "Sedan"
	SedanPremium Category = "Sedan Premium"
	SUV          Category = "SUV"
	MUV          Category = "MUV"
)

// AllCategories keeps display order.
var AllCategories = []Category{Hatchback, Sedan, SedanPremium, SUV, MUV}

// ParseCategory matches a category by its display name, case-insensitively.
func ParseCategory(s string) (Category, bool) {
	s = strings.TrimSpace(s)
	for _, c := range AllCategories {
		if strings.EqualFold(string(c), s) {
			return c, true
		}
	}
	return "", false
}

// CategoryFilterAll shows every category on the search page
const CategoryFilterAll = "All Cars"

// BookingTab is a booking-form widget tab on landing pages
type BookingTab string

const (
	TabCabs      BookingTab = "cabs"
	TabBuses     BookingTab = "buses"
	TabFlights   BookingTab = "flights"
	TabHotels    BookingTab = "hotels"
	TabHomestays BookingTab = "homestays"
	TabHoliday   BookingTab = "holiday"
)

var BookingTabs = []BookingTab{TabCabs, TabBuses, TabFlights, TabHotels, TabHomestays, TabHoliday}

// ParseBookingTab falls back to cabs for unknown tabs.
func ParseBookingTab(s string) BookingTab {
	for _, t := range BookingTabs {
		if string(t) == s {
			return t
		}
	}
	return TabCabs
}
