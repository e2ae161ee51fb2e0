package models

// Card is a titled text block used across landing page sections.
type Card struct {
	Title string
	Body  string
}

// RouteFare is one row of the route pricing table.
type RouteFare struct {
	Route      string
	DistanceKm int
	CabType    string
	PriceINR   int
}

// CounterSpec is an animated "N+" counter.
type CounterSpec struct {
	Target int
	Label  string
	Color  string
}

// FAQ is a question and its answer.
type FAQ struct {
	Question string
	Answer   string
}

// CityPage is the content of a city landing page.
type CityPage struct {
	Slug        string
	City        string
	HeroImage   string
	Headline    string
	Title       string
	Intro       string
	Highlights  []Card
	Features    []Card
	RouteCards  []Card
	Routes      []RouteFare
	PricingNote string
	About       string
	Counters    []CounterSpec
	FAQs        []FAQ
	ContactNote string
	Phones      []string
	Website     string
}

// FAQItem is an FAQ entry as rendered, with its accordion state.
type FAQItem struct {
	FAQ
	Index int
	Open  bool
	// ToggleQuery is the ?open= value that toggles this entry.
	ToggleQuery string
	// Href toggles this entry and keeps the selected booking tab.
	Href string
}

// TabLink selects a booking-form tab and keeps the FAQ accordion state.
type TabLink struct {
	Name   string
	Href   string
	Active bool
}

// CounterView is a counter as rendered: the final value plus the animation frames
// a browser steps through once the counter scrolls into view.
type CounterView struct {
	CounterSpec
	Frames     []int
	DurationMs int64
}

// LandingPage is everything a city landing page renders.
type LandingPage struct {
	City      CityPage
	ActiveTab string
	Tabs      []string
	TabLinks  []TabLink
	Counters  []CounterView
	FAQs      []FAQItem
}
