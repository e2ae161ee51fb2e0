package models

import "github.com/Temutjin2k/wtl-cabs/internal/domain/types"

// CabCard is one priced category on the search results page.
type CabCard struct {
	Category      types.Category  `json:"category"`
	Profile       CategoryProfile `json:"profile"`
	Entry         CabEntry        `json:"entry"`
	Price         int             `json:"price"`
	BaseRate      float64         `json:"base_rate"`
	SelectedModel string          `json:"selected_model"`
	Image         string          `json:"image"`
	Rating        float64         `json:"rating"`
	Reviews       int             `json:"reviews"`
}

// SearchResults is everything the search page renders.
type SearchResults struct {
	Query     TripQuery `json:"query"`
	Quote     Quote     `json:"quote"`
	Selection Selection `json:"selection"`
	Filter    string    `json:"filter"`
	Cards     []CabCard `json:"cards"`
	// Placeholder is set when the prices come from seeded defaults
	// because the pricing API failed or has not answered yet.
	Placeholder bool `json:"placeholder"`
}
