package models

import (
	"time"

	"github.com/Temutjin2k/wtl-cabs/internal/domain/types"
)

// ReserveRequest is a visitor's click on "Reserve Now" for one category.
type ReserveRequest struct {
	Query     TripQuery
	Quote     Quote
	Category  types.Category
	Selection Selection
}

// Reservation is the priced selection forwarded to the invoice page.
type Reservation struct {
	Category  types.Category `json:"category"`
	ModelType string         `json:"model_type"`
	ModelName string         `json:"model_name"`
	Image     string         `json:"image"`
	Price     int            `json:"price"`
	BaseRate  float64        `json:"base_rate"`
	Query     TripQuery      `json:"query"`
	Distance  float64        `json:"distance"`
	Days      int            `json:"days"`
	Features  []string       `json:"features"`
	Rating    float64        `json:"rating"`
	Reviews   int            `json:"reviews"`
}

// Handoff is the redirect target for a reservation.
type Handoff struct {
	URL         string      `json:"invoice_url"`
	Reservation Reservation `json:"reservation"`
}

// ReservationEvent is published to the reservation exchange when a visitor
// is handed off to the invoice page.
type ReservationEvent struct {
	Category  string    `json:"category"`
	ModelName string    `json:"model_name"`
	Price     int       `json:"price"`
	TripType  string    `json:"trip_type"`
	Pickup    string    `json:"pickup"`
	Drop      string    `json:"drop"`
	Date      string    `json:"date"`
	Distance  float64   `json:"distance"`
	Days      int       `json:"days"`
	RequestID string    `json:"request_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
