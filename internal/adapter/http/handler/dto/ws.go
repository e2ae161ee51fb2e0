package dto

// websocket message types
const (
	MessagePlaceholder = "placeholder"
	MessageQuote       = "quote"
	MessageError       = "error"
)

type SearchMessage struct {
	Type    string         `json:"type"`
	Results *QuoteResponse `json:"results,omitempty"`
	Error   string         `json:"error,omitempty"`
}
