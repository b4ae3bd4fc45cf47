package request

// QuoteItemRequest is one requested line of a new quote.
type QuoteItemRequest struct {
	Name   string              `json:"name"`
	Config CostEstimateRequest `json:"config" binding:"required"`
}

// QuoteCreateRequest is the payload for quote creation. Prices are never
// accepted from the caller; every item is priced server-side.
type QuoteCreateRequest struct {
	Customer    string             `json:"customer" binding:"required"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	ValidDays   int                `json:"valid_days"`
	Items       []QuoteItemRequest `json:"items" binding:"required"`
}

// QuoteStatusRequest addresses a quote by its human-facing number for
// status transitions.
type QuoteStatusRequest struct {
	QuoteNumber string `json:"quote_number" binding:"required"`
}
