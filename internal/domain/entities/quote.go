package entities

import "time"

// QuoteStatus represents the lifecycle of a customer quote.
//
// Domain notes:
//   - A quote is priced at creation time from the catalog; accepting or
//     declining never reprices it.
//   - Expired quotes can no longer be accepted or paid.

type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "draft"
	QuoteStatusSent     QuoteStatus = "sent"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusDeclined QuoteStatus = "declined"
	QuoteStatusExpired  QuoteStatus = "expired"
)

// QuoteItem is one priced line of a quote: the job configuration the
// customer asked for plus the breakdown the pricing engine produced for it.

type QuoteItem struct {
	Name       string         `json:"name"`
	Config     JobConfig      `json:"config"`
	UnitPrice  float64        `json:"unit_price"`
	TotalPrice float64        `json:"total_price"`
	Breakdown  PriceBreakdown `json:"breakdown"`
}

// Quote is a customer quote persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (quote_number-index): quote_number

type Quote struct {
	ID          string      `json:"id"`
	QuoteNumber string      `json:"quote_number"`
	Customer    string      `json:"customer"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Status      QuoteStatus `json:"status"`
	Items       []QuoteItem `json:"items"`
	TotalPrice  float64     `json:"total_price"`
	ValidUntil  time.Time   `json:"valid_until"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
