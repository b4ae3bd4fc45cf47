package entities

import "time"

// ColorType is the ink mode of a print run.

type ColorType string

const (
	ColorTypeBW    ColorType = "B/W"
	ColorTypeColor ColorType = "Color"
)

// PrintPricing is the price of applying ink to one paper category/size.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Exactly one of PricePerSide / PricePerSqft is authoritative, selected by
// PricingMethod. BasePrice is a fixed per-job setup fee charged once.

type PrintPricing struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	PaperSize     string        `json:"paper_size"`
	PaperCategory string        `json:"paper_category"`
	ColorType     ColorType     `json:"color_type"`
	PricingMethod PricingMethod `json:"pricing_method"`
	BasePrice     float64       `json:"base_price"`
	PricePerSide  float64       `json:"price_per_side"`
	CostPerSide   float64       `json:"cost_per_side"`
	PricePerSqft  float64       `json:"price_per_sqft"`
	Notes         string        `json:"notes,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
