package entities

// PricingMethod selects how a paper stock (or print run) is priced:
// per cut sheet or per square foot (roll media).

type PricingMethod string

const (
	PricingMethodSheet PricingMethod = "sheet"
	PricingMethodSqft  PricingMethod = "sqft"
)

// PaperOption is one physical paper stock in the catalog.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Width/Height are inches and are required when PricingMethod is sqft;
// sheet-priced stocks may leave them zero.

type PaperOption struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Description   string        `json:"description,omitempty"`
	Category      string        `json:"category"`
	Weight        string        `json:"weight"`
	Size          string        `json:"size"`
	Color         string        `json:"color"`
	PricingMethod PricingMethod `json:"pricing_method"`
	PricePerSheet float64       `json:"price_per_sheet"`
	PricePerSqft  float64       `json:"price_per_sqft"`
	CostPerSheet  float64       `json:"cost_per_sheet"`
	CostPerSqft   float64       `json:"cost_per_sqft"`
	Width         float64       `json:"width"`
	Height        float64       `json:"height"`
	IsRoll        bool          `json:"is_roll"`
}

// Sqft returns the sheet area in square feet.
func (p PaperOption) Sqft() float64 {
	return p.Width * p.Height / 144.0
}
