package entities

// FinishingOption is an optional post-print operation (cutting, folding,
// laminating, ...).
//
// Storage model (DynamoDB):
//   - PK: id
//
// Cost for a run of N pieces = max(MinimumPrice, BasePrice + PricePerPiece*N).

type FinishingOption struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	Category      string  `json:"category"`
	BasePrice     float64 `json:"base_price"`
	PricePerPiece float64 `json:"price_per_piece"`
	PricePerSqft  float64 `json:"price_per_sqft"`
	MinimumPrice  float64 `json:"minimum_price"`
}
