package response

import (
	"github.com/yonubear/New-printshop/internal/domain/entities"
)

// CostEstimateResponse is the priced breakdown returned by the preview
// endpoint. Component costs are per unit; total_price is rounded to cents.

type CostEstimateResponse struct {
	PaperCost     float64  `json:"paper_cost"`
	PrintingCost  float64  `json:"printing_cost"`
	FinishingCost float64  `json:"finishing_cost"`
	BindingCost   float64  `json:"binding_cost"`
	UnitPrice     float64  `json:"unit_price"`
	Quantity      int      `json:"quantity"`
	TotalPrice    float64  `json:"total_price"`
	DefaultsUsed  []string `json:"defaults_used,omitempty"`
}

func FromPriceBreakdown(b entities.PriceBreakdown) CostEstimateResponse {
	return CostEstimateResponse{
		PaperCost:     b.PaperCost,
		PrintingCost:  b.PrintingCost,
		FinishingCost: b.FinishingCost,
		BindingCost:   b.BindingCost,
		UnitPrice:     b.UnitPrice,
		Quantity:      b.Quantity,
		TotalPrice:    b.TotalPrice,
		DefaultsUsed:  b.DefaultsUsed,
	}
}
