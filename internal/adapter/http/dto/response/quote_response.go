package response

import (
	"time"

	"github.com/yonubear/New-printshop/internal/domain/entities"
)

type QuoteItemResponse struct {
	Name       string               `json:"name"`
	Config     entities.JobConfig   `json:"config"`
	UnitPrice  float64              `json:"unit_price"`
	TotalPrice float64              `json:"total_price"`
	Breakdown  CostEstimateResponse `json:"breakdown"`
}

type QuoteResponse struct {
	ID          string              `json:"id"`
	QuoteNumber string              `json:"quote_number"`
	Customer    string              `json:"customer"`
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	Status      string              `json:"status"`
	Items       []QuoteItemResponse `json:"items"`
	TotalPrice  float64             `json:"total_price"`
	ValidUntil  time.Time           `json:"valid_until"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	items := make([]QuoteItemResponse, 0, len(q.Items))
	for _, it := range q.Items {
		items = append(items, QuoteItemResponse{
			Name:       it.Name,
			Config:     it.Config,
			UnitPrice:  it.UnitPrice,
			TotalPrice: it.TotalPrice,
			Breakdown:  FromPriceBreakdown(it.Breakdown),
		})
	}
	return QuoteResponse{
		ID:          q.ID,
		QuoteNumber: q.QuoteNumber,
		Customer:    q.Customer,
		Title:       q.Title,
		Description: q.Description,
		Status:      string(q.Status),
		Items:       items,
		TotalPrice:  q.TotalPrice,
		ValidUntil:  q.ValidUntil,
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
}
