package response

import (
	"github.com/yonubear/New-printshop/internal/domain/entities"
)

type PaperOptionResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	Category      string  `json:"category"`
	Weight        string  `json:"weight"`
	Size          string  `json:"size"`
	Color         string  `json:"color"`
	PricingMethod string  `json:"pricing_method"`
	PricePerSheet float64 `json:"price_per_sheet"`
	PricePerSqft  float64 `json:"price_per_sqft"`
	Width         float64 `json:"width"`
	Height        float64 `json:"height"`
	IsRoll        bool    `json:"is_roll"`
}

func FromPaperOption(p entities.PaperOption) PaperOptionResponse {
	return PaperOptionResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Category:      p.Category,
		Weight:        p.Weight,
		Size:          p.Size,
		Color:         p.Color,
		PricingMethod: string(p.PricingMethod),
		PricePerSheet: p.PricePerSheet,
		PricePerSqft:  p.PricePerSqft,
		Width:         p.Width,
		Height:        p.Height,
		IsRoll:        p.IsRoll,
	}
}

func FromPaperOptions(opts []entities.PaperOption) []PaperOptionResponse {
	out := make([]PaperOptionResponse, 0, len(opts))
	for _, p := range opts {
		out = append(out, FromPaperOption(p))
	}
	return out
}

type PrintPricingResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	PaperSize     string  `json:"paper_size"`
	PaperCategory string  `json:"paper_category"`
	ColorType     string  `json:"color_type"`
	PricingMethod string  `json:"pricing_method"`
	BasePrice     float64 `json:"base_price"`
	PricePerSide  float64 `json:"price_per_side"`
	PricePerSqft  float64 `json:"price_per_sqft"`
	Notes         string  `json:"notes,omitempty"`
}

func FromPrintPricing(p entities.PrintPricing) PrintPricingResponse {
	return PrintPricingResponse{
		ID:            p.ID,
		Name:          p.Name,
		PaperSize:     p.PaperSize,
		PaperCategory: p.PaperCategory,
		ColorType:     string(p.ColorType),
		PricingMethod: string(p.PricingMethod),
		BasePrice:     p.BasePrice,
		PricePerSide:  p.PricePerSide,
		PricePerSqft:  p.PricePerSqft,
		Notes:         p.Notes,
	}
}

func FromPrintPricings(rows []entities.PrintPricing) []PrintPricingResponse {
	out := make([]PrintPricingResponse, 0, len(rows))
	for _, p := range rows {
		out = append(out, FromPrintPricing(p))
	}
	return out
}

type FinishingOptionResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	Category      string  `json:"category"`
	BasePrice     float64 `json:"base_price"`
	PricePerPiece float64 `json:"price_per_piece"`
	PricePerSqft  float64 `json:"price_per_sqft"`
	MinimumPrice  float64 `json:"minimum_price"`
}

func FromFinishingOption(o entities.FinishingOption) FinishingOptionResponse {
	return FinishingOptionResponse{
		ID:            o.ID,
		Name:          o.Name,
		Description:   o.Description,
		Category:      o.Category,
		BasePrice:     o.BasePrice,
		PricePerPiece: o.PricePerPiece,
		PricePerSqft:  o.PricePerSqft,
		MinimumPrice:  o.MinimumPrice,
	}
}

func FromFinishingOptions(opts []entities.FinishingOption) []FinishingOptionResponse {
	out := make([]FinishingOptionResponse, 0, len(opts))
	for _, o := range opts {
		out = append(out, FromFinishingOption(o))
	}
	return out
}
