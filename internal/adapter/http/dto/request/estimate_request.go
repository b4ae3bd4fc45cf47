package request

import (
	"github.com/yonubear/New-printshop/internal/domain/entities"
)

// PaperSelectionRequest identifies a paper stock by its catalog attributes.
type PaperSelectionRequest struct {
	Size     string `json:"size"`
	Category string `json:"category"`
	Weight   string `json:"weight"`
	Color    string `json:"color"`
}

func (r PaperSelectionRequest) ToSelection() entities.PaperSelection {
	return entities.PaperSelection{
		Size:     r.Size,
		Category: r.Category,
		Weight:   r.Weight,
		Color:    r.Color,
	}
}

// CostEstimateRequest is the job configuration payload for cost previews
// and quote items. Product-specific fields are ignored for other product
// types, matching what the storefront form submits.
type CostEstimateRequest struct {
	ProductType string                `json:"product_type"`
	Paper       PaperSelectionRequest `json:"paper"`
	ColorType   string                `json:"color_type"`
	Quantity    int                   `json:"quantity" binding:"required"`

	Sides     string   `json:"sides"`
	NUp       int      `json:"n_up"`
	Finishing []string `json:"finishing"`

	PageCount     int                   `json:"page_count"`
	SelfCover     bool                  `json:"self_cover"`
	CoverPaper    PaperSelectionRequest `json:"cover_paper"`
	Binding       string                `json:"binding"`
	CoverPrinting string                `json:"cover_printing"`

	SheetsPerPad int  `json:"sheets_per_pad"`
	Parts        int  `json:"parts"`
	BackingBoard bool `json:"backing_board"`
}

func (r CostEstimateRequest) ToJobConfig() entities.JobConfig {
	return entities.JobConfig{
		ProductType:   entities.ProductType(r.ProductType),
		Paper:         r.Paper.ToSelection(),
		ColorType:     entities.ColorType(r.ColorType),
		Quantity:      r.Quantity,
		Sides:         entities.Sides(r.Sides),
		NUp:           r.NUp,
		Finishing:     r.Finishing,
		PageCount:     r.PageCount,
		SelfCover:     r.SelfCover,
		CoverPaper:    r.CoverPaper.ToSelection(),
		Binding:       entities.BindingType(r.Binding),
		CoverPrinting: entities.CoverPrinting(r.CoverPrinting),
		SheetsPerPad:  r.SheetsPerPad,
		Parts:         r.Parts,
		BackingBoard:  r.BackingBoard,
	}
}
