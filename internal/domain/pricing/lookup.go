package pricing

import (
	"github.com/yonubear/New-printshop/internal/domain/entities"
)

// Catalog is the reference data a single pricing call works against. The
// caller loads it (from the API's repositories, a fixture, anywhere) before
// invoking the engine; the engine never fetches.

type Catalog struct {
	Papers    []entities.PaperOption
	Pricing   []entities.PrintPricing
	Finishing []entities.FinishingOption
}

// FindPaper matches a paper stock with progressive relaxation: exact on
// (size, category, weight, color), then dropping color, then weight, then
// matching size+category alone. The bool reports whether any level matched;
// on a miss the engine substitutes nominal default rates rather than
// failing (see Engine.Strict).
func (c Catalog) FindPaper(sel entities.PaperSelection) (entities.PaperOption, bool) {
	type matcher func(p entities.PaperOption) bool
	levels := []matcher{
		func(p entities.PaperOption) bool {
			return p.Size == sel.Size && p.Category == sel.Category &&
				p.Weight == sel.Weight && (sel.Color == "" || p.Color == sel.Color)
		},
		func(p entities.PaperOption) bool {
			return p.Size == sel.Size && p.Category == sel.Category && p.Weight == sel.Weight
		},
		func(p entities.PaperOption) bool {
			return p.Size == sel.Size && p.Category == sel.Category
		},
	}
	for _, match := range levels {
		for _, p := range c.Papers {
			if match(p) {
				return p, true
			}
		}
	}
	return entities.PaperOption{}, false
}

// FindPrintPricing matches on (color type, paper category), relaxing to
// color type alone and finally to the first record available.
func (c Catalog) FindPrintPricing(color entities.ColorType, paperCategory string) (entities.PrintPricing, bool) {
	for _, pr := range c.Pricing {
		if pr.ColorType == color && pr.PaperCategory == paperCategory {
			return pr, true
		}
	}
	for _, pr := range c.Pricing {
		if pr.ColorType == color {
			return pr, true
		}
	}
	if len(c.Pricing) > 0 {
		return c.Pricing[0], true
	}
	return entities.PrintPricing{}, false
}

// SelectFinishing resolves the selected finishing options by id or name.
// Unknown selections are skipped; the shop adds options to the catalog
// faster than old quote forms are retired.
func (c Catalog) SelectFinishing(selected []string) []entities.FinishingOption {
	out := make([]entities.FinishingOption, 0, len(selected))
	for _, key := range selected {
		for _, opt := range c.Finishing {
			if opt.ID == key || opt.Name == key {
				out = append(out, opt)
				break
			}
		}
	}
	return out
}
