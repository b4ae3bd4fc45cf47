package pricing

import (
	"errors"
	"fmt"
	"math"

	"github.com/yonubear/New-printshop/internal/domain/entities"
)

// ErrReferenceDataMiss is returned in strict mode when a catalog lookup
// finds nothing even at the loosest relaxation level.
var ErrReferenceDataMiss = errors.New("no matching reference data")

// ValidationError reports a structurally invalid JobConfig. It is a caller
// error, never retried.

type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// Nominal rates substituted when a catalog lookup misses. Lenient fallback
// is the contractual behavior, not a defect: an incomplete catalog yields a
// ballpark price and the breakdown reports which defaults were applied.
const (
	defaultPaperSheetPrice = 0.10
	defaultPrintBasePrice  = 0.10
	defaultPrintSidePrice  = 0.15
)

// Price floors per product type.
const (
	minPlainUnitPrice   = 0.25
	minBookletUnitPrice = 1.00
	minNotepadUnitPrice = 1.50
)

// Duplex paper factor. Not 2.0: double-sided jobs reuse the sheet, the
// surcharge covers handling and spoilage.
const duplexPaperFactor = 1.8

// Engine computes price breakdowns for print jobs. It is stateless and
// side-effect free; the zero value is ready to use. With Strict set,
// reference-data misses become ErrReferenceDataMiss instead of nominal
// default rates.

type Engine struct {
	Strict bool
}

// Price computes the PriceBreakdown for one job against the given catalog.
// Identical inputs always produce identical output.
func (e Engine) Price(cfg entities.JobConfig, cat Catalog) (entities.PriceBreakdown, error) {
	if cfg.Quantity <= 0 {
		return entities.PriceBreakdown{}, validationErrorf("quantity must be positive, got %d", cfg.Quantity)
	}

	switch cfg.ProductType {
	case entities.ProductTypePlain, "":
		return e.pricePlain(cfg, cat)
	case entities.ProductTypeBooklet:
		return e.priceBooklet(cfg, cat)
	case entities.ProductTypeNotepad:
		return e.priceNotepad(cfg, cat)
	default:
		return entities.PriceBreakdown{}, validationErrorf("unknown product type %q", cfg.ProductType)
	}
}

func (e Engine) pricePlain(cfg entities.JobConfig, cat Catalog) (entities.PriceBreakdown, error) {
	nUp := cfg.NUp
	if nUp == 0 {
		nUp = 1
	}
	if nUp < 1 {
		return entities.PriceBreakdown{}, validationErrorf("n-up must be positive, got %d", cfg.NUp)
	}
	sides := cfg.Sides
	if sides == "" {
		sides = entities.SidesSingle
	}

	var defaults []string
	paper, defaults, err := e.resolvePaper(cfg.Paper, cat, defaults)
	if err != nil {
		return entities.PriceBreakdown{}, err
	}
	pricing, defaults, err := e.resolvePricing(cfg.ColorType, cfg.Paper.Category, cat, defaults)
	if err != nil {
		return entities.PriceBreakdown{}, err
	}

	b := entities.PriceBreakdown{
		PaperCost:     paperUnitCost(paper, sides),
		PrintingCost:  printingUnitCost(pricing, paper, sides, nUp),
		FinishingCost: finishingUnitCost(cat.SelectFinishing(cfg.Finishing), cfg.Quantity),
		Quantity:      cfg.Quantity,
		DefaultsUsed:  defaults,
	}
	b.UnitPrice = math.Max(b.PaperCost+b.PrintingCost+b.FinishingCost, minPlainUnitPrice)
	b.TotalPrice = round2(b.UnitPrice * float64(cfg.Quantity))
	return b, nil
}

func (e Engine) priceBooklet(cfg entities.JobConfig, cat Catalog) (entities.PriceBreakdown, error) {
	if cfg.PageCount < 4 || cfg.PageCount%4 != 0 {
		return entities.PriceBreakdown{}, validationErrorf("page count must be a positive multiple of 4, minimum 4, got %d", cfg.PageCount)
	}
	sheets := cfg.PageCount / 4

	var defaults []string
	inside, defaults, err := e.resolvePaper(cfg.Paper, cat, defaults)
	if err != nil {
		return entities.PriceBreakdown{}, err
	}
	pricing, defaults, err := e.resolvePricing(cfg.ColorType, cfg.Paper.Category, cat, defaults)
	if err != nil {
		return entities.PriceBreakdown{}, err
	}

	// Interior: every sheet carries 4 booklet pages and is always duplexed.
	paperCost := paperUnitCost(inside, entities.SidesSingle) * float64(sheets)
	printCost := printingUnitCost(pricing, inside, entities.SidesDouble, 1) * float64(sheets)

	if !cfg.SelfCover {
		cover, coverDefaults, err := e.resolvePaper(cfg.CoverPaper, cat, nil)
		if err != nil {
			return entities.PriceBreakdown{}, err
		}
		coverColor := coverInkColor(cfg.CoverPrinting)
		coverPricing, coverDefaults, err := e.resolvePricing(coverColor, cfg.CoverPaper.Category, cat, coverDefaults)
		if err != nil {
			return entities.PriceBreakdown{}, err
		}
		for _, d := range coverDefaults {
			defaults = append(defaults, "cover "+d)
		}
		paperCost += paperUnitCost(cover, entities.SidesSingle)
		printCost += printingUnitCost(coverPricing, cover, entities.SidesSingle, 1) * coverPrintingMultiplier(cfg.CoverPrinting)
	}

	b := entities.PriceBreakdown{
		PaperCost:    paperCost,
		PrintingCost: printCost,
		BindingCost:  bindingUnitCost(cfg.Binding, sheets, cfg.PageCount),
		Quantity:     cfg.Quantity,
		DefaultsUsed: defaults,
	}
	b.UnitPrice = math.Max(b.PaperCost+b.PrintingCost+b.BindingCost, minBookletUnitPrice)
	b.TotalPrice = round2(b.UnitPrice * float64(cfg.Quantity))
	return b, nil
}

func (e Engine) priceNotepad(cfg entities.JobConfig, cat Catalog) (entities.PriceBreakdown, error) {
	if cfg.SheetsPerPad <= 0 {
		return entities.PriceBreakdown{}, validationErrorf("sheets per pad must be positive, got %d", cfg.SheetsPerPad)
	}
	parts := cfg.Parts
	if parts == 0 {
		parts = 1
	}
	if parts < 1 {
		return entities.PriceBreakdown{}, validationErrorf("parts must be positive, got %d", cfg.Parts)
	}
	sheets := float64(cfg.SheetsPerPad)

	var defaults []string
	paper, defaults, err := e.resolvePaper(cfg.Paper, cat, defaults)
	if err != nil {
		return entities.PriceBreakdown{}, err
	}
	pricing, defaults, err := e.resolvePricing(cfg.ColorType, cfg.Paper.Category, cat, defaults)
	if err != nil {
		return entities.PriceBreakdown{}, err
	}

	// Notepads print one side only.
	paperCost := paperUnitCost(paper, entities.SidesSingle) * sheets
	printCost := printingUnitCost(pricing, paper, entities.SidesSingle, 1) * sheets

	// NCR multi-part pads duplicate the whole pad per part, plus carbonless
	// interleaving between parts.
	if parts > 1 {
		paperCost *= float64(parts)
		printCost *= float64(parts)
		paperCost += float64(parts-1) * 0.01 * sheets
	}

	if cfg.BackingBoard {
		paperCost += 0.25
	}

	// Padding compound scales stepwise with pad thickness.
	padding := 0.50 + 0.25*math.Ceil(math.Max(0, sheets-50)/50)

	b := entities.PriceBreakdown{
		PaperCost:     paperCost,
		PrintingCost:  printCost,
		FinishingCost: padding,
		Quantity:      cfg.Quantity,
		DefaultsUsed:  defaults,
	}
	b.UnitPrice = math.Max(b.PaperCost+b.PrintingCost+b.FinishingCost, minNotepadUnitPrice)
	b.TotalPrice = round2(b.UnitPrice * float64(cfg.Quantity))
	return b, nil
}

func (e Engine) resolvePaper(sel entities.PaperSelection, cat Catalog, defaults []string) (entities.PaperOption, []string, error) {
	if paper, ok := cat.FindPaper(sel); ok {
		return paper, defaults, nil
	}
	if e.Strict {
		return entities.PaperOption{}, nil, fmt.Errorf("paper option %s/%s/%s: %w", sel.Size, sel.Category, sel.Weight, ErrReferenceDataMiss)
	}
	defaults = append(defaults, fmt.Sprintf("paper $%.2f/sheet", defaultPaperSheetPrice))
	return entities.PaperOption{
		PricingMethod: entities.PricingMethodSheet,
		PricePerSheet: defaultPaperSheetPrice,
	}, defaults, nil
}

func (e Engine) resolvePricing(color entities.ColorType, paperCategory string, cat Catalog, defaults []string) (entities.PrintPricing, []string, error) {
	if pricing, ok := cat.FindPrintPricing(color, paperCategory); ok {
		return pricing, defaults, nil
	}
	if e.Strict {
		return entities.PrintPricing{}, nil, fmt.Errorf("print pricing %s/%s: %w", color, paperCategory, ErrReferenceDataMiss)
	}
	defaults = append(defaults, fmt.Sprintf("printing $%.2f + $%.2f/side", defaultPrintBasePrice, defaultPrintSidePrice))
	return entities.PrintPricing{
		PricingMethod: entities.PricingMethodSheet,
		BasePrice:     defaultPrintBasePrice,
		PricePerSide:  defaultPrintSidePrice,
	}, defaults, nil
}

// paperUnitCost prices one sheet of the given stock. Square-foot stocks are
// priced by area; double-sided use multiplies by the duplex factor.
func paperUnitCost(paper entities.PaperOption, sides entities.Sides) float64 {
	cost := paper.PricePerSheet
	if paper.PricingMethod == entities.PricingMethodSqft {
		cost = paper.PricePerSqft * paper.Sqft()
	}
	if sides == entities.SidesDouble {
		cost *= duplexPaperFactor
	}
	return cost
}

// printingUnitCost prices the ink for one sheet: the setup fee plus the
// per-side (or per-area) rate for each printed side. Multi-up printing
// saves material but not labor, so only half the cost divides by n.
func printingUnitCost(pricing entities.PrintPricing, paper entities.PaperOption, sides entities.Sides, nUp int) float64 {
	numSides := 1.0
	if sides == entities.SidesDouble {
		numSides = 2.0
	}

	perSide := pricing.PricePerSide
	if pricing.PricingMethod == entities.PricingMethodSqft {
		perSide = pricing.PricePerSqft * paper.Sqft()
	}

	cost := pricing.BasePrice + perSide*numSides
	if nUp > 1 {
		half := cost / 2
		cost = half + half/float64(nUp)
	}
	return cost
}

// finishingUnitCost prices the selected finishing operations for a run of
// quantity pieces and spreads the run cost across units. Callers re-multiply
// by quantity for totals; keeping the division here preserves the exact
// round-trip the rest of the shop's numbers are reconciled against.
func finishingUnitCost(selected []entities.FinishingOption, quantity int) float64 {
	if quantity <= 0 {
		return 0
	}
	total := 0.0
	for _, opt := range selected {
		cost := opt.BasePrice + opt.PricePerPiece*float64(quantity)
		total += math.Max(cost, opt.MinimumPrice)
	}
	return total / float64(quantity)
}

// bindingUnitCost prices the binding of one booklet. Saddle stitching adds
// per-signature handling past the first; coil steps up for thick page
// counts; perfect binding scales with spine thickness.
func bindingUnitCost(binding entities.BindingType, sheets, pages int) float64 {
	switch binding {
	case entities.BindingSaddleStitch:
		signatures := math.Ceil(float64(sheets) / 5)
		return 1.00 + 0.50*math.Max(0, signatures-1)
	case entities.BindingPerfectBound:
		return 5.00 + 0.10*float64(sheets)
	case entities.BindingCoil:
		return 2.50 + 0.75*math.Ceil(math.Max(0, float64(pages-60))/30)
	case entities.BindingWireO:
		return 2.75
	case entities.BindingStaple:
		return 0.50
	default:
		return 1.00
	}
}

// coverPrintingMultiplier scales a single-side print cost to the cover ink
// configuration: 4/4 is both sides full color, 4/1 adds a one-color back.
func coverPrintingMultiplier(mode entities.CoverPrinting) float64 {
	switch mode {
	case entities.CoverPrinting44:
		return 2.0
	case entities.CoverPrinting41:
		return 1.5
	default:
		return 1.0
	}
}

func coverInkColor(mode entities.CoverPrinting) entities.ColorType {
	if mode == entities.CoverPrinting11 {
		return entities.ColorTypeBW
	}
	return entities.ColorTypeColor
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
