package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/yonubear/New-printshop/internal/domain/entities"
	"github.com/yonubear/New-printshop/internal/usecase/interfaces"
)

// ICatalogUseCase exposes the pricing reference data to the API: list and
// filter the three catalog tables, and export them as an xlsx workbook the
// shop fills in and re-imports.

type ICatalogUseCase interface {
	ListPaperOptions(ctx context.Context, filter entities.PaperOptionFilter) ([]entities.PaperOption, error)
	ListPrintPricing(ctx context.Context, filter entities.PrintPricingFilter) ([]entities.PrintPricing, error)
	ListFinishingOptions(ctx context.Context, filter entities.FinishingOptionFilter) ([]entities.FinishingOption, error)
	ListFinishingCategories(ctx context.Context) ([]string, error)
	BuildTemplate(ctx context.Context) ([]byte, error)
}

type CatalogUseCase struct {
	papers    interfaces.IPaperOptionRepository
	pricing   interfaces.IPrintPricingRepository
	finishing interfaces.IFinishingOptionRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(papers interfaces.IPaperOptionRepository, printPricing interfaces.IPrintPricingRepository, finishing interfaces.IFinishingOptionRepository) *CatalogUseCase {
	return &CatalogUseCase{papers: papers, pricing: printPricing, finishing: finishing}
}

func (u *CatalogUseCase) ListPaperOptions(ctx context.Context, filter entities.PaperOptionFilter) ([]entities.PaperOption, error) {
	return u.papers.List(ctx, filter)
}

func (u *CatalogUseCase) ListPrintPricing(ctx context.Context, filter entities.PrintPricingFilter) ([]entities.PrintPricing, error) {
	return u.pricing.List(ctx, filter)
}

func (u *CatalogUseCase) ListFinishingOptions(ctx context.Context, filter entities.FinishingOptionFilter) ([]entities.FinishingOption, error) {
	return u.finishing.List(ctx, filter)
}

func (u *CatalogUseCase) ListFinishingCategories(ctx context.Context) ([]string, error) {
	opts, err := u.finishing.List(ctx, entities.FinishingOptionFilter{})
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	categories := []string{}
	for _, opt := range opts {
		if opt.Category == "" || seen[opt.Category] {
			continue
		}
		seen[opt.Category] = true
		categories = append(categories, opt.Category)
	}
	sort.Strings(categories)
	return categories, nil
}

// BuildTemplate renders the current catalog into a three-sheet xlsx
// workbook. Each sheet carries a header row plus the live rows, so the
// export doubles as a backup and as a starting point for bulk edits.
func (u *CatalogUseCase) BuildTemplate(ctx context.Context) ([]byte, error) {
	po, err := u.papers.List(ctx, entities.PaperOptionFilter{})
	if err != nil {
		return nil, fmt.Errorf("load paper options: %w", err)
	}
	pp, err := u.pricing.List(ctx, entities.PrintPricingFilter{})
	if err != nil {
		return nil, fmt.Errorf("load print pricing: %w", err)
	}
	fo, err := u.finishing.List(ctx, entities.FinishingOptionFilter{})
	if err != nil {
		return nil, fmt.Errorf("load finishing options: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#4472C4"}},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	if err := f.SetSheetName(f.GetSheetName(0), "Paper Options"); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	paperHeaders := []string{"Name", "Description", "Category", "Weight", "Size", "Color", "Pricing Method", "Price Per Sheet", "Price Per Sqft", "Cost Per Sheet", "Cost Per Sqft", "Width (in)", "Height (in)", "Is Roll"}
	writeHeaderRow(f, "Paper Options", paperHeaders, headerStyle)
	for i, p := range po {
		row := i + 2
		setRow(f, "Paper Options", row,
			p.Name, p.Description, p.Category, p.Weight, p.Size, p.Color,
			string(p.PricingMethod), p.PricePerSheet, p.PricePerSqft,
			p.CostPerSheet, p.CostPerSqft, p.Width, p.Height, p.IsRoll)
	}

	if _, err := f.NewSheet("Print Pricing"); err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	pricingHeaders := []string{"Name", "Paper Size", "Paper Category", "Color Type", "Pricing Method", "Base Price", "Price Per Side", "Cost Per Side", "Price Per Sqft", "Notes"}
	writeHeaderRow(f, "Print Pricing", pricingHeaders, headerStyle)
	for i, p := range pp {
		row := i + 2
		setRow(f, "Print Pricing", row,
			p.Name, p.PaperSize, p.PaperCategory, string(p.ColorType),
			string(p.PricingMethod), p.BasePrice, p.PricePerSide,
			p.CostPerSide, p.PricePerSqft, p.Notes)
	}

	if _, err := f.NewSheet("Finishing Options"); err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	finishingHeaders := []string{"Name", "Description", "Category", "Base Price", "Price Per Piece", "Price Per Sqft", "Minimum Price"}
	writeHeaderRow(f, "Finishing Options", finishingHeaders, headerStyle)
	for i, opt := range fo {
		row := i + 2
		setRow(f, "Finishing Options", row,
			opt.Name, opt.Description, opt.Category, opt.BasePrice,
			opt.PricePerPiece, opt.PricePerSqft, opt.MinimumPrice)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeHeaderRow(f *excelize.File, sheet string, headers []string, style int) {
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheet, col, col, 18)
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	f.SetCellStyle(sheet, "A1", last, style)
}

func setRow(f *excelize.File, sheet string, row int, values ...any) {
	for i, v := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		f.SetCellValue(sheet, cell, v)
	}
}
