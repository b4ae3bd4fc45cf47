package usecase

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/yonubear/New-printshop/internal/domain/entities"
	"github.com/yonubear/New-printshop/internal/domain/pricing"
	"github.com/yonubear/New-printshop/internal/usecase/interfaces"
)

// IEstimateUseCase exposes cost estimation over the live catalog.
//
// PreviewCostEstimate prices a job configuration without persisting
// anything; the storefront calls it on every form change.

type IEstimateUseCase interface {
	PreviewCostEstimate(ctx context.Context, cfg entities.JobConfig) (entities.PriceBreakdown, error)
}

type EstimateUseCase struct {
	papers    interfaces.IPaperOptionRepository
	pricing   interfaces.IPrintPricingRepository
	finishing interfaces.IFinishingOptionRepository
	engine    pricing.Engine
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(papers interfaces.IPaperOptionRepository, printPricing interfaces.IPrintPricingRepository, finishing interfaces.IFinishingOptionRepository) *EstimateUseCase {
	return &EstimateUseCase{
		papers:    papers,
		pricing:   printPricing,
		finishing: finishing,
		engine:    pricing.Engine{Strict: isStrictPricingEnabled()},
	}
}

func (u *EstimateUseCase) PreviewCostEstimate(ctx context.Context, cfg entities.JobConfig) (entities.PriceBreakdown, error) {
	cat, err := loadCatalog(ctx, u.papers, u.pricing, u.finishing)
	if err != nil {
		return entities.PriceBreakdown{}, err
	}
	return u.engine.Price(cfg, cat)
}

// loadCatalog pulls the full reference data set. The catalog is small
// (hundreds of rows at most) and the engine's lookup relaxation needs all
// of it, so no filter is pushed down.
func loadCatalog(ctx context.Context, papers interfaces.IPaperOptionRepository, printPricing interfaces.IPrintPricingRepository, finishing interfaces.IFinishingOptionRepository) (pricing.Catalog, error) {
	po, err := papers.List(ctx, entities.PaperOptionFilter{})
	if err != nil {
		return pricing.Catalog{}, fmt.Errorf("load paper options: %w", err)
	}
	pp, err := printPricing.List(ctx, entities.PrintPricingFilter{})
	if err != nil {
		return pricing.Catalog{}, fmt.Errorf("load print pricing: %w", err)
	}
	fo, err := finishing.List(ctx, entities.FinishingOptionFilter{})
	if err != nil {
		return pricing.Catalog{}, fmt.Errorf("load finishing options: %w", err)
	}
	return pricing.Catalog{Papers: po, Pricing: pp, Finishing: fo}, nil
}

func isStrictPricingEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PRICING_STRICT")))
	switch v {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
