package interfaces

import (
	"context"

	"github.com/yonubear/New-printshop/internal/domain/entities"
)

// IPrintPricingRepository abstracts DynamoDB persistence for PrintPricing.

type IPrintPricingRepository interface {
	List(ctx context.Context, filter entities.PrintPricingFilter) ([]entities.PrintPricing, error)
	GetByID(ctx context.Context, id string) (entities.PrintPricing, error)
}
