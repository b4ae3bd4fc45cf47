package interfaces

import (
	"context"

	"github.com/yonubear/New-printshop/internal/domain/entities"
)

// IFinishingOptionRepository abstracts DynamoDB persistence for
// FinishingOption.

type IFinishingOptionRepository interface {
	List(ctx context.Context, filter entities.FinishingOptionFilter) ([]entities.FinishingOption, error)
	GetByID(ctx context.Context, id string) (entities.FinishingOption, error)
}
