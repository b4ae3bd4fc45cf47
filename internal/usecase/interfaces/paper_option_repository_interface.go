package interfaces

import (
	"context"

	"github.com/yonubear/New-printshop/internal/domain/entities"
)

// IPaperOptionRepository abstracts DynamoDB persistence for PaperOption.
//
// The catalog is reference data: the API lists and filters it, the pricing
// engine consumes it in bulk. Rows are seeded out of band (template upload,
// ops scripts), so there is no write path here.

type IPaperOptionRepository interface {
	List(ctx context.Context, filter entities.PaperOptionFilter) ([]entities.PaperOption, error)
	GetByID(ctx context.Context, id string) (entities.PaperOption, error)
}
