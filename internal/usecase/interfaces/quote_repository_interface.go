package interfaces

import (
	"context"

	"github.com/yonubear/New-printshop/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// Status transitions address quotes by their human-facing quote number
// (the id customers quote back over the phone); everything else uses the
// primary key.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	GetByNumber(ctx context.Context, quoteNumber string) (entities.Quote, error)
	UpdateStatusByNumber(ctx context.Context, quoteNumber string, status entities.QuoteStatus) (entities.Quote, error)
	UpdateTotalByID(ctx context.Context, id string, items []entities.QuoteItem, total float64) (entities.Quote, error)
}
