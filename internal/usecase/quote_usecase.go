package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yonubear/New-printshop/internal/domain/entities"
	"github.com/yonubear/New-printshop/internal/domain/pricing"
	"github.com/yonubear/New-printshop/internal/usecase/interfaces"
)

var (
	ErrQuoteNotFound       = errors.New("quote not found")
	ErrInvalidQuoteID      = errors.New("invalid quote id")
	ErrInvalidQuoteNumber  = errors.New("invalid quote number")
	ErrInvalidQuoteItems   = errors.New("quote needs at least one item")
	ErrInvalidCustomer     = errors.New("invalid customer")
	ErrQuoteStatusConflict = errors.New("quote status does not allow this transition")
)

const defaultQuoteValidityDays = 30

// QuoteItemInput is one requested line of a new quote.

type QuoteItemInput struct {
	Name   string
	Config entities.JobConfig
}

// QuoteInput is the payload to create a quote. Items are priced against the
// current catalog at creation time; the resulting breakdowns are frozen on
// the quote.

type QuoteInput struct {
	Customer    string
	Title       string
	Description string
	ValidDays   int
	Items       []QuoteItemInput
}

// IQuoteUseCase exposes the quote lifecycle.
//
//   - CreateQuote prices every item and persists the quote as draft.
//   - Send/Accept/Decline/Expire move the status by quote number.
//   - RecalculateByID reprices a draft against the current catalog.

type IQuoteUseCase interface {
	CreateQuote(ctx context.Context, input QuoteInput) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	GetByNumber(ctx context.Context, quoteNumber string) (entities.Quote, error)
	SendByNumber(ctx context.Context, quoteNumber string) (entities.Quote, error)
	AcceptByNumber(ctx context.Context, quoteNumber string) (entities.Quote, error)
	DeclineByNumber(ctx context.Context, quoteNumber string) (entities.Quote, error)
	ExpireByNumber(ctx context.Context, quoteNumber string) (entities.Quote, error)
	RecalculateByID(ctx context.Context, id string) (entities.Quote, error)
}

type QuoteUseCase struct {
	repo      interfaces.IQuoteRepository
	papers    interfaces.IPaperOptionRepository
	pricing   interfaces.IPrintPricingRepository
	finishing interfaces.IFinishingOptionRepository
	engine    pricing.Engine
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, papers interfaces.IPaperOptionRepository, printPricing interfaces.IPrintPricingRepository, finishing interfaces.IFinishingOptionRepository) *QuoteUseCase {
	return &QuoteUseCase{
		repo:      repo,
		papers:    papers,
		pricing:   printPricing,
		finishing: finishing,
		engine:    pricing.Engine{Strict: isStrictPricingEnabled()},
	}
}

func (u *QuoteUseCase) CreateQuote(ctx context.Context, input QuoteInput) (entities.Quote, error) {
	customer := strings.TrimSpace(input.Customer)
	if customer == "" {
		return entities.Quote{}, ErrInvalidCustomer
	}
	if len(input.Items) == 0 {
		return entities.Quote{}, ErrInvalidQuoteItems
	}
	validDays := input.ValidDays
	if validDays <= 0 {
		validDays = defaultQuoteValidityDays
	}

	items, total, err := u.priceItems(ctx, input.Items)
	if err != nil {
		return entities.Quote{}, err
	}

	now := time.Now().UTC()
	q := entities.Quote{
		ID:          uuid.NewString(),
		QuoteNumber: newQuoteNumber(now),
		Customer:    customer,
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Status:      entities.QuoteStatusDraft,
		Items:       items,
		TotalPrice:  total,
		ValidUntil:  now.AddDate(0, 0, validDays),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return u.repo.Create(ctx, q)
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) GetByNumber(ctx context.Context, quoteNumber string) (entities.Quote, error) {
	quoteNumber = strings.TrimSpace(quoteNumber)
	if quoteNumber == "" {
		return entities.Quote{}, ErrInvalidQuoteNumber
	}

	q, err := u.repo.GetByNumber(ctx, quoteNumber)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) SendByNumber(ctx context.Context, quoteNumber string) (entities.Quote, error) {
	return u.updateStatusByNumber(ctx, quoteNumber, entities.QuoteStatusSent, entities.QuoteStatusDraft)
}

func (u *QuoteUseCase) AcceptByNumber(ctx context.Context, quoteNumber string) (entities.Quote, error) {
	return u.updateStatusByNumber(ctx, quoteNumber, entities.QuoteStatusAccepted, entities.QuoteStatusDraft, entities.QuoteStatusSent)
}

func (u *QuoteUseCase) DeclineByNumber(ctx context.Context, quoteNumber string) (entities.Quote, error) {
	return u.updateStatusByNumber(ctx, quoteNumber, entities.QuoteStatusDeclined, entities.QuoteStatusDraft, entities.QuoteStatusSent)
}

func (u *QuoteUseCase) ExpireByNumber(ctx context.Context, quoteNumber string) (entities.Quote, error) {
	return u.updateStatusByNumber(ctx, quoteNumber, entities.QuoteStatusExpired, entities.QuoteStatusDraft, entities.QuoteStatusSent)
}

func (u *QuoteUseCase) updateStatusByNumber(ctx context.Context, quoteNumber string, target entities.QuoteStatus, allowedFrom ...entities.QuoteStatus) (entities.Quote, error) {
	quoteNumber = strings.TrimSpace(quoteNumber)
	if quoteNumber == "" {
		return entities.Quote{}, ErrInvalidQuoteNumber
	}

	current, err := u.repo.GetByNumber(ctx, quoteNumber)
	if err != nil {
		return entities.Quote{}, err
	}
	if current.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	allowed := false
	for _, s := range allowedFrom {
		if current.Status == s {
			allowed = true
			break
		}
	}
	if !allowed {
		return entities.Quote{}, fmt.Errorf("%w: %s -> %s", ErrQuoteStatusConflict, current.Status, target)
	}

	updated, err := u.repo.UpdateStatusByNumber(ctx, quoteNumber, target)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return updated, nil
}

// RecalculateByID reprices all items of a draft quote against the current
// catalog. Quotes that already went out keep their frozen prices.
func (u *QuoteUseCase) RecalculateByID(ctx context.Context, id string) (entities.Quote, error) {
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.Status != entities.QuoteStatusDraft {
		return entities.Quote{}, fmt.Errorf("%w: %s is not draft", ErrQuoteStatusConflict, q.Status)
	}

	inputs := make([]QuoteItemInput, 0, len(q.Items))
	for _, it := range q.Items {
		inputs = append(inputs, QuoteItemInput{Name: it.Name, Config: it.Config})
	}
	items, total, err := u.priceItems(ctx, inputs)
	if err != nil {
		return entities.Quote{}, err
	}

	updated, err := u.repo.UpdateTotalByID(ctx, q.ID, items, total)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return updated, nil
}

func (u *QuoteUseCase) priceItems(ctx context.Context, inputs []QuoteItemInput) ([]entities.QuoteItem, float64, error) {
	cat, err := loadCatalog(ctx, u.papers, u.pricing, u.finishing)
	if err != nil {
		return nil, 0, err
	}

	items := make([]entities.QuoteItem, 0, len(inputs))
	total := 0.0
	for i, in := range inputs {
		b, err := u.engine.Price(in.Config, cat)
		if err != nil {
			return nil, 0, fmt.Errorf("price item %d: %w", i+1, err)
		}
		items = append(items, entities.QuoteItem{
			Name:       strings.TrimSpace(in.Name),
			Config:     in.Config,
			UnitPrice:  b.UnitPrice,
			TotalPrice: b.TotalPrice,
			Breakdown:  b,
		})
		total += b.TotalPrice
	}
	return items, total, nil
}

// newQuoteNumber builds the human-facing quote id, e.g.
// QTE-20260901-3F2A99BC.
func newQuoteNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("QTE-%s-%s", now.Format("20060102"), suffix)
}
