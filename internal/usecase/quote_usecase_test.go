package usecase

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/yonubear/New-printshop/internal/domain/entities"
	mock_interfaces "github.com/yonubear/New-printshop/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validQuoteInput() QuoteInput {
	return QuoteInput{
		Customer: "Acme Corp",
		Title:    "Flyers and booklets",
		Items: []QuoteItemInput{
			{
				Name: "Flyer",
				Config: entities.JobConfig{
					ProductType: entities.ProductTypePlain,
					Paper:       entities.PaperSelection{Size: "Letter", Category: "Bond", Weight: "20#"},
					ColorType:   entities.ColorTypeBW,
					Sides:       entities.SidesSingle,
					Quantity:    100,
				},
			},
		},
	}
}

func TestQuoteUseCase_CreateQuote(t *testing.T) {
	t.Run("invalid customer", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, nil)
		input := validQuoteInput()
		input.Customer = "   "
		_, err := uc.CreateQuote(context.Background(), input)
		if !errors.Is(err, ErrInvalidCustomer) {
			t.Fatalf("expected ErrInvalidCustomer, got %v", err)
		}
	})

	t.Run("no items", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, nil)
		input := validQuoteInput()
		input.Items = nil
		_, err := uc.CreateQuote(context.Background(), input)
		if !errors.Is(err, ErrInvalidQuoteItems) {
			t.Fatalf("expected ErrInvalidQuoteItems, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		papers, pricing, finishing := catalogMocks(ctrl)
		expectCatalog(papers, pricing, finishing)
		uc := NewQuoteUseCase(repo, papers, pricing, finishing)

		quoteNumberRe := regexp.MustCompile(`^QTE-\d{8}-[0-9A-F]{8}$`)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.ID == "" {
					t.Fatalf("expected generated id")
				}
				if !quoteNumberRe.MatchString(q.QuoteNumber) {
					t.Fatalf("unexpected quote number %q", q.QuoteNumber)
				}
				if q.Status != entities.QuoteStatusDraft {
					t.Fatalf("expected draft status, got %s", q.Status)
				}
				if len(q.Items) != 1 || q.Items[0].TotalPrice != 35.00 {
					t.Fatalf("unexpected items: %+v", q.Items)
				}
				if q.TotalPrice != 35.00 {
					t.Fatalf("expected total 35.00, got %v", q.TotalPrice)
				}
				if q.ValidUntil.Before(q.CreatedAt) {
					t.Fatalf("expected validity window")
				}
				return q, nil
			},
		)

		res, err := uc.CreateQuote(context.Background(), validQuoteInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Customer != "Acme Corp" {
			t.Fatalf("unexpected customer %q", res.Customer)
		}
	})

	t.Run("unpriceable item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		papers, pricing, finishing := catalogMocks(ctrl)
		expectCatalog(papers, pricing, finishing)
		uc := NewQuoteUseCase(repo, papers, pricing, finishing)

		input := validQuoteInput()
		input.Items[0].Config.Quantity = -1
		_, err := uc.CreateQuote(context.Background(), input)
		if err == nil {
			t.Fatalf("expected pricing error")
		}
	})
}

func TestQuoteUseCase_StatusTransitions(t *testing.T) {
	cases := []struct {
		name   string
		call   func(uc *QuoteUseCase, ctx context.Context, number string) (entities.Quote, error)
		from   entities.QuoteStatus
		target entities.QuoteStatus
	}{
		{name: "send", call: (*QuoteUseCase).SendByNumber, from: entities.QuoteStatusDraft, target: entities.QuoteStatusSent},
		{name: "accept", call: (*QuoteUseCase).AcceptByNumber, from: entities.QuoteStatusSent, target: entities.QuoteStatusAccepted},
		{name: "decline", call: (*QuoteUseCase).DeclineByNumber, from: entities.QuoteStatusSent, target: entities.QuoteStatusDeclined},
		{name: "expire", call: (*QuoteUseCase).ExpireByNumber, from: entities.QuoteStatusSent, target: entities.QuoteStatusExpired},
	}

	for _, tc := range cases {
		t.Run(tc.name+" invalid number", func(t *testing.T) {
			uc := NewQuoteUseCase(nil, nil, nil, nil)
			_, err := tc.call(uc, context.Background(), "  ")
			if !errors.Is(err, ErrInvalidQuoteNumber) {
				t.Fatalf("expected ErrInvalidQuoteNumber, got %v", err)
			}
		})

		t.Run(tc.name+" not found", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
			uc := NewQuoteUseCase(repo, nil, nil, nil)
			repo.EXPECT().GetByNumber(gomock.Any(), "QTE-1").Return(entities.Quote{}, nil)

			_, err := tc.call(uc, context.Background(), "QTE-1")
			if !errors.Is(err, ErrQuoteNotFound) {
				t.Fatalf("expected ErrQuoteNotFound, got %v", err)
			}
		})

		t.Run(tc.name+" success", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
			uc := NewQuoteUseCase(repo, nil, nil, nil)
			repo.EXPECT().GetByNumber(gomock.Any(), "QTE-1").Return(entities.Quote{ID: "q1", Status: tc.from}, nil)
			repo.EXPECT().UpdateStatusByNumber(gomock.Any(), "QTE-1", tc.target).Return(entities.Quote{ID: "q1", Status: tc.target}, nil)

			res, err := tc.call(uc, context.Background(), "QTE-1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Status != tc.target {
				t.Fatalf("expected %s, got %s", tc.target, res.Status)
			}
		})
	}

	t.Run("accept expired quote rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil, nil)
		repo.EXPECT().GetByNumber(gomock.Any(), "QTE-1").Return(entities.Quote{ID: "q1", Status: entities.QuoteStatusExpired}, nil)

		_, err := uc.AcceptByNumber(context.Background(), "QTE-1")
		if !errors.Is(err, ErrQuoteStatusConflict) {
			t.Fatalf("expected ErrQuoteStatusConflict, got %v", err)
		}
	})
}

func TestQuoteUseCase_RecalculateByID(t *testing.T) {
	t.Run("only drafts reprice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil, nil)
		repo.EXPECT().GetByID(gomock.Any(), "q1").Return(entities.Quote{ID: "q1", Status: entities.QuoteStatusAccepted}, nil)

		_, err := uc.RecalculateByID(context.Background(), "q1")
		if !errors.Is(err, ErrQuoteStatusConflict) {
			t.Fatalf("expected ErrQuoteStatusConflict, got %v", err)
		}
	})

	t.Run("reprices against current catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		papers, pricing, finishing := catalogMocks(ctrl)
		expectCatalog(papers, pricing, finishing)
		uc := NewQuoteUseCase(repo, papers, pricing, finishing)

		existing := entities.Quote{
			ID:     "q1",
			Status: entities.QuoteStatusDraft,
			Items: []entities.QuoteItem{
				{
					Name:       "Flyer",
					TotalPrice: 12.34,
					Config: entities.JobConfig{
						ProductType: entities.ProductTypePlain,
						Paper:       entities.PaperSelection{Size: "Letter", Category: "Bond", Weight: "20#"},
						ColorType:   entities.ColorTypeBW,
						Sides:       entities.SidesSingle,
						Quantity:    100,
					},
				},
			},
			TotalPrice: 12.34,
		}
		repo.EXPECT().GetByID(gomock.Any(), "q1").Return(existing, nil)
		repo.EXPECT().UpdateTotalByID(gomock.Any(), "q1", gomock.Any(), 35.00).DoAndReturn(
			func(_ context.Context, id string, items []entities.QuoteItem, total float64) (entities.Quote, error) {
				q := existing
				q.Items = items
				q.TotalPrice = total
				return q, nil
			},
		)

		res, err := uc.RecalculateByID(context.Background(), "q1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.TotalPrice != 35.00 {
			t.Fatalf("expected repriced total 35.00, got %v", res.TotalPrice)
		}
	})
}

func TestQuoteUseCase_GetByNumber(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil, nil)
		repo.EXPECT().GetByNumber(gomock.Any(), "QTE-404").Return(entities.Quote{}, nil)

		_, err := uc.GetByNumber(context.Background(), "QTE-404")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil, nil)
		repo.EXPECT().GetByNumber(gomock.Any(), "QTE-1").Return(entities.Quote{ID: "q1", QuoteNumber: "QTE-1"}, nil)

		res, err := uc.GetByNumber(context.Background(), " QTE-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "q1" {
			t.Fatalf("unexpected quote: %+v", res)
		}
	})
}
