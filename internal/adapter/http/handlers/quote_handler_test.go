package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/yonubear/New-printshop/internal/adapter/http/handlers/mocks"
	"github.com/yonubear/New-printshop/internal/domain/entities"
	"github.com/yonubear/New-printshop/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newQuoteRouter(uc *mocks.MockIQuoteUseCase) *gin.Engine {
	h := NewQuoteHandler(uc)
	r := gin.New()
	quotes := r.Group("/v1/quotes")
	quotes.POST("", h.CreateQuote)
	quotes.GET("/:id", h.GetQuote)
	quotes.PATCH("/send", h.SendQuote)
	quotes.PATCH("/accept", h.AcceptQuote)
	quotes.PATCH("/decline", h.DeclineQuote)
	quotes.PATCH("/expire", h.ExpireQuote)
	quotes.POST("/:id/recalculate", h.RecalculateQuote)
	return r
}

func TestQuoteHandler_CreateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := newQuoteRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := newQuoteRouter(uc)

		body := `{"items":[{"name":"Flyer","config":{"product_type":"plain","quantity":100}}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := newQuoteRouter(uc)

		uc.EXPECT().CreateQuote(gomock.Any(), gomock.AssignableToTypeOf(usecase.QuoteInput{})).DoAndReturn(
			func(_ context.Context, input usecase.QuoteInput) (entities.Quote, error) {
				if input.Customer != "Acme Corp" || len(input.Items) != 1 {
					t.Fatalf("unexpected input: %+v", input)
				}
				if input.Items[0].Config.ProductType != entities.ProductTypePlain {
					t.Fatalf("unexpected item config: %+v", input.Items[0])
				}
				return entities.Quote{
					ID:          "q1",
					QuoteNumber: "QTE-20260901-AAAA1111",
					Customer:    input.Customer,
					Status:      entities.QuoteStatusDraft,
					TotalPrice:  35.00,
				}, nil
			},
		)

		body := `{
			"customer": "Acme Corp",
			"title": "Flyers",
			"items": [
				{"name": "Flyer", "config": {"product_type": "plain", "paper": {"size": "Letter", "category": "Bond", "weight": "20#"}, "color_type": "B/W", "quantity": 100}}
			]
		}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp["quote_number"] != "QTE-20260901-AAAA1111" {
			t.Fatalf("unexpected quote_number: %v", resp["quote_number"])
		}
	})
}

func TestQuoteHandler_StatusRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		path   string
		expect func(uc *mocks.MockIQuoteUseCase) *gomock.Call
		status entities.QuoteStatus
	}{
		{
			name: "send", path: "/v1/quotes/send",
			expect: func(uc *mocks.MockIQuoteUseCase) *gomock.Call {
				return uc.EXPECT().SendByNumber(gomock.Any(), "QTE-1")
			},
			status: entities.QuoteStatusSent,
		},
		{
			name: "accept", path: "/v1/quotes/accept",
			expect: func(uc *mocks.MockIQuoteUseCase) *gomock.Call {
				return uc.EXPECT().AcceptByNumber(gomock.Any(), "QTE-1")
			},
			status: entities.QuoteStatusAccepted,
		},
		{
			name: "decline", path: "/v1/quotes/decline",
			expect: func(uc *mocks.MockIQuoteUseCase) *gomock.Call {
				return uc.EXPECT().DeclineByNumber(gomock.Any(), "QTE-1")
			},
			status: entities.QuoteStatusDeclined,
		},
		{
			name: "expire", path: "/v1/quotes/expire",
			expect: func(uc *mocks.MockIQuoteUseCase) *gomock.Call {
				return uc.EXPECT().ExpireByNumber(gomock.Any(), "QTE-1")
			},
			status: entities.QuoteStatusExpired,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIQuoteUseCase(ctrl)
			r := newQuoteRouter(uc)

			tc.expect(uc).Return(entities.Quote{ID: "q1", QuoteNumber: "QTE-1", Status: tc.status}, nil)

			req := httptest.NewRequest(http.MethodPatch, tc.path, bytes.NewBufferString(`{"quote_number":"QTE-1"}`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
			}
			var resp map[string]any
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid response json: %v", err)
			}
			if resp["status"] != string(tc.status) {
				t.Fatalf("expected status %s, got %v", tc.status, resp["status"])
			}
		})
	}

	t.Run("status conflict maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := newQuoteRouter(uc)

		uc.EXPECT().AcceptByNumber(gomock.Any(), "QTE-1").Return(entities.Quote{}, usecase.ErrQuoteStatusConflict)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/accept", bytes.NewBufferString(`{"quote_number":"QTE-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_GetQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := newQuoteRouter(uc)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Quote{}, usecase.ErrQuoteNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("get by number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := newQuoteRouter(uc)

		uc.EXPECT().GetByNumber(gomock.Any(), "QTE-1").Return(entities.Quote{ID: "q1", QuoteNumber: "QTE-1"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/QTE-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_RecalculateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQuoteUseCase(ctrl)
	r := newQuoteRouter(uc)

	uc.EXPECT().RecalculateByID(gomock.Any(), "q1").Return(entities.Quote{ID: "q1", TotalPrice: 42.00}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q1/recalculate", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response json: %v", err)
	}
	if resp["total_price"] != 42.00 {
		t.Fatalf("unexpected total_price: %v", resp["total_price"])
	}
}
