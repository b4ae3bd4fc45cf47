package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/yonubear/New-printshop/internal/adapter/http/handlers/mocks"
	"github.com/yonubear/New-printshop/internal/domain/entities"
	"github.com/yonubear/New-printshop/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newPaymentRouter(uc *mocks.MockIQuotePaymentUseCase) *gin.Engine {
	h := NewQuotePaymentHandler(uc)
	r := gin.New()
	payments := r.Group("/v1/payments")
	payments.POST("/:quote_id", h.CreatePaymentByQuoteID)
	payments.GET("/:quote_id", h.GetPaymentByQuoteID)
	return r
}

func TestQuotePaymentHandler_CreatePaymentByQuoteID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid body json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotePaymentUseCase(ctrl)
		r := newPaymentRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/q1", bytes.NewBufferString("{not json"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unwraps mp_payload envelope", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotePaymentUseCase(ctrl)
		r := newPaymentRouter(uc)

		uc.EXPECT().CreateAndApprove(gomock.Any(), "q1", gomock.Any()).DoAndReturn(
			func(_ any, quoteID string, payload json.RawMessage) (entities.QuotePayment, error) {
				var m map[string]any
				if err := json.Unmarshal(payload, &m); err != nil {
					t.Fatalf("payload not json: %v", err)
				}
				if m["payment_method_id"] != "pix" {
					t.Fatalf("envelope not unwrapped: %v", m)
				}
				return entities.QuotePayment{ID: "pay-1", QuoteID: quoteID, Status: entities.PaymentStatusApproved}, nil
			},
		)

		body := `{"mp_payload":{"payment_method_id":"pix","payer":{"email":"buyer@example.com"}}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/payments/q1", bytes.NewBufferString(body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("quote not accepted maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotePaymentUseCase(ctrl)
		r := newPaymentRouter(uc)

		uc.EXPECT().CreateAndApprove(gomock.Any(), "q1", gomock.Any()).
			Return(entities.QuotePayment{}, usecase.ErrQuoteNotAccepted)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/q1", bytes.NewBufferString(`{"payment_method_id":"pix"}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("quote not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotePaymentUseCase(ctrl)
		r := newPaymentRouter(uc)

		uc.EXPECT().CreateAndApprove(gomock.Any(), "q1", gomock.Any()).
			Return(entities.QuotePayment{}, usecase.ErrQuoteNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/q1", bytes.NewBufferString(`{"payment_method_id":"pix"}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("gateway unauthorized maps to 401", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotePaymentUseCase(ctrl)
		r := newPaymentRouter(uc)

		uc.EXPECT().CreateAndApprove(gomock.Any(), "q1", gomock.Any()).
			Return(entities.QuotePayment{}, usecase.ErrPaymentGatewayUnauthorized)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/q1", bytes.NewBufferString(`{"payment_method_id":"pix"}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}

func TestQuotePaymentHandler_GetPaymentByQuoteID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no payments maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotePaymentUseCase(ctrl)
		r := newPaymentRouter(uc)

		uc.EXPECT().ListByQuoteID(gomock.Any(), "q1").Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/q1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("returns latest payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotePaymentUseCase(ctrl)
		r := newPaymentRouter(uc)

		older := entities.QuotePayment{ID: "pay-1", QuoteID: "q1", Date: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)}
		newer := entities.QuotePayment{ID: "pay-2", QuoteID: "q1", Date: time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)}
		uc.EXPECT().ListByQuoteID(gomock.Any(), "q1").Return([]entities.QuotePayment{older, newer}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/q1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp["payment_id"] != "pay-2" {
			t.Fatalf("expected latest payment, got %v", resp["payment_id"])
		}
	})
}
