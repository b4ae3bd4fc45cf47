package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/yonubear/New-printshop/internal/adapter/http/handlers/mocks"
	"github.com/yonubear/New-printshop/internal/domain/entities"
	"github.com/yonubear/New-printshop/internal/domain/pricing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestEstimateHandler_PreviewCostEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc *mocks.MockIEstimateUseCase) *gin.Engine {
		h := NewEstimateHandler(uc)
		r := gin.New()
		r.POST("/v1/preview/cost-estimate", h.PreviewCostEstimate)
		return r
	}

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/preview/cost-estimate", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation error maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().PreviewCostEstimate(gomock.Any(), gomock.Any()).
			Return(entities.PriceBreakdown{}, &pricing.ValidationError{})

		body := `{"product_type":"booklet","quantity":10,"page_count":7}`
		req := httptest.NewRequest(http.MethodPost, "/v1/preview/cost-estimate", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("reference data miss maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().PreviewCostEstimate(gomock.Any(), gomock.Any()).
			Return(entities.PriceBreakdown{}, pricing.ErrReferenceDataMiss)

		body := `{"product_type":"plain","quantity":100}`
		req := httptest.NewRequest(http.MethodPost, "/v1/preview/cost-estimate", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("usecase error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().PreviewCostEstimate(gomock.Any(), gomock.Any()).
			Return(entities.PriceBreakdown{}, errors.New("db"))

		body := `{"product_type":"plain","quantity":100}`
		req := httptest.NewRequest(http.MethodPost, "/v1/preview/cost-estimate", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().PreviewCostEstimate(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, cfg entities.JobConfig) (entities.PriceBreakdown, error) {
				if cfg.ProductType != entities.ProductTypePlain || cfg.Quantity != 100 {
					t.Fatalf("unexpected config: %+v", cfg)
				}
				if cfg.Paper.Size != "Letter" || cfg.ColorType != entities.ColorTypeBW {
					t.Fatalf("unexpected paper/color: %+v", cfg)
				}
				return entities.PriceBreakdown{
					PaperCost:    0.10,
					PrintingCost: 0.25,
					UnitPrice:    0.35,
					Quantity:     100,
					TotalPrice:   35.00,
				}, nil
			},
		)

		body := `{
			"product_type": "plain",
			"paper": {"size": "Letter", "category": "Bond", "weight": "20#"},
			"color_type": "B/W",
			"sides": "Single",
			"quantity": 100
		}`
		req := httptest.NewRequest(http.MethodPost, "/v1/preview/cost-estimate", bytes.NewBufferString(body))
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
		if resp["total_price"] != 35.00 {
			t.Fatalf("unexpected total_price: %v", resp["total_price"])
		}
		if resp["unit_price"] != 0.35 {
			t.Fatalf("unexpected unit_price: %v", resp["unit_price"])
		}
	})
}
