package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/yonubear/New-printshop/internal/adapter/http/handlers/mocks"
	"github.com/yonubear/New-printshop/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newCatalogRouter(uc *mocks.MockICatalogUseCase) *gin.Engine {
	h := NewCatalogHandler(uc)
	r := gin.New()
	catalog := r.Group("/v1/catalog")
	catalog.GET("/paper-options", h.ListPaperOptions)
	catalog.GET("/print-pricing", h.ListPrintPricing)
	catalog.GET("/finishing-options", h.ListFinishingOptions)
	catalog.GET("/finishing-categories", h.ListFinishingCategories)
	catalog.GET("/template", h.DownloadTemplate)
	return r
}

func TestCatalogHandler_ListPaperOptions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("passes query filters through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		r := newCatalogRouter(uc)

		uc.EXPECT().ListPaperOptions(gomock.Any(), entities.PaperOptionFilter{
			Size: "Letter", Weight: "20#", Category: "Bond",
		}).Return([]entities.PaperOption{{ID: "p1", Name: "Letter 20# Bond"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/catalog/paper-options?size=Letter&weight=20%23&category=Bond", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if len(resp) != 1 || resp[0]["id"] != "p1" {
			t.Fatalf("unexpected response: %v", resp)
		}
	})

	t.Run("usecase error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		r := newCatalogRouter(uc)

		uc.EXPECT().ListPaperOptions(gomock.Any(), gomock.Any()).Return(nil, errors.New("db"))

		req := httptest.NewRequest(http.MethodGet, "/v1/catalog/paper-options", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestCatalogHandler_ListPrintPricing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICatalogUseCase(ctrl)
	r := newCatalogRouter(uc)

	uc.EXPECT().ListPrintPricing(gomock.Any(), entities.PrintPricingFilter{
		PaperSize: "Letter", ColorType: entities.ColorTypeColor,
	}).Return([]entities.PrintPricing{{ID: "pp1"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/catalog/print-pricing?paper_size=Letter&color_type=Color", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestCatalogHandler_ListFinishingCategories(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICatalogUseCase(ctrl)
	r := newCatalogRouter(uc)

	uc.EXPECT().ListFinishingCategories(gomock.Any()).Return([]string{"Cutting", "Lamination"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/catalog/finishing-categories", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp map[string][]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response json: %v", err)
	}
	if len(resp["categories"]) != 2 {
		t.Fatalf("unexpected categories: %v", resp)
	}
}

func TestCatalogHandler_DownloadTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICatalogUseCase(ctrl)
	r := newCatalogRouter(uc)

	uc.EXPECT().BuildTemplate(gomock.Any()).Return([]byte("PK workbook bytes"), nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/catalog/template", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != xlsxContentType {
		t.Fatalf("unexpected content type %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "pricing_catalog_") || !strings.Contains(cd, ".xlsx") {
		t.Fatalf("unexpected content disposition %q", cd)
	}
	if w.Body.String() != "PK workbook bytes" {
		t.Fatalf("body not streamed as-is")
	}
}
