package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	response "github.com/yonubear/New-printshop/internal/adapter/http/dto/response"
	"github.com/yonubear/New-printshop/internal/domain/entities"
	"github.com/yonubear/New-printshop/internal/usecase"
	"github.com/yonubear/New-printshop/pkg"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// CatalogHandler serves the pricing reference data: paper stocks, print
// rates, finishing options and the xlsx template export.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) ListPaperOptions(c *gin.Context) {
	filter := entities.PaperOptionFilter{
		Size:     c.Query("size"),
		Weight:   c.Query("weight"),
		Category: c.Query("category"),
	}

	opts, err := h.usecase.ListPaperOptions(c.Request.Context(), filter)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaperOptions(opts))
}

func (h *CatalogHandler) ListPrintPricing(c *gin.Context) {
	filter := entities.PrintPricingFilter{
		PaperSize: c.Query("paper_size"),
		ColorType: entities.ColorType(c.Query("color_type")),
	}

	rows, err := h.usecase.ListPrintPricing(c.Request.Context(), filter)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPrintPricings(rows))
}

func (h *CatalogHandler) ListFinishingOptions(c *gin.Context) {
	filter := entities.FinishingOptionFilter{
		Category: c.Query("category"),
	}

	opts, err := h.usecase.ListFinishingOptions(c.Request.Context(), filter)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFinishingOptions(opts))
}

func (h *CatalogHandler) ListFinishingCategories(c *gin.Context) {
	categories, err := h.usecase.ListFinishingCategories(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// DownloadTemplate streams the catalog as an xlsx workbook.
func (h *CatalogHandler) DownloadTemplate(c *gin.Context) {
	data, err := h.usecase.BuildTemplate(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	filename := fmt.Sprintf("pricing_catalog_%s.xlsx", time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}

func mapCatalogError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
