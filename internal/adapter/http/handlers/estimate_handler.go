package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/yonubear/New-printshop/internal/adapter/http/dto/request"
	response "github.com/yonubear/New-printshop/internal/adapter/http/dto/response"
	"github.com/yonubear/New-printshop/internal/domain/pricing"
	"github.com/yonubear/New-printshop/internal/usecase"
	"github.com/yonubear/New-printshop/pkg"
)

var errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)

// EstimateHandler handles cost preview requests.

type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// PreviewCostEstimate prices a job configuration against the current
// catalog without persisting anything.
func (h *EstimateHandler) PreviewCostEstimate(c *gin.Context) {
	var payload request.CostEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	breakdown, err := h.usecase.PreviewCostEstimate(c.Request.Context(), payload.ToJobConfig())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPriceBreakdown(breakdown))
}

func mapEstimateError(err error) *pkg.AppError {
	var ve *pricing.ValidationError
	switch {
	case errors.As(err, &ve):
		return pkg.NewDomainErrorSimple("INVALID_JOB_CONFIG", ve.Error(), http.StatusBadRequest)
	case errors.Is(err, pricing.ErrReferenceDataMiss):
		return pkg.NewDomainErrorSimple("REFERENCE_DATA_MISS", "No matching reference data for this configuration", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
