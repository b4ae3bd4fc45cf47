package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	request "github.com/yonubear/New-printshop/internal/adapter/http/dto/request"
	response "github.com/yonubear/New-printshop/internal/adapter/http/dto/response"
	"github.com/yonubear/New-printshop/internal/domain/entities"
	"github.com/yonubear/New-printshop/internal/domain/pricing"
	"github.com/yonubear/New-printshop/internal/usecase"
	"github.com/yonubear/New-printshop/pkg"
)

const quoteNumberPrefix = "QTE-"

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

// QuoteHandler handles the quote lifecycle over HTTP.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	input := usecase.QuoteInput{
		Customer:    payload.Customer,
		Title:       payload.Title,
		Description: payload.Description,
		ValidDays:   payload.ValidDays,
	}
	for _, it := range payload.Items {
		input.Items = append(input.Items, usecase.QuoteItemInput{
			Name:   it.Name,
			Config: it.Config.ToJobConfig(),
		})
	}

	quote, err := h.usecase.CreateQuote(c.Request.Context(), input)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

// GetQuote resolves the path parameter as a quote number when it carries the
// QTE- prefix, and as a quote id otherwise.
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	key := c.Param("id")

	var (
		quote entities.Quote
		err   error
	)
	if strings.HasPrefix(key, quoteNumberPrefix) {
		quote, err = h.usecase.GetByNumber(c.Request.Context(), key)
	} else {
		quote, err = h.usecase.GetByID(c.Request.Context(), key)
	}
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) SendQuote(c *gin.Context) {
	h.patchQuoteStatusByRequest(c, h.usecase.SendByNumber)
}

func (h *QuoteHandler) AcceptQuote(c *gin.Context) {
	h.patchQuoteStatusByRequest(c, h.usecase.AcceptByNumber)
}

func (h *QuoteHandler) DeclineQuote(c *gin.Context) {
	h.patchQuoteStatusByRequest(c, h.usecase.DeclineByNumber)
}

func (h *QuoteHandler) ExpireQuote(c *gin.Context) {
	h.patchQuoteStatusByRequest(c, h.usecase.ExpireByNumber)
}

func (h *QuoteHandler) RecalculateQuote(c *gin.Context) {
	quote, err := h.usecase.RecalculateByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) patchQuoteStatusByRequest(
	c *gin.Context,
	updater func(ctx context.Context, quoteNumber string) (entities.Quote, error),
) {
	var payload request.QuoteStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := updater(c.Request.Context(), payload.QuoteNumber)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func mapQuoteError(err error) *pkg.AppError {
	var ve *pricing.ValidationError
	switch {
	case errors.As(err, &ve):
		return pkg.NewDomainErrorSimple("INVALID_JOB_CONFIG", ve.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidQuoteNumber),
		errors.Is(err, usecase.ErrInvalidQuoteItems), errors.Is(err, usecase.ErrInvalidCustomer):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, pricing.ErrReferenceDataMiss):
		return pkg.NewDomainErrorSimple("REFERENCE_DATA_MISS", "No matching reference data for this configuration", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrQuoteStatusConflict):
		return pkg.NewDomainErrorSimple("QUOTE_STATUS_CONFLICT", "Quote status does not allow this transition", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
