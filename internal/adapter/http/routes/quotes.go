package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/yonubear/New-printshop/internal/adapter/http/handlers"
)

const (
	PathPreview  = "/preview"
	PathQuotes   = "/quotes"
	PathPayments = "/payments"
)

func addQuoteRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler, quoteHandler *handlers.QuoteHandler, paymentHandler *handlers.QuotePaymentHandler) {
	preview := rg.Group(PathPreview)
	{
		preview.POST("/cost-estimate", estimateHandler.PreviewCostEstimate)
	}

	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateQuote)
		// :id also accepts a QTE- quote number.
		quotes.GET("/:id", quoteHandler.GetQuote)
		quotes.POST("/:id/recalculate", quoteHandler.RecalculateQuote)
		quotes.PATCH("/send", quoteHandler.SendQuote)
		quotes.PATCH("/accept", quoteHandler.AcceptQuote)
		quotes.PATCH("/decline", quoteHandler.DeclineQuote)
		quotes.PATCH("/expire", quoteHandler.ExpireQuote)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/:quote_id", paymentHandler.CreatePaymentByQuoteID)
		payments.GET("/:quote_id", paymentHandler.GetPaymentByQuoteID)
	}
}
