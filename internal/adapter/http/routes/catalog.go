package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/yonubear/New-printshop/internal/adapter/http/handlers"
)

const PathCatalog = "/catalog"

func addCatalogRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("/paper-options", catalogHandler.ListPaperOptions)
		catalog.GET("/print-pricing", catalogHandler.ListPrintPricing)
		catalog.GET("/finishing-options", catalogHandler.ListFinishingOptions)
		catalog.GET("/finishing-categories", catalogHandler.ListFinishingCategories)
		catalog.GET("/template", catalogHandler.DownloadTemplate)
	}
}
