package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"offistation-service/services"
)

// CatalogController serves the product catalog.
type CatalogController struct {
	catalogService services.CatalogService
}

// NewCatalogController creates a new CatalogController.
func NewCatalogController(catalogService services.CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

// ListProducts handles GET /products.
func (cc *CatalogController) ListProducts(ctx *gin.Context) {
	products, svcErr := cc.catalogService.ListProducts(ctx.Request.Context())
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"products": products})
}

// GetProduct handles GET /products/:id.
func (cc *CatalogController) GetProduct(ctx *gin.Context) {
	product, svcErr := cc.catalogService.GetProduct(ctx.Request.Context(), ctx.Param("id"))
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"product": product})
}
