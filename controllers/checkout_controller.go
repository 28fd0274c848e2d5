package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"offistation-service/middleware"
	"offistation-service/models"
	"offistation-service/services"
)

// CheckoutController handles the checkout summary and order placement.
type CheckoutController struct {
	checkoutService services.CheckoutService
}

// NewCheckoutController creates a new CheckoutController.
func NewCheckoutController(checkoutService services.CheckoutService) *CheckoutController {
	return &CheckoutController{checkoutService: checkoutService}
}

// Summary handles GET /checkout. An empty cart answers 409 with a redirect
// back to the catalog; clients leave the checkout flow on that response.
func (cc *CheckoutController) Summary(ctx *gin.Context) {
	view, svcErr := cc.checkoutService.Summary(ctx.Request.Context(), ctx.GetString(middleware.UserIDKey))
	if svcErr != nil {
		writeCheckoutError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// PlaceOrder handles POST /checkout.
func (cc *CheckoutController) PlaceOrder(ctx *gin.Context) {
	var req models.CheckoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	confirmation, svcErr := cc.checkoutService.PlaceOrder(ctx.Request.Context(), ctx.GetString(middleware.UserIDKey), &req)
	if svcErr != nil {
		writeCheckoutError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusCreated, confirmation)
}

func writeCheckoutError(ctx *gin.Context, svcErr *services.ServiceError) {
	body := gin.H{"error": svcErr.Message}
	if svcErr.Redirect != "" {
		body["redirect"] = svcErr.Redirect
	}
	if len(svcErr.Fields) > 0 {
		body["fields"] = svcErr.Fields
	}
	ctx.JSON(svcErr.StatusCode, body)
}
