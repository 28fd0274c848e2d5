package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"offistation-service/middleware"
	"offistation-service/models"
	"offistation-service/services"
)

// CartController handles cart reads and mutations.
type CartController struct {
	cartService services.CartService
	authService services.AuthService
}

// NewCartController creates a new CartController.
func NewCartController(cartService services.CartService, authService services.AuthService) *CartController {
	return &CartController{cartService: cartService, authService: authService}
}

// GetCart handles GET /cart.
func (cc *CartController) GetCart(ctx *gin.Context) {
	view, svcErr := cc.cartService.GetCart(ctx.Request.Context(), ctx.GetString(middleware.UserIDKey))
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// AddItem handles POST /cart/items. The route uses optional auth: a
// logged-in caller gets a normal add, an anonymous one has the add stored as
// a pending intent under a guest id and is pointed at the login page. The
// intent is replayed once when that guest id comes back through login.
func (cc *CartController) AddItem(ctx *gin.Context) {
	var req models.AddItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	userID := ctx.GetString(middleware.UserIDKey)
	if userID == "" {
		guestID := ctx.GetHeader("X-Guest-ID")
		if guestID == "" {
			guestID = uuid.NewString()
		}
		if svcErr := cc.authService.DeferAdd(ctx.Request.Context(), guestID, req.ProductID, req.Quantity); svcErr != nil {
			ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
			return
		}
		ctx.JSON(http.StatusUnauthorized, gin.H{
			"error":    "Login required",
			"redirect": "/login",
			"guest_id": guestID,
		})
		return
	}

	view, svcErr := cc.cartService.AddItem(ctx.Request.Context(), userID, req.ProductID, req.Quantity)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// UpdateItem handles PUT /cart/items/:product_id. A requested quantity
// below 1 removes the line instead of keeping it at zero.
func (cc *CartController) UpdateItem(ctx *gin.Context) {
	var req models.UpdateItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	userID := ctx.GetString(middleware.UserIDKey)
	productID := ctx.Param("product_id")

	var view *models.CartView
	var svcErr *services.ServiceError
	if req.Quantity < 1 {
		view, svcErr = cc.cartService.RemoveItem(ctx.Request.Context(), userID, productID)
	} else {
		view, svcErr = cc.cartService.SetQuantity(ctx.Request.Context(), userID, productID, req.Quantity)
	}
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// RemoveItem handles DELETE /cart/items/:product_id.
func (cc *CartController) RemoveItem(ctx *gin.Context) {
	view, svcErr := cc.cartService.RemoveItem(
		ctx.Request.Context(),
		ctx.GetString(middleware.UserIDKey),
		ctx.Param("product_id"),
	)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// ClearCart handles DELETE /cart.
func (cc *CartController) ClearCart(ctx *gin.Context) {
	if svcErr := cc.cartService.Clear(ctx.Request.Context(), ctx.GetString(middleware.UserIDKey)); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}
