package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"offistation-service/controllers"
	"offistation-service/middleware"
)

// Controllers bundles everything Register needs to wire the storefront.
type Controllers struct {
	Catalog  *controllers.CatalogController
	Cart     *controllers.CartController
	Voucher  *controllers.VoucherController
	Checkout *controllers.CheckoutController
	Auth     *controllers.AuthController
}

// Register sets up all storefront routes.
func Register(r *gin.Engine, c Controllers, jwtSecret string) {
	// Public catalog
	r.GET("/products", c.Catalog.ListProducts)
	r.GET("/products/:id", c.Catalog.GetProduct)

	// Session
	r.POST("/login", middleware.RateLimit(rate.Every(time.Minute/20), 10), c.Auth.Login)
	r.POST("/logout", middleware.RequireAuth(jwtSecret), c.Auth.Logout)

	// Add-to-cart is the guarded action: optional auth so anonymous adds can
	// be deferred and replayed after login.
	r.POST("/cart/items", middleware.OptionalAuth(jwtSecret), c.Cart.AddItem)

	// Everything else on the cart requires a session.
	cart := r.Group("/cart")
	cart.Use(middleware.RequireAuth(jwtSecret))
	{
		cart.GET("", c.Cart.GetCart)
		cart.PUT("/items/:product_id", c.Cart.UpdateItem)
		cart.DELETE("/items/:product_id", c.Cart.RemoveItem)
		cart.DELETE("", c.Cart.ClearCart)

		cart.POST("/voucher", c.Voucher.ApplyVoucher)
		cart.DELETE("/voucher", c.Voucher.RemoveVoucher)
	}

	checkout := r.Group("/checkout")
	checkout.Use(middleware.RequireAuth(jwtSecret))
	{
		checkout.GET("", c.Checkout.Summary)
		checkout.POST("", c.Checkout.PlaceOrder)
	}
}
