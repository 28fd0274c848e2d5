package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"offistation-service/models"
	"offistation-service/services"
)

func newCheckoutFixture(t *testing.T) (*mockCartRepo, services.CartService, services.CheckoutService) {
	t.Helper()
	logger, _ := zap.NewDevelopment()
	carts := newMockCartRepo()
	cart := services.NewCartService(carts, newMockProductRepo(
		models.Product{ID: "chair", Name: "Office Chair", Price: 2500},
		penProduct(),
	), logger)
	checkout := services.NewCheckoutService(carts, cart, logger)
	return carts, cart, checkout
}

func validCheckout() *models.CheckoutRequest {
	return &models.CheckoutRequest{
		FullName:      "Jeri C. Bigornia",
		Email:         "jeri@example.com",
		Phone:         "09171234567",
		Address:       "12 Mabini St, Quezon City",
		PaymentMethod: "cod",
	}
}

func TestCheckout_SummaryEmptyCartRedirectsToCatalog(t *testing.T) {
	_, _, checkout := newCheckoutFixture(t)

	_, svcErr := checkout.Summary(context.Background(), "u")

	assert.NotNil(t, svcErr)
	assert.Equal(t, 409, svcErr.StatusCode)
	assert.Equal(t, services.CatalogRoute, svcErr.Redirect)
}

func TestCheckout_ValidationFailuresAreFieldLevel(t *testing.T) {
	_, cart, checkout := newCheckoutFixture(t)
	_, _ = cart.AddItem(context.Background(), "u", "pen", 1)

	req := validCheckout()
	req.FullName = "  "
	req.Email = "not-an-email"
	req.PaymentMethod = ""

	_, svcErr := checkout.PlaceOrder(context.Background(), "u", req)

	assert.NotNil(t, svcErr)
	assert.Equal(t, 400, svcErr.StatusCode)
	assert.Contains(t, svcErr.Fields, "full_name")
	assert.Contains(t, svcErr.Fields, "email")
	assert.Contains(t, svcErr.Fields, "payment_method")
	assert.NotContains(t, svcErr.Fields, "phone")

	// No order was created; the cart survives a rejected form.
	view, _ := cart.GetCart(context.Background(), "u")
	assert.False(t, view.Empty)
}

func TestCheckout_UnknownPaymentMethodRejected(t *testing.T) {
	_, cart, checkout := newCheckoutFixture(t)
	_, _ = cart.AddItem(context.Background(), "u", "pen", 1)

	req := validCheckout()
	req.PaymentMethod = "barter"

	_, svcErr := checkout.PlaceOrder(context.Background(), "u", req)

	assert.NotNil(t, svcErr)
	assert.Contains(t, svcErr.Fields, "payment_method")
}

func TestCheckout_SuccessClearsCartAndVoucher(t *testing.T) {
	carts, cart, checkout := newCheckoutFixture(t)
	_, _ = cart.AddItem(context.Background(), "u", "chair", 1) // subtotal 2500
	_ = carts.SetActiveVoucherCode(context.Background(), "u", "BULK10")

	confirmation, svcErr := checkout.PlaceOrder(context.Background(), "u", validCheckout())

	assert.Nil(t, svcErr)
	assert.True(t, strings.HasPrefix(confirmation.Reference, "OS-"))
	assert.Equal(t, 2500.0, confirmation.Totals.Subtotal)
	assert.Equal(t, 250.0, confirmation.Totals.Discount)
	assert.Equal(t, 2400.0, confirmation.Totals.Total)

	view, _ := cart.GetCart(context.Background(), "u")
	assert.True(t, view.Empty)
	code, _ := carts.GetActiveVoucherCode(context.Background(), "u")
	assert.Equal(t, "", code)
}

func TestCheckout_PlaceOrderOnEmptyCartRedirects(t *testing.T) {
	_, _, checkout := newCheckoutFixture(t)

	_, svcErr := checkout.PlaceOrder(context.Background(), "u", validCheckout())

	assert.NotNil(t, svcErr)
	assert.Equal(t, 409, svcErr.StatusCode)
	assert.Equal(t, services.CatalogRoute, svcErr.Redirect)
}
