package services

import (
	"context"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"offistation-service/models"
	"offistation-service/repository"
)

// CatalogRoute is where an empty-cart checkout gets redirected.
const CatalogRoute = "/products"

var paymentMethods = map[string]bool{
	"cod":   true,
	"card":  true,
	"gcash": true,
}

// CheckoutService gates entry to checkout and places orders. "Placing" an
// order here means validating the form, fixing the totals, and clearing the
// cart; there is no downstream order processing.
type CheckoutService interface {
	Summary(ctx context.Context, userID string) (*models.CartView, *ServiceError)
	PlaceOrder(ctx context.Context, userID string, req *models.CheckoutRequest) (*models.OrderConfirmation, *ServiceError)
}

type checkoutServiceImpl struct {
	carts  repository.CartRepository
	cart   CartService
	logger *zap.Logger
}

// NewCheckoutService creates a new CheckoutService.
func NewCheckoutService(carts repository.CartRepository, cart CartService, logger *zap.Logger) CheckoutService {
	return &checkoutServiceImpl{carts: carts, cart: cart, logger: logger}
}

// Summary returns the checkout view, or a redirect back to the catalog when
// the cart is empty. The redirect abandons the flow entirely; there is no
// in-checkout recovery from an empty cart.
func (s *checkoutServiceImpl) Summary(ctx context.Context, userID string) (*models.CartView, *ServiceError) {
	view, svcErr := s.cart.GetCart(ctx, userID)
	if svcErr != nil {
		return nil, svcErr
	}
	if view.Empty {
		return nil, &ServiceError{StatusCode: 409, Message: "Cart is empty", Redirect: CatalogRoute}
	}
	return view, nil
}

// PlaceOrder validates the checkout form, computes the final totals against
// the active voucher, clears the cart and voucher, and returns a
// confirmation with a timestamp-derived order reference.
func (s *checkoutServiceImpl) PlaceOrder(ctx context.Context, userID string, req *models.CheckoutRequest) (*models.OrderConfirmation, *ServiceError) {
	view, svcErr := s.Summary(ctx, userID)
	if svcErr != nil {
		return nil, svcErr
	}

	if fields := validateCheckout(req); len(fields) > 0 {
		return nil, &ServiceError{
			StatusCode: 400,
			Message:    "Please correct the highlighted fields",
			Fields:     fields,
		}
	}

	confirmation := &models.OrderConfirmation{
		Reference: newOrderReference(time.Now()),
		Totals:    view.Totals,
		PlacedAt:  time.Now(),
	}

	if err := s.carts.DeleteCart(ctx, userID); err != nil {
		s.logger.Error("Failed to clear cart after checkout", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Checkout failed"}
	}
	if err := s.carts.ClearActiveVoucherCode(ctx, userID); err != nil {
		s.logger.Error("Failed to clear voucher after checkout", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Checkout failed"}
	}

	s.logger.Info("Order placed",
		zap.String("user_id", userID),
		zap.String("reference", confirmation.Reference),
		zap.Float64("total", confirmation.Totals.Total),
	)
	return confirmation, nil
}

// validateCheckout checks the form and returns a message per failed field.
func validateCheckout(req *models.CheckoutRequest) map[string]string {
	fields := map[string]string{}

	if strings.TrimSpace(req.FullName) == "" {
		fields["full_name"] = "Full name is required"
	}
	if strings.TrimSpace(req.Email) == "" {
		fields["email"] = "Email is required"
	} else if !strings.Contains(req.Email, "@") {
		fields["email"] = "Email address is not valid"
	}
	if strings.TrimSpace(req.Phone) == "" {
		fields["phone"] = "Phone number is required"
	}
	if strings.TrimSpace(req.Address) == "" {
		fields["address"] = "Delivery address is required"
	}
	if req.PaymentMethod == "" {
		fields["payment_method"] = "Select a payment method"
	} else if !paymentMethods[req.PaymentMethod] {
		fields["payment_method"] = "Unknown payment method"
	}

	return fields
}

// newOrderReference derives a short order code from the placement time.
func newOrderReference(t time.Time) string {
	return "OS-" + strings.ToUpper(strconv.FormatInt(t.Unix(), 36))
}
