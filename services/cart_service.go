package services

import (
	"context"
	"errors"
	"strconv"

	"go.uber.org/zap"

	"offistation-service/models"
	"offistation-service/repository"
)

// badgeCap is the highest item count the header badge shows as a number.
const badgeCap = 99

// CartService owns all cart mutations. Every mutation persists the whole
// cart and returns a freshly derived view so callers never render stale
// totals.
type CartService interface {
	GetCart(ctx context.Context, userID string) (*models.CartView, *ServiceError)
	AddItem(ctx context.Context, userID, productID string, quantity int) (*models.CartView, *ServiceError)
	SetQuantity(ctx context.Context, userID, productID string, quantity int) (*models.CartView, *ServiceError)
	RemoveItem(ctx context.Context, userID, productID string) (*models.CartView, *ServiceError)
	Clear(ctx context.Context, userID string) *ServiceError
}

type cartServiceImpl struct {
	carts    repository.CartRepository
	products repository.ProductRepository
	logger   *zap.Logger
}

// NewCartService creates a new CartService.
func NewCartService(carts repository.CartRepository, products repository.ProductRepository, logger *zap.Logger) CartService {
	return &cartServiceImpl{carts: carts, products: products, logger: logger}
}

// GetCart returns the current cart with totals, badge, and voucher state.
func (s *cartServiceImpl) GetCart(ctx context.Context, userID string) (*models.CartView, *ServiceError) {
	cart, err := s.carts.GetCart(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to load cart", zap.String("user_id", userID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to load cart"}
	}
	return s.buildView(ctx, cart)
}

// AddItem adds a product to the cart, merging with an existing line by
// product id. Name, price, and image are snapshotted from the catalog at
// add time.
func (s *cartServiceImpl) AddItem(ctx context.Context, userID, productID string, quantity int) (*models.CartView, *ServiceError) {
	if quantity < 1 {
		return nil, &ServiceError{StatusCode: 400, Message: "Quantity must be at least 1"}
	}

	product, err := s.products.FindByID(ctx, productID)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, &ServiceError{StatusCode: 404, Message: "Product not found"}
	}
	if err != nil {
		s.logger.Error("Failed to look up product", zap.String("product_id", productID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to add item"}
	}

	cart, err := s.carts.GetCart(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to load cart", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to add item"}
	}

	merged := false
	for i, existing := range cart.Items {
		if existing.ProductID == productID {
			cart.Items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, models.CartItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Image:     product.Image,
			Quantity:  quantity,
		})
	}

	if err := s.carts.SaveCart(ctx, cart); err != nil {
		s.logger.Error("Failed to save cart", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to add item"}
	}

	s.logger.Info("Item added to cart",
		zap.String("user_id", userID),
		zap.String("product_id", productID),
		zap.Int("quantity", quantity),
	)
	return s.buildView(ctx, cart)
}

// SetQuantity replaces a line's quantity. Callers route quantities below 1
// to RemoveItem instead; here an unknown product id is a silent no-op.
func (s *cartServiceImpl) SetQuantity(ctx context.Context, userID, productID string, quantity int) (*models.CartView, *ServiceError) {
	if quantity < 1 {
		return nil, &ServiceError{StatusCode: 400, Message: "Quantity must be at least 1"}
	}

	cart, err := s.carts.GetCart(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to load cart", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to update cart"}
	}

	changed := false
	for i, existing := range cart.Items {
		if existing.ProductID == productID {
			cart.Items[i].Quantity = quantity
			changed = true
			break
		}
	}

	if changed {
		if err := s.carts.SaveCart(ctx, cart); err != nil {
			s.logger.Error("Failed to save cart", zap.Error(err))
			return nil, &ServiceError{StatusCode: 500, Message: "Failed to update cart"}
		}
	}
	return s.buildView(ctx, cart)
}

// RemoveItem drops a line from the cart; absent ids are a no-op.
func (s *cartServiceImpl) RemoveItem(ctx context.Context, userID, productID string) (*models.CartView, *ServiceError) {
	cart, err := s.carts.GetCart(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to load cart", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to update cart"}
	}

	kept := cart.Items[:0]
	for _, item := range cart.Items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	cart.Items = kept

	if err := s.carts.SaveCart(ctx, cart); err != nil {
		s.logger.Error("Failed to save cart", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to update cart"}
	}
	return s.buildView(ctx, cart)
}

// Clear empties the cart entirely.
func (s *cartServiceImpl) Clear(ctx context.Context, userID string) *ServiceError {
	if err := s.carts.DeleteCart(ctx, userID); err != nil {
		s.logger.Error("Failed to clear cart", zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Failed to clear cart"}
	}
	return nil
}

// buildView derives the full cart view: totals from the cart plus the
// resolved active voucher, the badge label, and the empty-state flag.
func (s *cartServiceImpl) buildView(ctx context.Context, cart *models.Cart) (*models.CartView, *ServiceError) {
	code, err := s.carts.GetActiveVoucherCode(ctx, cart.UserID)
	if err != nil {
		s.logger.Error("Failed to load voucher code", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to load cart"}
	}

	voucher := ResolveVoucher(code)
	totals := ComputeTotals(cart, voucher)

	view := &models.CartView{
		Items:  cart.Items,
		Empty:  len(cart.Items) == 0,
		Badge:  BadgeLabel(totals.ItemCount),
		Totals: totals,
	}
	if voucher != nil {
		view.VoucherCode = voucher.Code
		view.VoucherEligible = totals.Subtotal > 0 && totals.Subtotal >= voucher.MinSpend
	}
	return view, nil
}

// BadgeLabel formats the header badge count, capped at "99+".
func BadgeLabel(count int) string {
	if count <= 0 {
		return ""
	}
	if count > badgeCap {
		return "99+"
	}
	return strconv.Itoa(count)
}
