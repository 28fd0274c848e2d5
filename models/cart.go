package models

import "time"

// CartItem is a single line in a user's cart. Name, price, and image are a
// snapshot taken from the catalog when the item was added; a later catalog
// price change does not re-price lines already in the cart.
type CartItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

// Cart is the full persisted cart for one user. It is stored and rewritten
// as a whole on every mutation.
type Cart struct {
	UserID    string     `json:"user_id"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Totals is derived from a cart and the active voucher at read time.
// It is never persisted.
type Totals struct {
	Subtotal  float64 `json:"subtotal"`
	Discount  float64 `json:"discount"`
	Shipping  float64 `json:"shipping"`
	Total     float64 `json:"total"`
	ItemCount int     `json:"item_count"`
}

// CartView is the response shape shared by the cart and checkout-summary
// endpoints: items plus fresh totals, the header badge label, and the state
// of the applied voucher.
type CartView struct {
	Items           []CartItem `json:"items"`
	Empty           bool       `json:"empty"`
	Badge           string     `json:"badge"`
	Totals          Totals     `json:"totals"`
	VoucherCode     string     `json:"voucher_code,omitempty"`
	VoucherEligible bool       `json:"voucher_eligible"`
}

// AddItemRequest is the payload for adding a product to the cart.
type AddItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

// UpdateItemRequest is the payload for changing a line's quantity.
// Zero is allowed and treated as a remove.
type UpdateItemRequest struct {
	Quantity int `json:"quantity" binding:"gte=0"`
}

// PendingAdd is an add-to-cart intent deferred because the caller was not
// logged in. It is keyed by guest id and replayed exactly once after login.
type PendingAdd struct {
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}
