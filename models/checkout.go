package models

import "time"

// CheckoutRequest carries the checkout form. Field-level validation lives in
// the checkout service so failures come back as a per-field error map rather
// than a single binding message.
type CheckoutRequest struct {
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	PaymentMethod string `json:"payment_method"`
}

// OrderConfirmation is returned once checkout succeeds and the cart has been
// cleared. Reference is a short code derived from the placement timestamp.
type OrderConfirmation struct {
	Reference string    `json:"reference"`
	Totals    Totals    `json:"totals"`
	PlacedAt  time.Time `json:"placed_at"`
}
