package models

// VoucherType says how a voucher's value is applied to the subtotal.
type VoucherType string

const (
	VoucherTypeAmount  VoucherType = "amount"
	VoucherTypePercent VoucherType = "percent"
)

// Voucher is a promotional code from the fixed storefront table. Vouchers
// themselves are not persisted; only the code a user has applied is.
type Voucher struct {
	Code     string      `json:"code"`
	Type     VoucherType `json:"type"`
	Amount   float64     `json:"amount,omitempty"`  // flat deduction, amount type
	Percent  int         `json:"percent,omitempty"` // 0-100, percent type
	MinSpend float64     `json:"min_spend"`
}

// ApplyVoucherRequest is the payload for applying a voucher code to the cart.
type ApplyVoucherRequest struct {
	Code string `json:"code" binding:"required"`
}

// ApplyVoucherResponse reports the applied voucher and whether it is
// eligible against the current subtotal. Eligibility is advisory here; it is
// re-evaluated every time totals are computed.
type ApplyVoucherResponse struct {
	Voucher  Voucher `json:"voucher"`
	Eligible bool    `json:"eligible"`
	Message  string  `json:"message,omitempty"`
}
