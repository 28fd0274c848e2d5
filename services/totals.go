package services

import "offistation-service/models"

// ShippingFee is the flat delivery charge on any non-empty cart, in pesos.
const ShippingFee = 150.0

// ComputeTotals derives subtotal, discount, shipping, total, and item count
// from a cart and the resolved active voucher. It is pure and deterministic;
// every read path calls it fresh so totals can never drift from the cart.
//
// Voucher eligibility is re-checked here on every call: a voucher whose
// minimum spend the cart no longer meets contributes a zero discount while
// staying applied, so topping the cart back up reactivates it.
func ComputeTotals(cart *models.Cart, voucher *models.Voucher) models.Totals {
	var totals models.Totals
	if cart == nil {
		return totals
	}

	for _, item := range cart.Items {
		totals.Subtotal += item.Price * float64(item.Quantity)
		totals.ItemCount += item.Quantity
	}

	// Empty cart: no discount, no shipping, total zero.
	if totals.Subtotal <= 0 {
		return totals
	}

	if voucher != nil && totals.Subtotal >= voucher.MinSpend {
		switch voucher.Type {
		case models.VoucherTypeAmount:
			totals.Discount = voucher.Amount
			if totals.Discount > totals.Subtotal {
				totals.Discount = totals.Subtotal
			}
		case models.VoucherTypePercent:
			totals.Discount = totals.Subtotal * float64(voucher.Percent) / 100
		}
	}

	totals.Shipping = ShippingFee

	net := totals.Subtotal - totals.Discount
	if net < 0 {
		net = 0
	}
	totals.Total = net + totals.Shipping

	return totals
}
