package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"offistation-service/models"
	"offistation-service/services"
)

func cartWith(items ...models.CartItem) *models.Cart {
	return &models.Cart{UserID: "u", Items: items}
}

func TestComputeTotals_SubtotalShippingAndCount(t *testing.T) {
	cart := cartWith(models.CartItem{ProductID: "A", Price: 100, Quantity: 2})

	totals := services.ComputeTotals(cart, nil)

	assert.Equal(t, 200.0, totals.Subtotal)
	assert.Equal(t, 0.0, totals.Discount)
	assert.Equal(t, 150.0, totals.Shipping)
	assert.Equal(t, 350.0, totals.Total)
	assert.Equal(t, 2, totals.ItemCount)
}

func TestComputeTotals_VoucherBelowMinSpendGivesNoDiscount(t *testing.T) {
	cart := cartWith(models.CartItem{ProductID: "A", Price: 100, Quantity: 2})
	voucher := services.ResolveVoucher("OFFI2025") // ₱100 off, min ₱500

	totals := services.ComputeTotals(cart, voucher)

	assert.Equal(t, 200.0, totals.Subtotal)
	assert.Equal(t, 0.0, totals.Discount, "subtotal 200 < min spend 500")
	assert.Equal(t, 350.0, totals.Total)
}

func TestComputeTotals_PercentVoucher(t *testing.T) {
	cart := cartWith(models.CartItem{ProductID: "A", Price: 2500, Quantity: 1})
	voucher := services.ResolveVoucher("BULK10") // 10% off, min ₱2000

	totals := services.ComputeTotals(cart, voucher)

	assert.Equal(t, 2500.0, totals.Subtotal)
	assert.Equal(t, 250.0, totals.Discount)
	assert.Equal(t, 2400.0, totals.Total)
}

func TestComputeTotals_AmountVoucherEligible(t *testing.T) {
	cart := cartWith(models.CartItem{ProductID: "A", Price: 300, Quantity: 2})
	voucher := services.ResolveVoucher("OFFI2025")

	totals := services.ComputeTotals(cart, voucher)

	assert.Equal(t, 600.0, totals.Subtotal)
	assert.Equal(t, 100.0, totals.Discount)
	assert.Equal(t, 650.0, totals.Total)
}

func TestComputeTotals_AmountDiscountCappedAtSubtotal(t *testing.T) {
	cart := cartWith(models.CartItem{ProductID: "A", Price: 60, Quantity: 1})
	voucher := &models.Voucher{Code: "BIG", Type: models.VoucherTypeAmount, Amount: 500}

	totals := services.ComputeTotals(cart, voucher)

	assert.Equal(t, 60.0, totals.Discount, "discount never exceeds subtotal")
	assert.Equal(t, 150.0, totals.Total, "net goes to zero, shipping remains")
	assert.GreaterOrEqual(t, totals.Total, 0.0)
}

func TestComputeTotals_EmptyCart(t *testing.T) {
	totals := services.ComputeTotals(cartWith(), services.ResolveVoucher("OFFI2025"))

	assert.Equal(t, 0.0, totals.Subtotal)
	assert.Equal(t, 0.0, totals.Discount)
	assert.Equal(t, 0.0, totals.Shipping, "empty cart is never charged shipping")
	assert.Equal(t, 0.0, totals.Total)
	assert.Equal(t, 0, totals.ItemCount)
}

func TestComputeTotals_IndependentOfItemOrder(t *testing.T) {
	a := models.CartItem{ProductID: "A", Price: 120, Quantity: 3}
	b := models.CartItem{ProductID: "B", Price: 45, Quantity: 2}

	forward := services.ComputeTotals(cartWith(a, b), nil)
	reversed := services.ComputeTotals(cartWith(b, a), nil)

	assert.Equal(t, forward, reversed)
	assert.Equal(t, 450.0, forward.Subtotal)
	assert.Equal(t, 5, forward.ItemCount)
}

func TestBadgeLabel(t *testing.T) {
	assert.Equal(t, "", services.BadgeLabel(0))
	assert.Equal(t, "1", services.BadgeLabel(1))
	assert.Equal(t, "99", services.BadgeLabel(99))
	assert.Equal(t, "99+", services.BadgeLabel(100))
	assert.Equal(t, "99+", services.BadgeLabel(250))
}
