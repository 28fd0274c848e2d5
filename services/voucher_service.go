package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"offistation-service/models"
	"offistation-service/repository"
)

// voucherTable is the fixed promotional set for the storefront. It is not
// user-editable and never persisted; only the code a user applies is stored.
var voucherTable = map[string]models.Voucher{
	"OFFI2025": {
		Code:     "OFFI2025",
		Type:     models.VoucherTypeAmount,
		Amount:   100,
		MinSpend: 500,
	},
	"BULK10": {
		Code:     "BULK10",
		Type:     models.VoucherTypePercent,
		Percent:  10,
		MinSpend: 2000,
	},
}

// ResolveVoucher looks a code up in the fixed table. Codes are matched
// case-insensitively with surrounding whitespace ignored; unknown codes
// resolve to nil.
func ResolveVoucher(code string) *models.Voucher {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if v, ok := voucherTable[normalized]; ok {
		return &v
	}
	return nil
}

// VoucherService manages the single applied voucher code per user.
type VoucherService interface {
	Apply(ctx context.Context, userID, code string) (*models.ApplyVoucherResponse, *ServiceError)
	Remove(ctx context.Context, userID string) *ServiceError
}

type voucherServiceImpl struct {
	carts  repository.CartRepository
	logger *zap.Logger
}

// NewVoucherService creates a new VoucherService.
func NewVoucherService(carts repository.CartRepository, logger *zap.Logger) VoucherService {
	return &voucherServiceImpl{carts: carts, logger: logger}
}

// Apply stores the code as the user's active voucher. Unknown codes are
// rejected and leave the stored code untouched. Eligibility is NOT enforced
// here: an applied voucher below its minimum spend simply contributes a zero
// discount until the cart grows, per ComputeTotals.
func (s *voucherServiceImpl) Apply(ctx context.Context, userID, code string) (*models.ApplyVoucherResponse, *ServiceError) {
	voucher := ResolveVoucher(code)
	if voucher == nil {
		return nil, &ServiceError{StatusCode: 400, Message: "Invalid voucher code"}
	}

	if err := s.carts.SetActiveVoucherCode(ctx, userID, voucher.Code); err != nil {
		s.logger.Error("Failed to store voucher code", zap.String("code", voucher.Code), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to apply voucher"}
	}

	cart, err := s.carts.GetCart(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to load cart for voucher check", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to apply voucher"}
	}

	totals := ComputeTotals(cart, nil)
	resp := &models.ApplyVoucherResponse{
		Voucher:  *voucher,
		Eligible: totals.Subtotal > 0 && totals.Subtotal >= voucher.MinSpend,
	}
	if !resp.Eligible {
		resp.Message = "Voucher applied; discount activates once the minimum spend is met"
	}

	s.logger.Info("Voucher applied",
		zap.String("user_id", userID),
		zap.String("code", voucher.Code),
		zap.Bool("eligible", resp.Eligible),
	)
	return resp, nil
}

// Remove clears the user's active voucher code. Removing when nothing is
// applied is a no-op.
func (s *voucherServiceImpl) Remove(ctx context.Context, userID string) *ServiceError {
	if err := s.carts.ClearActiveVoucherCode(ctx, userID); err != nil {
		s.logger.Error("Failed to clear voucher code", zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Failed to remove voucher"}
	}
	return nil
}
