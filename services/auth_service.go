package services

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	"offistation-service/models"
	"offistation-service/repository"
)

// AuthService handles the demo login. This storefront has no real user
// accounts: being "logged in" is a capability flag carried by the session
// token, and any well-formed credentials are accepted.
type AuthService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, *ServiceError)
	Logout(ctx context.Context, userID string) *ServiceError
	DeferAdd(ctx context.Context, guestID, productID string, quantity int) *ServiceError
}

type authServiceImpl struct {
	carts    repository.CartRepository
	cart     CartService
	secret   []byte
	tokenTTL time.Duration
	logger   *zap.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(carts repository.CartRepository, cart CartService, secret string, logger *zap.Logger) AuthService {
	return &authServiceImpl{
		carts:    carts,
		cart:     cart,
		secret:   []byte(secret),
		tokenTTL: 24 * time.Hour,
		logger:   logger,
	}
}

// Login issues a session token and, when the request carries a guest id with
// a deferred add-to-cart intent, replays that intent into the user's cart
// exactly once.
func (s *authServiceImpl) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, *ServiceError) {
	userID := strings.ToLower(strings.TrimSpace(req.Email))

	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		s.logger.Error("Failed to sign session token", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Login failed"}
	}

	resp := &models.LoginResponse{Token: token, UserID: userID}

	if req.GuestID != "" {
		replayed, svcErr := s.replayPendingAdd(ctx, req.GuestID, userID)
		if svcErr != nil {
			return nil, svcErr
		}
		resp.ReplayedAdd = replayed
	}

	s.logger.Info("User logged in", zap.String("user_id", userID), zap.Bool("replayed_add", resp.ReplayedAdd))
	return resp, nil
}

// replayPendingAdd applies a deferred add-to-cart intent and deletes it. The
// delete happens first so a failing add cannot be replayed twice.
func (s *authServiceImpl) replayPendingAdd(ctx context.Context, guestID, userID string) (bool, *ServiceError) {
	intent, err := s.carts.GetPendingAdd(ctx, guestID)
	if err != nil {
		s.logger.Error("Failed to load pending add", zap.String("guest_id", guestID), zap.Error(err))
		return false, &ServiceError{StatusCode: 500, Message: "Login failed"}
	}
	if intent == nil {
		return false, nil
	}

	if err := s.carts.DeletePendingAdd(ctx, guestID); err != nil {
		s.logger.Error("Failed to consume pending add", zap.Error(err))
		return false, &ServiceError{StatusCode: 500, Message: "Login failed"}
	}

	if _, svcErr := s.cart.AddItem(ctx, userID, intent.ProductID, intent.Quantity); svcErr != nil {
		// The intent is already consumed; surface the add failure but do not
		// fail the login itself.
		s.logger.Warn("Deferred add could not be replayed",
			zap.String("product_id", intent.ProductID),
			zap.String("reason", svcErr.Message),
		)
		return false, nil
	}
	return true, nil
}

// Logout ends the session's storefront state: the cart and any applied
// voucher are cleared, matching the cart lifecycle of the original store.
func (s *authServiceImpl) Logout(ctx context.Context, userID string) *ServiceError {
	if svcErr := s.cart.Clear(ctx, userID); svcErr != nil {
		return svcErr
	}
	if err := s.carts.ClearActiveVoucherCode(ctx, userID); err != nil {
		s.logger.Error("Failed to clear voucher on logout", zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Logout failed"}
	}
	s.logger.Info("User logged out", zap.String("user_id", userID))
	return nil
}

// DeferAdd stores an add-to-cart intent for a guest who must log in first.
// A newer intent overwrites an older one; only the latest is replayed.
func (s *authServiceImpl) DeferAdd(ctx context.Context, guestID, productID string, quantity int) *ServiceError {
	if quantity < 1 {
		return &ServiceError{StatusCode: 400, Message: "Quantity must be at least 1"}
	}

	intent := &models.PendingAdd{
		ProductID: productID,
		Quantity:  quantity,
		CreatedAt: time.Now(),
	}
	if err := s.carts.SetPendingAdd(ctx, guestID, intent); err != nil {
		s.logger.Error("Failed to store pending add", zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Failed to save item for later"}
	}
	return nil
}
