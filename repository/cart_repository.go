package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"offistation-service/models"
)

// CartRepository is the persisted key-value state of the storefront: the
// cart blob, the applied voucher code, and deferred add-to-cart intents.
// Each value is written whole; there is no incremental diffing.
type CartRepository interface {
	GetCart(ctx context.Context, userID string) (*models.Cart, error)
	SaveCart(ctx context.Context, cart *models.Cart) error
	DeleteCart(ctx context.Context, userID string) error

	GetActiveVoucherCode(ctx context.Context, userID string) (string, error)
	SetActiveVoucherCode(ctx context.Context, userID, code string) error
	ClearActiveVoucherCode(ctx context.Context, userID string) error

	GetPendingAdd(ctx context.Context, guestID string) (*models.PendingAdd, error)
	SetPendingAdd(ctx context.Context, guestID string, intent *models.PendingAdd) error
	DeletePendingAdd(ctx context.Context, guestID string) error
}

// RedisCartRepository stores everything in Redis under per-user keys.
type RedisCartRepository struct {
	client     *redis.Client
	cartTTL    time.Duration
	pendingTTL time.Duration
}

func NewRedisCartRepository(client *redis.Client, cartTTL, pendingTTL time.Duration) *RedisCartRepository {
	return &RedisCartRepository{
		client:     client,
		cartTTL:    cartTTL,
		pendingTTL: pendingTTL,
	}
}

func (r *RedisCartRepository) cartKey(userID string) string {
	return fmt.Sprintf("cart:user:%s", userID)
}

func (r *RedisCartRepository) voucherKey(userID string) string {
	return fmt.Sprintf("voucher:user:%s", userID)
}

func (r *RedisCartRepository) pendingKey(guestID string) string {
	return fmt.Sprintf("pending:add:%s", guestID)
}

// GetCart returns the user's cart. A missing or malformed stored value is an
// empty cart, never an error: corrupt state must not take the storefront down.
func (r *RedisCartRepository) GetCart(ctx context.Context, userID string) (*models.Cart, error) {
	data, err := r.client.Get(ctx, r.cartKey(userID)).Result()
	if err == redis.Nil {
		return emptyCart(userID), nil
	}
	if err != nil {
		return nil, err
	}
	return decodeCart(userID, []byte(data)), nil
}

func (r *RedisCartRepository) SaveCart(ctx context.Context, cart *models.Cart) error {
	cart.UpdatedAt = time.Now()

	data, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.cartKey(cart.UserID), data, r.cartTTL).Err()
}

func (r *RedisCartRepository) DeleteCart(ctx context.Context, userID string) error {
	return r.client.Del(ctx, r.cartKey(userID)).Err()
}

func (r *RedisCartRepository) GetActiveVoucherCode(ctx context.Context, userID string) (string, error) {
	code, err := r.client.Get(ctx, r.voucherKey(userID)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return code, nil
}

func (r *RedisCartRepository) SetActiveVoucherCode(ctx context.Context, userID, code string) error {
	return r.client.Set(ctx, r.voucherKey(userID), code, r.cartTTL).Err()
}

func (r *RedisCartRepository) ClearActiveVoucherCode(ctx context.Context, userID string) error {
	return r.client.Del(ctx, r.voucherKey(userID)).Err()
}

func (r *RedisCartRepository) GetPendingAdd(ctx context.Context, guestID string) (*models.PendingAdd, error) {
	data, err := r.client.Get(ctx, r.pendingKey(guestID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var intent models.PendingAdd
	if err := json.Unmarshal([]byte(data), &intent); err != nil {
		// Same policy as the cart blob: a corrupt intent is dropped.
		return nil, nil
	}
	return &intent, nil
}

func (r *RedisCartRepository) SetPendingAdd(ctx context.Context, guestID string, intent *models.PendingAdd) error {
	data, err := json.Marshal(intent)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.pendingKey(guestID), data, r.pendingTTL).Err()
}

func (r *RedisCartRepository) DeletePendingAdd(ctx context.Context, guestID string) error {
	return r.client.Del(ctx, r.pendingKey(guestID)).Err()
}

func emptyCart(userID string) *models.Cart {
	return &models.Cart{UserID: userID, Items: []models.CartItem{}}
}

// decodeCart unmarshals a stored cart blob, falling back to an empty cart
// when the blob does not parse.
func decodeCart(userID string, data []byte) *models.Cart {
	var cart models.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return emptyCart(userID)
	}
	cart.UserID = userID
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	return &cart
}
