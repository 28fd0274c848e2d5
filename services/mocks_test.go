package services_test

import (
	"context"

	"offistation-service/models"
	"offistation-service/repository"
)

// --- Mock cart repository ---

// mockCartRepo keeps carts, voucher codes, and pending adds in memory. Carts
// are cloned on the way in and out so a caller's mutations only stick after
// SaveCart, matching the real persistence boundary.
type mockCartRepo struct {
	carts    map[string]*models.Cart
	vouchers map[string]string
	pending  map[string]*models.PendingAdd
}

func newMockCartRepo() *mockCartRepo {
	return &mockCartRepo{
		carts:    make(map[string]*models.Cart),
		vouchers: make(map[string]string),
		pending:  make(map[string]*models.PendingAdd),
	}
}

func cloneCart(c *models.Cart) *models.Cart {
	out := *c
	out.Items = append([]models.CartItem{}, c.Items...)
	return &out
}

func (m *mockCartRepo) GetCart(_ context.Context, userID string) (*models.Cart, error) {
	if c, ok := m.carts[userID]; ok {
		return cloneCart(c), nil
	}
	return &models.Cart{UserID: userID, Items: []models.CartItem{}}, nil
}

func (m *mockCartRepo) SaveCart(_ context.Context, cart *models.Cart) error {
	m.carts[cart.UserID] = cloneCart(cart)
	return nil
}

func (m *mockCartRepo) DeleteCart(_ context.Context, userID string) error {
	delete(m.carts, userID)
	return nil
}

func (m *mockCartRepo) GetActiveVoucherCode(_ context.Context, userID string) (string, error) {
	return m.vouchers[userID], nil
}

func (m *mockCartRepo) SetActiveVoucherCode(_ context.Context, userID, code string) error {
	m.vouchers[userID] = code
	return nil
}

func (m *mockCartRepo) ClearActiveVoucherCode(_ context.Context, userID string) error {
	delete(m.vouchers, userID)
	return nil
}

func (m *mockCartRepo) GetPendingAdd(_ context.Context, guestID string) (*models.PendingAdd, error) {
	return m.pending[guestID], nil
}

func (m *mockCartRepo) SetPendingAdd(_ context.Context, guestID string, intent *models.PendingAdd) error {
	m.pending[guestID] = intent
	return nil
}

func (m *mockCartRepo) DeletePendingAdd(_ context.Context, guestID string) error {
	delete(m.pending, guestID)
	return nil
}

// --- Mock product repository ---

type mockProductRepo struct {
	products map[string]models.Product
}

func newMockProductRepo(products ...models.Product) *mockProductRepo {
	m := &mockProductRepo{products: make(map[string]models.Product)}
	for _, p := range products {
		m.products[p.ID] = p
	}
	return m
}

func (m *mockProductRepo) FindAll(_ context.Context) ([]models.Product, error) {
	var out []models.Product
	for _, p := range m.products {
		out = append(out, p)
	}
	return out, nil
}

func (m *mockProductRepo) FindByID(_ context.Context, id string) (*models.Product, error) {
	if p, ok := m.products[id]; ok {
		return &p, nil
	}
	return nil, repository.ErrProductNotFound
}

func (m *mockProductRepo) EnsureSeed(_ context.Context) error {
	return nil
}
