// AngelaMos | 2026
// service_test.go

package order

import (
	"context"
	"fmt"
	"regexp"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelamos/gearstore/internal/cart"
	"github.com/angelamos/gearstore/internal/core"
)

type fakeOrderRepository struct {
	orders       map[string]*Order
	clearedCarts []string
	failFirst    bool
	createCalls  int
	usedNumbers  []string
}

func newFakeOrderRepository() *fakeOrderRepository {
	return &fakeOrderRepository{orders: map[string]*Order{}}
}

func (f *fakeOrderRepository) CreateWithCartClear(
	_ context.Context,
	order *Order,
	cartID string,
) error {
	f.createCalls++
	f.usedNumbers = append(f.usedNumbers, order.OrderNumber)

	if f.failFirst && f.createCalls == 1 {
		return fmt.Errorf("create order: %w", core.ErrDuplicateKey)
	}

	stored := *order
	f.orders[order.ID] = &stored
	f.clearedCarts = append(f.clearedCarts, cartID)
	return nil
}

func (f *fakeOrderRepository) GetByID(
	_ context.Context,
	id string,
) (*Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, fmt.Errorf("get order: %w", core.ErrNotFound)
	}
	return o, nil
}

func (f *fakeOrderRepository) GetByUserID(
	_ context.Context,
	userID string,
) ([]Order, error) {
	out := []Order{}
	for _, o := range f.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepository) UpdateStatus(
	_ context.Context,
	id, status string,
) (*Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, fmt.Errorf("update order status: %w", core.ErrNotFound)
	}
	o.Status = status
	return o, nil
}

type fakeCarts struct {
	carts map[string]*cart.Cart
}

func (f *fakeCarts) GetCart(
	_ context.Context,
	userID string,
) (*cart.Cart, error) {
	c, ok := f.carts[userID]
	if !ok {
		return &cart.Cart{ID: "cart-" + userID, UserID: userID}, nil
	}
	return c, nil
}

func testCart(userID string) *cart.Cart {
	return &cart.Cart{
		ID:     "cart-1",
		UserID: userID,
		Items: []cart.CartItem{
			{
				ProductID: "kb-1",
				Name:      "Mechanical RGB Keyboard",
				Price:     decimal.RequireFromString("149.99"),
				Image:     "/images/keyboard.jpg",
				Quantity:  1,
			},
			{
				ProductID: "ms-1",
				Name:      "Pro Gaming Mouse",
				Price:     decimal.RequireFromString("89.99"),
				Image:     "/images/mouse.jpg",
				Quantity:  2,
			},
		},
	}
}

func shippingRequest() CreateOrderRequest {
	return CreateOrderRequest{
		ShippingAddress: ShippingAddress{
			FullName: "Ada Lovelace",
			Address:  "1 Analytical Way",
			City:     "London",
			State:    "LDN",
			ZipCode:  "E1 6AN",
			Country:  "UK",
		},
		PaymentMethod: "card",
	}
}

func TestCheckout(t *testing.T) {
	repo := newFakeOrderRepository()
	carts := &fakeCarts{carts: map[string]*cart.Cart{
		"user-1": testCart("user-1"),
	}}
	svc := NewService(repo, carts)

	order, err := svc.Checkout(context.Background(), "user-1", shippingRequest())
	require.NoError(t, err)

	assert.True(t, order.Total.Equal(decimal.RequireFromString("329.97")),
		"got total %s", order.Total)
	assert.Equal(t, StatusProcessing, order.Status)
	assert.Len(t, order.Items, 2)
	assert.Equal(t, "Ada Lovelace", order.FullName)
	assert.Equal(t, []string{"cart-1"}, repo.clearedCarts)
	assert.Regexp(t, `^ORD-[0-9A-Z]+-[0-9A-Z]{5}$`, order.OrderNumber)
}

func TestCheckoutEmptyCart(t *testing.T) {
	repo := newFakeOrderRepository()
	carts := &fakeCarts{carts: map[string]*cart.Cart{}}
	svc := NewService(repo, carts)

	_, err := svc.Checkout(context.Background(), "user-1", shippingRequest())
	require.ErrorIs(t, err, core.ErrEmptyCart)
	assert.Zero(t, repo.createCalls, "empty cart must not create an order")
}

func TestCheckoutRetriesOnDuplicateOrderNumber(t *testing.T) {
	repo := newFakeOrderRepository()
	repo.failFirst = true
	carts := &fakeCarts{carts: map[string]*cart.Cart{
		"user-1": testCart("user-1"),
	}}
	svc := NewService(repo, carts)

	order, err := svc.Checkout(context.Background(), "user-1", shippingRequest())
	require.NoError(t, err)

	require.Equal(t, 2, repo.createCalls)
	require.Len(t, repo.usedNumbers, 2)
	assert.NotEqual(t, repo.usedNumbers[0], repo.usedNumbers[1],
		"retry must generate a fresh order number")
	assert.Equal(t, repo.usedNumbers[1], order.OrderNumber)
}

func TestGetOrderOwnership(t *testing.T) {
	repo := newFakeOrderRepository()
	repo.orders["order-1"] = &Order{
		ID:     "order-1",
		UserID: "user-1",
		Status: StatusProcessing,
	}
	svc := NewService(repo, &fakeCarts{})

	order, err := svc.GetOrder(context.Background(), "user-1", "order-1")
	require.NoError(t, err)
	assert.Equal(t, "order-1", order.ID)

	_, err = svc.GetOrder(context.Background(), "user-2", "order-1")
	assert.ErrorIs(t, err, core.ErrForbidden)

	_, err = svc.GetOrder(context.Background(), "user-1", "missing")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestUpdateStatus(t *testing.T) {
	repo := newFakeOrderRepository()
	repo.orders["order-1"] = &Order{
		ID:     "order-1",
		UserID: "user-1",
		Status: StatusProcessing,
	}
	svc := NewService(repo, &fakeCarts{})

	order, err := svc.UpdateStatus(context.Background(), "order-1", StatusShipped)
	require.NoError(t, err)
	assert.Equal(t, StatusShipped, order.Status)

	// arbitrary overwrite is allowed, including going backwards
	order, err = svc.UpdateStatus(context.Background(), "order-1", StatusProcessing)
	require.NoError(t, err)
	assert.Equal(t, StatusProcessing, order.Status)

	_, err = svc.UpdateStatus(context.Background(), "order-1", "refunded")
	assert.ErrorIs(t, err, core.ErrInvalidInput)

	_, err = svc.UpdateStatus(context.Background(), "missing", StatusShipped)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestGenerateOrderNumberFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^ORD-[0-9A-Z]+-[0-9A-Z]{5}$`)

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		number := GenerateOrderNumber()
		assert.Regexp(t, pattern, number)
		seen[number] = true
	}

	assert.Greater(t, len(seen), 90, "order numbers should rarely collide")
}
