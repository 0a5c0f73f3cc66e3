// AngelaMos | 2026
// service_test.go

package cart

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelamos/gearstore/internal/core"
)

type fakeRepository struct {
	carts map[string]*Cart // by user id
	byID  map[string]*Cart
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		carts: map[string]*Cart{},
		byID:  map[string]*Cart{},
	}
}

func (f *fakeRepository) Create(_ context.Context, c *Cart) error {
	stored := &Cart{ID: c.ID, UserID: c.UserID, Items: []CartItem{}}
	f.carts[c.UserID] = stored
	f.byID[c.ID] = stored
	c.Items = []CartItem{}
	return nil
}

func (f *fakeRepository) GetByUserID(
	_ context.Context,
	userID string,
) (*Cart, error) {
	c, ok := f.carts[userID]
	if !ok {
		return nil, fmt.Errorf("get cart: %w", core.ErrNotFound)
	}

	out := *c
	out.Items = append([]CartItem{}, c.Items...)
	return &out, nil
}

func (f *fakeRepository) AddItem(
	_ context.Context,
	cartID string,
	item CartItem,
) error {
	c := f.byID[cartID]
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			// merge keeps the original snapshot
			c.Items[i].Quantity += item.Quantity
			return nil
		}
	}
	c.Items = append(c.Items, item)
	return nil
}

func (f *fakeRepository) UpdateItemQuantity(
	_ context.Context,
	cartID, productID string,
	quantity int,
) error {
	c := f.byID[cartID]
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity
			return nil
		}
	}
	return fmt.Errorf("update cart item: %w", core.ErrNotFound)
}

func (f *fakeRepository) RemoveItem(
	_ context.Context,
	cartID, productID string,
) error {
	c := f.byID[cartID]
	kept := c.Items[:0]
	for _, item := range c.Items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	c.Items = kept
	return nil
}

func (f *fakeRepository) Clear(_ context.Context, cartID string) error {
	f.byID[cartID].Items = []CartItem{}
	return nil
}

type fakeProducts struct {
	products map[string]*CatalogProduct
}

func (f *fakeProducts) GetForCart(
	_ context.Context,
	productID string,
) (*CatalogProduct, error) {
	p, ok := f.products[productID]
	if !ok {
		return nil, fmt.Errorf("get product: %w", core.ErrNotFound)
	}

	out := *p
	return &out, nil
}

func newTestService() (*Service, *fakeProducts) {
	products := &fakeProducts{products: map[string]*CatalogProduct{
		"kb-1": {
			ID:    "kb-1",
			Name:  "Mechanical RGB Keyboard",
			Price: decimal.RequireFromString("149.99"),
			Image: "/images/keyboard.jpg",
		},
		"ms-1": {
			ID:    "ms-1",
			Name:  "Pro Gaming Mouse",
			Price: decimal.RequireFromString("89.99"),
			Image: "/images/mouse.jpg",
		},
	}}

	return NewService(newFakeRepository(), products), products
}

func TestGetCartCreatesEmptyCartOnFirstUse(t *testing.T) {
	svc, _ := newTestService()

	c, err := svc.GetCart(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, "user-1", c.UserID)
	assert.NotEmpty(t, c.ID)
	assert.Empty(t, c.Items)

	again, err := svc.GetCart(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, c.ID, again.ID)
}

func TestAddItemSnapshotsProduct(t *testing.T) {
	svc, _ := newTestService()

	c, err := svc.AddItem(context.Background(), "user-1", AddItemRequest{
		ProductID: "kb-1",
		Quantity:  1,
	})
	require.NoError(t, err)

	require.Len(t, c.Items, 1)
	item := c.Items[0]
	assert.Equal(t, "kb-1", item.ProductID)
	assert.Equal(t, "Mechanical RGB Keyboard", item.Name)
	assert.True(t, item.Price.Equal(decimal.RequireFromString("149.99")))
	assert.Equal(t, "/images/keyboard.jpg", item.Image)
	assert.Equal(t, 1, item.Quantity)
}

func TestAddItemUnknownProduct(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.AddItem(context.Background(), "user-1", AddItemRequest{
		ProductID: "nope",
	})
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestAddItemDefaultsQuantityToOne(t *testing.T) {
	svc, _ := newTestService()

	c, err := svc.AddItem(context.Background(), "user-1", AddItemRequest{
		ProductID: "ms-1",
	})
	require.NoError(t, err)
	require.Len(t, c.Items, 1)
	assert.Equal(t, 1, c.Items[0].Quantity)
}

func TestAddItemMergesDuplicateProduct(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "user-1", AddItemRequest{
		ProductID: "kb-1", Quantity: 1,
	})
	require.NoError(t, err)

	c, err := svc.AddItem(ctx, "user-1", AddItemRequest{
		ProductID: "kb-1", Quantity: 3,
	})
	require.NoError(t, err)

	require.Len(t, c.Items, 1)
	assert.Equal(t, 4, c.Items[0].Quantity)
}

func TestAddItemKeepsSnapshotOnPriceChange(t *testing.T) {
	svc, products := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "user-1", AddItemRequest{
		ProductID: "kb-1", Quantity: 1,
	})
	require.NoError(t, err)

	products.products["kb-1"].Price = decimal.RequireFromString("999.99")

	c, err := svc.AddItem(ctx, "user-1", AddItemRequest{
		ProductID: "kb-1", Quantity: 1,
	})
	require.NoError(t, err)

	require.Len(t, c.Items, 1)
	assert.True(t, c.Items[0].Price.Equal(
		decimal.RequireFromString("149.99")))
	assert.Equal(t, 2, c.Items[0].Quantity)
}

func TestCartTotal(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "user-1", AddItemRequest{
		ProductID: "kb-1", Quantity: 1,
	})
	require.NoError(t, err)

	c, err := svc.AddItem(ctx, "user-1", AddItemRequest{
		ProductID: "ms-1", Quantity: 2,
	})
	require.NoError(t, err)

	assert.True(t, c.Total().Equal(decimal.RequireFromString("329.97")),
		"got total %s", c.Total())
}

func TestUpdateItemReplacesQuantity(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "user-1", AddItemRequest{
		ProductID: "kb-1", Quantity: 1,
	})
	require.NoError(t, err)

	c, err := svc.UpdateItem(ctx, "user-1", "kb-1", 5)
	require.NoError(t, err)

	require.Len(t, c.Items, 1)
	assert.Equal(t, 5, c.Items[0].Quantity)
}

func TestUpdateItemZeroQuantityRemovesLine(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "user-1", AddItemRequest{
		ProductID: "kb-1", Quantity: 2,
	})
	require.NoError(t, err)

	c, err := svc.UpdateItem(ctx, "user-1", "kb-1", 0)
	require.NoError(t, err)
	assert.Empty(t, c.Items)
}

func TestUpdateItemNotInCart(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "user-1", AddItemRequest{
		ProductID: "kb-1", Quantity: 1,
	})
	require.NoError(t, err)

	_, err = svc.UpdateItem(ctx, "user-1", "ms-1", 2)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestUpdateItemWithoutCart(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.UpdateItem(context.Background(), "user-1", "kb-1", 2)
	require.ErrorIs(t, err, core.ErrNotFound)
	assert.NotErrorIs(t, err, ErrItemNotFound)
}

func TestRemoveItemIsIdempotent(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "user-1", AddItemRequest{
		ProductID: "kb-1", Quantity: 1,
	})
	require.NoError(t, err)

	c, err := svc.RemoveItem(ctx, "user-1", "kb-1")
	require.NoError(t, err)
	assert.Empty(t, c.Items)

	// removing the same product again is a no-op
	c, err = svc.RemoveItem(ctx, "user-1", "kb-1")
	require.NoError(t, err)
	assert.Empty(t, c.Items)
}

func TestRemoveItemWithoutCart(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.RemoveItem(context.Background(), "user-1", "kb-1")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestClearCart(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "user-1", AddItemRequest{
		ProductID: "kb-1", Quantity: 1,
	})
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "user-1", AddItemRequest{
		ProductID: "ms-1", Quantity: 2,
	})
	require.NoError(t, err)

	c, err := svc.ClearCart(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, c.Items)
	assert.True(t, c.Total().IsZero())
}
