// AngelaMos | 2026
// service.go

package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/angelamos/gearstore/internal/core"
)

// ErrItemNotFound marks a quantity update against a product that is
// not in the cart.
var ErrItemNotFound = fmt.Errorf("item not in cart: %w", core.ErrNotFound)

// CatalogProduct is the slice of the catalog row the cart snapshots.
type CatalogProduct struct {
	ID    string
	Name  string
	Price decimal.Decimal
	Image string
}

// ProductProvider resolves a product at add time. Returns an error
// wrapping core.ErrNotFound when the id is unknown.
type ProductProvider interface {
	GetForCart(ctx context.Context, productID string) (*CatalogProduct, error)
}

type Service struct {
	repo     Repository
	products ProductProvider
}

func NewService(repo Repository, products ProductProvider) *Service {
	return &Service{repo: repo, products: products}
}

// GetCart returns the user's cart, creating an empty one on first use.
func (s *Service) GetCart(ctx context.Context, userID string) (*Cart, error) {
	c, err := s.repo.GetByUserID(ctx, userID)
	if errors.Is(err, core.ErrNotFound) {
		return s.createCart(ctx, userID)
	}
	if err != nil {
		return nil, err
	}

	return c, nil
}

// AddItem snapshots the product and merges it into the cart. Adding a
// product already present increments its quantity but keeps the
// original snapshot.
func (s *Service) AddItem(
	ctx context.Context,
	userID string,
	req AddItemRequest,
) (*Cart, error) {
	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	p, err := s.products.GetForCart(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	c, err := s.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	item := CartItem{
		CartID:    c.ID,
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Quantity:  quantity,
	}

	if err := s.repo.AddItem(ctx, c.ID, item); err != nil {
		return nil, err
	}

	return s.repo.GetByUserID(ctx, userID)
}

// UpdateItem replaces the line quantity. Zero or negative removes the
// line. Unknown carts and absent products both surface as not found.
func (s *Service) UpdateItem(
	ctx context.Context,
	userID, productID string,
	quantity int,
) (*Cart, error) {
	c, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !containsProduct(c.Items, productID) {
		return nil, ErrItemNotFound
	}

	if quantity <= 0 {
		err = s.repo.RemoveItem(ctx, c.ID, productID)
	} else {
		err = s.repo.UpdateItemQuantity(ctx, c.ID, productID, quantity)
	}
	if err != nil {
		return nil, err
	}

	return s.repo.GetByUserID(ctx, userID)
}

// RemoveItem deletes the line if present. Removing a product that is
// not in the cart is a no-op, not an error.
func (s *Service) RemoveItem(
	ctx context.Context,
	userID, productID string,
) (*Cart, error) {
	c, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.RemoveItem(ctx, c.ID, productID); err != nil {
		return nil, err
	}

	return s.repo.GetByUserID(ctx, userID)
}

func (s *Service) ClearCart(ctx context.Context, userID string) (*Cart, error) {
	c, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Clear(ctx, c.ID); err != nil {
		return nil, err
	}

	return s.repo.GetByUserID(ctx, userID)
}

func (s *Service) createCart(ctx context.Context, userID string) (*Cart, error) {
	c := &Cart{
		ID:     uuid.New().String(),
		UserID: userID,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func containsProduct(items []CartItem, productID string) bool {
	for _, item := range items {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}
