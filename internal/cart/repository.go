// AngelaMos | 2026
// repository.go

package cart

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/angelamos/gearstore/internal/core"
)

type Repository interface {
	Create(ctx context.Context, cart *Cart) error
	GetByUserID(ctx context.Context, userID string) (*Cart, error)
	AddItem(ctx context.Context, cartID string, item CartItem) error
	UpdateItemQuantity(
		ctx context.Context,
		cartID, productID string,
		quantity int,
	) error
	RemoveItem(ctx context.Context, cartID, productID string) error
	Clear(ctx context.Context, cartID string) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, cart *Cart) error {
	query := `
		INSERT INTO carts (id, user_id)
		VALUES ($1, $2)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, cart, query, cart.ID, cart.UserID)
	if err != nil {
		return fmt.Errorf("create cart: %w", err)
	}

	cart.Items = []CartItem{}
	return nil
}

func (r *repository) GetByUserID(
	ctx context.Context,
	userID string,
) (*Cart, error) {
	query := `
		SELECT id, user_id, created_at, updated_at
		FROM carts
		WHERE user_id = $1`

	var cart Cart
	err := r.db.GetContext(ctx, &cart, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get cart: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}

	itemsQuery := `
		SELECT cart_id, product_id, name, price, image, quantity
		FROM cart_items
		WHERE cart_id = $1
		ORDER BY added_at`

	cart.Items = []CartItem{}
	if err := r.db.SelectContext(ctx, &cart.Items, itemsQuery, cart.ID); err != nil {
		return nil, fmt.Errorf("get cart items: %w", err)
	}

	return &cart, nil
}

// AddItem inserts the snapshot line or, when the product is already in
// the cart, bumps its quantity. The original snapshot columns win the
// conflict so a later price change never leaks in.
func (r *repository) AddItem(
	ctx context.Context,
	cartID string,
	item CartItem,
) error {
	query := `
		INSERT INTO cart_items (cart_id, product_id, name, price, image, quantity)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (cart_id, product_id) DO UPDATE SET
			quantity = cart_items.quantity + EXCLUDED.quantity`

	_, err := r.db.ExecContext(ctx, query,
		cartID,
		item.ProductID,
		item.Name,
		item.Price,
		item.Image,
		item.Quantity,
	)
	if err != nil {
		return fmt.Errorf("add cart item: %w", err)
	}

	return r.touch(ctx, cartID)
}

func (r *repository) UpdateItemQuantity(
	ctx context.Context,
	cartID, productID string,
	quantity int,
) error {
	query := `
		UPDATE cart_items
		SET quantity = $3
		WHERE cart_id = $1 AND product_id = $2`

	result, err := r.db.ExecContext(ctx, query, cartID, productID, quantity)
	if err != nil {
		return fmt.Errorf("update cart item: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update cart item: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("update cart item: %w", core.ErrNotFound)
	}

	return r.touch(ctx, cartID)
}

// RemoveItem deletes the line if present. Removing an absent product is
// not an error.
func (r *repository) RemoveItem(
	ctx context.Context,
	cartID, productID string,
) error {
	query := `
		DELETE FROM cart_items
		WHERE cart_id = $1 AND product_id = $2`

	if _, err := r.db.ExecContext(ctx, query, cartID, productID); err != nil {
		return fmt.Errorf("remove cart item: %w", err)
	}

	return r.touch(ctx, cartID)
}

func (r *repository) Clear(ctx context.Context, cartID string) error {
	query := `DELETE FROM cart_items WHERE cart_id = $1`

	if _, err := r.db.ExecContext(ctx, query, cartID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}

	return r.touch(ctx, cartID)
}

func (r *repository) touch(ctx context.Context, cartID string) error {
	query := `UPDATE carts SET updated_at = NOW() WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, cartID); err != nil {
		return fmt.Errorf("touch cart: %w", err)
	}

	return nil
}
