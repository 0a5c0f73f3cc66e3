// AngelaMos | 2026
// repository.go

package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/angelamos/gearstore/internal/core"
)

type Repository interface {
	CreateWithCartClear(ctx context.Context, order *Order, cartID string) error
	GetByID(ctx context.Context, id string) (*Order, error)
	GetByUserID(ctx context.Context, userID string) ([]Order, error)
	UpdateStatus(ctx context.Context, id, status string) (*Order, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository takes the pool directly because checkout opens its own
// transaction.
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// CreateWithCartClear inserts the order with its line items and empties
// the cart in one transaction, so a failed insert leaves the cart
// intact and a cleared cart always has its order.
func (r *repository) CreateWithCartClear(
	ctx context.Context,
	order *Order,
	cartID string,
) error {
	err := core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO orders (id, user_id, order_number, total, status,
			                    ship_full_name, ship_address, ship_city,
			                    ship_state, ship_zip_code, ship_country,
			                    payment_method)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			RETURNING created_at, updated_at`

		err := tx.QueryRowxContext(ctx, query,
			order.ID,
			order.UserID,
			order.OrderNumber,
			order.Total,
			order.Status,
			order.FullName,
			order.Address,
			order.City,
			order.State,
			order.ZipCode,
			order.Country,
			order.PaymentMethod,
		).Scan(&order.CreatedAt, &order.UpdatedAt)
		if err != nil {
			return fmt.Errorf("insert order: %w", err)
		}

		itemQuery := `
			INSERT INTO order_items (order_id, product_id, name, price, image, quantity)
			VALUES ($1, $2, $3, $4, $5, $6)`

		for i := range order.Items {
			item := &order.Items[i]
			item.OrderID = order.ID

			_, err := tx.ExecContext(ctx, itemQuery,
				item.OrderID,
				item.ProductID,
				item.Name,
				item.Price,
				item.Image,
				item.Quantity,
			)
			if err != nil {
				return fmt.Errorf("insert order item: %w", err)
			}
		}

		_, err = tx.ExecContext(ctx,
			`DELETE FROM cart_items WHERE cart_id = $1`, cartID)
		if err != nil {
			return fmt.Errorf("clear cart: %w", err)
		}

		return nil
	})
	if err != nil {
		if isDuplicateKeyError(err) {
			return fmt.Errorf("create order: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create order: %w", err)
	}

	return nil
}

const orderColumns = `id, user_id, order_number, total, status,
       ship_full_name, ship_address, ship_city, ship_state,
       ship_zip_code, ship_country, payment_method,
       created_at, updated_at`

func (r *repository) GetByID(ctx context.Context, id string) (*Order, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM orders
		WHERE id = $1`, orderColumns)

	var order Order
	err := r.db.GetContext(ctx, &order, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get order: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	if err := r.loadItems(ctx, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *repository) GetByUserID(
	ctx context.Context,
	userID string,
) ([]Order, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC`, orderColumns)

	orders := []Order{}
	if err := r.db.SelectContext(ctx, &orders, query, userID); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	for i := range orders {
		if err := r.loadItems(ctx, &orders[i]); err != nil {
			return nil, err
		}
	}

	return orders, nil
}

func (r *repository) UpdateStatus(
	ctx context.Context,
	id, status string,
) (*Order, error) {
	query := `
		UPDATE orders
		SET status = $2, updated_at = NOW()
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, status)
	if err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}
	if rows == 0 {
		return nil, fmt.Errorf("update order status: %w", core.ErrNotFound)
	}

	return r.GetByID(ctx, id)
}

func (r *repository) loadItems(ctx context.Context, order *Order) error {
	query := `
		SELECT order_id, product_id, name, price, image, quantity
		FROM order_items
		WHERE order_id = $1
		ORDER BY product_id`

	order.Items = []OrderItem{}
	err := r.db.SelectContext(ctx, &order.Items, query, order.ID)
	if err != nil {
		return fmt.Errorf("load order items: %w", err)
	}

	return nil
}

func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
