// AngelaMos | 2026
// repository.go

package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/angelamos/gearstore/internal/core"
)

type Repository interface {
	List(ctx context.Context, params ListParams) ([]Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	GetByCategory(ctx context.Context, category string) ([]Product, error)
	Create(ctx context.Context, product *Product) error
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id string) error
	Upsert(ctx context.Context, product *Product) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const productColumns = `id, name, price, image, rating, category,
       description, features, in_stock, stock, created_at, updated_at`

// List expects params to be normalized already; the sort key maps to a
// fixed ORDER BY clause, never to interpolated user input.
func (r *repository) List(
	ctx context.Context,
	params ListParams,
) ([]Product, error) {
	var (
		clauses []string
		args    []any
	)

	if params.Category != "" {
		args = append(args, params.Category)
		clauses = append(clauses, fmt.Sprintf("category = $%d", len(args)))
	}

	if params.Search != "" {
		args = append(args, "%"+params.Search+"%")
		clauses = append(clauses, fmt.Sprintf("name ILIKE $%d", len(args)))
	}

	where := ""
	if len(clauses) > 0 {
		where = "WHERE " + strings.Join(clauses, " AND ")
	}

	var orderBy string
	switch params.Sort {
	case SortPriceAsc:
		orderBy = "price ASC"
	case SortPriceDesc:
		orderBy = "price DESC"
	case SortRating:
		orderBy = "rating DESC"
	default:
		orderBy = "created_at DESC"
	}

	args = append(args, params.Limit)
	query := fmt.Sprintf(`
		SELECT %s
		FROM products
		%s
		ORDER BY %s
		LIMIT $%d`,
		productColumns, where, orderBy, len(args),
	)

	products := []Product{}
	if err := r.db.SelectContext(ctx, &products, query, args...); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	return products, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Product, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM products
		WHERE id = $1`, productColumns)

	var product Product
	err := r.db.GetContext(ctx, &product, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get product: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}

	return &product, nil
}

func (r *repository) GetByCategory(
	ctx context.Context,
	category string,
) ([]Product, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM products
		WHERE category = $1
		ORDER BY created_at DESC`, productColumns)

	products := []Product{}
	err := r.db.SelectContext(ctx, &products, query, category)
	if err != nil {
		return nil, fmt.Errorf("list products by category: %w", err)
	}

	return products, nil
}

func (r *repository) Create(ctx context.Context, product *Product) error {
	query := `
		INSERT INTO products (id, name, price, image, rating, category,
		                      description, features, in_stock, stock)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, product, query,
		product.ID,
		product.Name,
		product.Price,
		product.Image,
		product.Rating,
		product.Category,
		product.Description,
		product.Features,
		product.InStock,
		product.Stock,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return fmt.Errorf("create product: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create product: %w", err)
	}

	return nil
}

func (r *repository) Update(ctx context.Context, product *Product) error {
	query := `
		UPDATE products
		SET name = $2, price = $3, image = $4, rating = $5, category = $6,
		    description = $7, features = $8, in_stock = $9, stock = $10,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &product.UpdatedAt, query,
		product.ID,
		product.Name,
		product.Price,
		product.Image,
		product.Rating,
		product.Category,
		product.Description,
		product.Features,
		product.InStock,
		product.Stock,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update product: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}

	return nil
}

// Delete removes the catalog row only. Cart and order line items carry
// their own snapshot columns and are left untouched.
func (r *repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("delete product: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) Upsert(ctx context.Context, product *Product) error {
	query := `
		INSERT INTO products (id, name, price, image, rating, category,
		                      description, features, in_stock, stock)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			price = EXCLUDED.price,
			image = EXCLUDED.image,
			rating = EXCLUDED.rating,
			category = EXCLUDED.category,
			description = EXCLUDED.description,
			features = EXCLUDED.features,
			in_stock = EXCLUDED.in_stock,
			stock = EXCLUDED.stock,
			updated_at = NOW()`

	_, err := r.db.ExecContext(ctx, query,
		product.ID,
		product.Name,
		product.Price,
		product.Image,
		product.Rating,
		product.Category,
		product.Description,
		product.Features,
		product.InStock,
		product.Stock,
	)
	if err != nil {
		return fmt.Errorf("upsert product: %w", err)
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
