// AngelaMos | 2026
// service.go

package product

import (
	"context"
	"fmt"

	"github.com/angelamos/gearstore/internal/cart"
	"github.com/angelamos/gearstore/internal/core"
)

type Service struct {
	repo         Repository
	defaultLimit int
	maxLimit     int
}

func NewService(repo Repository, defaultLimit, maxLimit int) *Service {
	return &Service{
		repo:         repo,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

func (s *Service) List(
	ctx context.Context,
	params ListParams,
) ([]Product, error) {
	return s.repo.List(ctx, params.Normalize(s.defaultLimit, s.maxLimit))
}

func (s *Service) Get(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByCategory(
	ctx context.Context,
	category string,
) ([]Product, error) {
	return s.repo.GetByCategory(ctx, category)
}

func (s *Service) Create(
	ctx context.Context,
	req CreateProductRequest,
) (*Product, error) {
	if !IsValidCategory(req.Category) {
		return nil, fmt.Errorf(
			"create product: unknown category %q: %w",
			req.Category, core.ErrInvalidInput,
		)
	}
	if req.Price.IsNegative() {
		return nil, fmt.Errorf(
			"create product: negative price: %w", core.ErrInvalidInput)
	}

	product := &Product{
		ID:          req.ID,
		Name:        req.Name,
		Price:       req.Price,
		Image:       req.Image,
		Rating:      req.Rating,
		Category:    req.Category,
		Description: req.Description,
		Features:    req.Features,
		InStock:     req.InStock,
		Stock:       req.Stock,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (s *Service) Update(
	ctx context.Context,
	id string,
	req UpdateProductRequest,
) (*Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyUpdate(product, req)

	if !IsValidCategory(product.Category) {
		return nil, fmt.Errorf(
			"update product: unknown category %q: %w",
			product.Category, core.ErrInvalidInput,
		)
	}
	if product.Price.IsNegative() {
		return nil, fmt.Errorf(
			"update product: negative price: %w", core.ErrInvalidInput)
	}

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// GetForCart resolves the snapshot fields the cart copies at add time.
func (s *Service) GetForCart(
	ctx context.Context,
	productID string,
) (*cart.CatalogProduct, error) {
	p, err := s.repo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	return &cart.CatalogProduct{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price,
		Image: p.Image,
	}, nil
}

var _ cart.ProductProvider = (*Service)(nil)

func applyUpdate(product *Product, req UpdateProductRequest) {
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Image != nil {
		product.Image = *req.Image
	}
	if req.Rating != nil {
		product.Rating = *req.Rating
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Features != nil {
		product.Features = *req.Features
	}
	if req.InStock != nil {
		product.InStock = *req.InStock
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
}
