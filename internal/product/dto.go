// AngelaMos | 2026
// dto.go

package product

import "github.com/shopspring/decimal"

// Sort keys accepted by the listing endpoint. Anything else falls back
// to SortNewest.
const (
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortRating    = "rating"
	SortNewest    = "newest"
)

// ListParams is the normalized form of the catalog query string.
type ListParams struct {
	Category string
	Search   string
	Sort     string
	Limit    int
}

// Normalize clamps the limit into [1, maxLimit], defaults a missing or
// non-positive limit, maps the "all" category sentinel to no filter,
// and falls unknown sort keys back to newest-first.
func (p ListParams) Normalize(defaultLimit, maxLimit int) ListParams {
	if p.Category == "all" {
		p.Category = ""
	}

	switch p.Sort {
	case SortPriceAsc, SortPriceDesc, SortRating, SortNewest:
	default:
		p.Sort = SortNewest
	}

	if p.Limit <= 0 {
		p.Limit = defaultLimit
	}
	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}

	return p
}

type CreateProductRequest struct {
	ID          string          `json:"id" validate:"required,max=64"`
	Name        string          `json:"name" validate:"required,max=200"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Image       string          `json:"image" validate:"required"`
	Rating      int             `json:"rating" validate:"gte=0,max=5"`
	Category    string          `json:"category" validate:"required"`
	Description string          `json:"description" validate:"required"`
	Features    Features        `json:"features"`
	InStock     bool            `json:"inStock"`
	Stock       int             `json:"stock" validate:"gte=0"`
}

type UpdateProductRequest struct {
	Name        *string          `json:"name,omitempty" validate:"omitempty,max=200"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Image       *string          `json:"image,omitempty"`
	Rating      *int             `json:"rating,omitempty" validate:"omitempty,gte=0,max=5"`
	Category    *string          `json:"category,omitempty"`
	Description *string          `json:"description,omitempty"`
	Features    *Features        `json:"features,omitempty"`
	InStock     *bool            `json:"inStock,omitempty"`
	Stock       *int             `json:"stock,omitempty" validate:"omitempty,gte=0"`
}
