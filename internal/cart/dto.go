// AngelaMos | 2026
// dto.go

package cart

type AddItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"omitempty,gte=1"`
}

// UpdateItemRequest carries the replacement quantity. Zero or negative
// removes the line item.
type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}
