// AngelaMos | 2026
// entity.go

package product

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Category values carried by the catalog. The id column holds the
// merchandising key (e.g. "kb-1"), not a surrogate uuid.
const (
	CategoryKeyboard   = "Keyboard"
	CategoryMouse      = "Mouse"
	CategoryHeadset    = "Headset"
	CategoryMonitor    = "Monitor"
	CategoryController = "Controller"
	CategoryChair      = "Chair"
	CategoryDesk       = "Desk"
	CategoryMousepad   = "Mousepad"
)

var validCategories = map[string]bool{
	CategoryKeyboard:   true,
	CategoryMouse:      true,
	CategoryHeadset:    true,
	CategoryMonitor:    true,
	CategoryController: true,
	CategoryChair:      true,
	CategoryDesk:       true,
	CategoryMousepad:   true,
}

func IsValidCategory(category string) bool {
	return validCategories[category]
}

// Features is a list of marketing bullet points stored as jsonb.
type Features []string

func (f Features) Value() (driver.Value, error) {
	if f == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(f)
}

func (f *Features) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, f)
	case string:
		return json.Unmarshal([]byte(v), f)
	case nil:
		*f = nil
		return nil
	default:
		return fmt.Errorf("features: unsupported scan type %T", src)
	}
}

type Product struct {
	ID          string          `db:"id" json:"id"`
	Name        string          `db:"name" json:"name"`
	Price       decimal.Decimal `db:"price" json:"price"`
	Image       string          `db:"image" json:"image"`
	Rating      int             `db:"rating" json:"rating"`
	Category    string          `db:"category" json:"category"`
	Description string          `db:"description" json:"description"`
	Features    Features        `db:"features" json:"features"`
	InStock     bool            `db:"in_stock" json:"inStock"`
	Stock       int             `db:"stock" json:"stock"`
	CreatedAt   time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updatedAt"`
}
