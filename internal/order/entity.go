// AngelaMos | 2026
// entity.go

package order

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

var validStatuses = map[string]bool{
	StatusProcessing: true,
	StatusShipped:    true,
	StatusDelivered:  true,
	StatusCancelled:  true,
}

func IsValidStatus(status string) bool {
	return validStatuses[status]
}

// Order is immutable after checkout apart from its status. Items carry
// the cart snapshots taken at add time, not live catalog rows.
type Order struct {
	ID            string          `db:"id" json:"id"`
	UserID        string          `db:"user_id" json:"userId"`
	OrderNumber   string          `db:"order_number" json:"orderNumber"`
	Items         []OrderItem     `db:"-" json:"items"`
	Total         decimal.Decimal `db:"total" json:"total"`
	Status        string          `db:"status" json:"status"`
	FullName      string          `db:"ship_full_name" json:"-"`
	Address       string          `db:"ship_address" json:"-"`
	City          string          `db:"ship_city" json:"-"`
	State         string          `db:"ship_state" json:"-"`
	ZipCode       string          `db:"ship_zip_code" json:"-"`
	Country       string          `db:"ship_country" json:"-"`
	PaymentMethod string          `db:"payment_method" json:"paymentMethod"`
	CreatedAt     time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time       `db:"updated_at" json:"updatedAt"`
}

type OrderItem struct {
	OrderID   string          `db:"order_id" json:"-"`
	ProductID string          `db:"product_id" json:"productId"`
	Name      string          `db:"name" json:"name"`
	Price     decimal.Decimal `db:"price" json:"price"`
	Image     string          `db:"image" json:"image"`
	Quantity  int             `db:"quantity" json:"quantity"`
}

type ShippingAddress struct {
	FullName string `json:"fullName" validate:"required"`
	Address  string `json:"address" validate:"required"`
	City     string `json:"city" validate:"required"`
	State    string `json:"state" validate:"required"`
	ZipCode  string `json:"zipCode" validate:"required"`
	Country  string `json:"country" validate:"required"`
}

func (o *Order) ShippingAddress() ShippingAddress {
	return ShippingAddress{
		FullName: o.FullName,
		Address:  o.Address,
		City:     o.City,
		State:    o.State,
		ZipCode:  o.ZipCode,
		Country:  o.Country,
	}
}
