package entity

import (
	"encoding/json"
	"time"

	"github.com/TemiKayode/wumikay-ventures/internal/domain/enum"
	"gorm.io/gorm"
)

// Order represents a sales order created at checkout
type Order struct {
	ID             uint             `gorm:"primaryKey" json:"id"`
	OrderNumber    string           `gorm:"size:50;unique;not null" json:"order_number"`
	CustomerName   string           `gorm:"size:100;not null" json:"customer_name"`
	CustomerEmail  string           `gorm:"size:100" json:"customer_email,omitempty"`
	CustomerPhone  string           `gorm:"size:20" json:"customer_phone,omitempty"`
	Status         enum.OrderStatus `gorm:"default:0;index" json:"status"`
	SubtotalAmount int64            `gorm:"not null" json:"-"`  // Stored in minor units, excluded from JSON
	POSCharge      int64            `gorm:"default:0" json:"-"` // Stored in minor units, excluded from JSON
	TotalAmount    int64            `gorm:"not null" json:"-"`  // Stored in minor units, excluded from JSON
	TaxAmount      int64            `gorm:"default:0" json:"-"` // Always 0, kept for schema parity
	PaymentMode    enum.PaymentMode `gorm:"size:10;default:'cash'" json:"payment_mode"`
	Notes          string           `gorm:"type:text" json:"notes,omitempty"`
	OrderDate      time.Time        `gorm:"not null;index" json:"order_date"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
	DeletedAt      gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relationships
	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// MarshalJSON custom marshaler to convert minor units to decimal for API responses
func (o Order) MarshalJSON() ([]byte, error) {
	type Alias Order
	return json.Marshal(&struct {
		Alias
		SubtotalAmount float64 `json:"subtotal_amount"`
		POSCharge      float64 `json:"pos_charge"`
		TotalAmount    float64 `json:"total_amount"`
		TaxAmount      float64 `json:"tax_amount"`
	}{
		Alias:          Alias(o),
		SubtotalAmount: float64(o.SubtotalAmount) / 100,
		POSCharge:      float64(o.POSCharge) / 100,
		TotalAmount:    float64(o.TotalAmount) / 100,
		TaxAmount:      float64(o.TaxAmount) / 100,
	})
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// GetTotalDecimal returns the total as a decimal
func (o *Order) GetTotalDecimal() float64 {
	return float64(o.TotalAmount) / 100
}

// OrderItem represents a line item in an order. Items are written once in
// a batch right after the parent order row and never mutated.
type OrderItem struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	OrderID     uint           `gorm:"not null;index" json:"order_id"`
	ProductID   uint           `gorm:"not null;index" json:"product_id"`
	ProductName string         `gorm:"size:100;not null" json:"product_name"`
	Quantity    int            `gorm:"not null" json:"quantity"`
	UnitPrice   int64          `gorm:"not null" json:"-"` // Stored in minor units, excluded from JSON
	Subtotal    int64          `gorm:"not null" json:"-"` // Stored in minor units, excluded from JSON
	CreatedAt   time.Time      `json:"created_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// MarshalJSON custom marshaler to convert minor units to decimal for API responses
func (oi OrderItem) MarshalJSON() ([]byte, error) {
	type Alias OrderItem
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
		Subtotal  float64 `json:"subtotal"`
	}{
		Alias:     Alias(oi),
		UnitPrice: float64(oi.UnitPrice) / 100,
		Subtotal:  float64(oi.Subtotal) / 100,
	})
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}
