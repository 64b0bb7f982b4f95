package entity

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// Product represents a product in the inventory
type Product struct {
	ID                uint           `gorm:"primaryKey" json:"id"`
	Name              string         `gorm:"size:100;not null" json:"name"`
	Description       string         `gorm:"type:text" json:"description"`
	Price             int64          `gorm:"not null" json:"-"` // Stored in minor units, excluded from JSON
	Quantity          int            `gorm:"default:0" json:"quantity"`
	Category          string         `gorm:"size:50;index" json:"category"`
	Barcode           *string        `gorm:"size:50" json:"barcode,omitempty"`
	LowStockThreshold int            `gorm:"default:10" json:"low_stock_threshold"`
	CostPrice         int64          `gorm:"default:0" json:"-"` // Stored in minor units, excluded from JSON
	SellingPrice      int64          `gorm:"default:0" json:"-"` // Stored in minor units, excluded from JSON
	Brand             string         `gorm:"size:50" json:"brand"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}

// MarshalJSON custom marshaler to convert minor units to decimal for API responses
func (p Product) MarshalJSON() ([]byte, error) {
	type Alias Product
	return json.Marshal(&struct {
		Alias
		Price        float64 `json:"price"`
		CostPrice    float64 `json:"cost_price"`
		SellingPrice float64 `json:"selling_price"`
	}{
		Alias:        Alias(p),
		Price:        float64(p.Price) / 100,
		CostPrice:    float64(p.CostPrice) / 100,
		SellingPrice: float64(p.SellingPrice) / 100,
	})
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// IsLowStock reports whether the product is at or below its alert threshold
func (p *Product) IsLowStock() bool {
	return p.Quantity <= p.LowStockThreshold
}

// GetPriceDecimal returns the selling price as a decimal (for display)
func (p *Product) GetPriceDecimal() float64 {
	return float64(p.Price) / 100
}

// SetPriceFromDecimal sets the price from a decimal value
func (p *Product) SetPriceFromDecimal(price float64) {
	p.Price = int64(price * 100)
}
