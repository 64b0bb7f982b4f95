package request

// ProductRequest represents a create/update product request
type ProductRequest struct {
	Name              string  `json:"name" binding:"required,max=100"`
	Description       string  `json:"description"`
	Price             float64 `json:"price" binding:"required,gte=0"`
	Quantity          int     `json:"quantity" binding:"gte=0"`
	Category          string  `json:"category" binding:"max=50"`
	Barcode           *string `json:"barcode"`
	LowStockThreshold int     `json:"low_stock_threshold" binding:"gte=0"`
	CostPrice         float64 `json:"cost_price" binding:"gte=0"`
	SellingPrice      float64 `json:"selling_price" binding:"gte=0"`
	Brand             string  `json:"brand" binding:"max=50"`
}

// ProductFilterRequest represents product list query parameters
type ProductFilterRequest struct {
	Page     int    `form:"page"`
	PerPage  int    `form:"per_page"`
	Search   string `form:"search"`
	Category string `form:"category"`
	LowStock bool   `form:"low_stock"`
}
