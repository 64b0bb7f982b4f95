package request

// CartAddRequest adds one unit of a product to the cart
type CartAddRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// CartQuantityRequest replaces a cart line's quantity
type CartQuantityRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

// CheckoutRequest represents the checkout request. Payment mode defaults
// to cash when omitted.
type CheckoutRequest struct {
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
	PaymentMode   string `json:"payment_mode"`
	Notes         string `json:"notes"`
}

// OrderFilterRequest represents order list query parameters
type OrderFilterRequest struct {
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
	Search    string `form:"search"`
	Status    string `form:"status"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}
