package entity

import "github.com/TemiKayode/wumikay-ventures/internal/domain/enum"

// ReceiptHeader holds the issuer identity printed at the top of a receipt.
type ReceiptHeader struct {
	StoreName string `json:"store_name"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
}

// ReceiptItem represents a single line item on a receipt.
type ReceiptItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Subtotal  float64 `json:"subtotal"`
}

// Receipt is a value object representing a printable receipt. It is not a
// database entity; it is composed from an order and its items at print
// time and discarded after printing.
type Receipt struct {
	Header        ReceiptHeader    `json:"header"`
	OrderNumber   string           `json:"order_number"`
	CustomerName  string           `json:"customer_name"`
	CustomerEmail string           `json:"customer_email,omitempty"`
	CustomerPhone string           `json:"customer_phone,omitempty"`
	Items         []ReceiptItem    `json:"items"`
	Subtotal      float64          `json:"subtotal"`
	POSCharge     float64          `json:"pos_charge"`
	Total         float64          `json:"total"`
	PaymentMode   enum.PaymentMode `json:"payment_mode"`
	OrderDate     string           `json:"order_date"`
	Notes         string           `json:"notes,omitempty"`
	Footer        string           `json:"footer"`
}
