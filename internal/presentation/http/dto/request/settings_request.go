package request

// SettingsRequest represents an update company settings request
type SettingsRequest struct {
	Name          string  `json:"name" binding:"required,max=100"`
	Address       string  `json:"address"`
	Phone         string  `json:"phone" binding:"max=50"`
	Email         string  `json:"email" binding:"omitempty,email"`
	Currency      string  `json:"currency" binding:"max=10"`
	POSCharge     float64 `json:"pos_charge" binding:"gte=0"`
	ReceiptFooter string  `json:"receipt_footer" binding:"max=255"`
}
