package entity

import (
	"encoding/json"
	"time"
)

// CompanySettings is the single-row store identity record. It feeds the
// receipt header and the checkout surcharge.
type CompanySettings struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"size:100;not null" json:"name"`
	Address       string    `gorm:"type:text" json:"address"`
	Phone         string    `gorm:"size:50" json:"phone"`
	Email         string    `gorm:"size:100" json:"email"`
	Currency      string    `gorm:"size:10;default:'NGN'" json:"currency"`
	POSCharge     int64     `gorm:"default:15000" json:"-"` // minor units
	ReceiptFooter string    `gorm:"size:255" json:"receipt_footer"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// MarshalJSON converts the surcharge to decimal for API responses
func (s CompanySettings) MarshalJSON() ([]byte, error) {
	type Alias CompanySettings
	return json.Marshal(&struct {
		Alias
		POSCharge float64 `json:"pos_charge"`
	}{
		Alias:     Alias(s),
		POSCharge: float64(s.POSCharge) / 100,
	})
}

// TableName returns the table name for the CompanySettings model
func (CompanySettings) TableName() string {
	return "company_settings"
}

// DefaultCompanySettings returns the seed record used when no settings
// row exists yet.
func DefaultCompanySettings() *CompanySettings {
	return &CompanySettings{
		Name:          "WumiKay Ventures",
		Address:       "Beside Enuogbope Hospital, Kobongbogboe, Osogbo, Osun State",
		Phone:         "08033683156, 07050509775",
		Email:         "Kayodeomowumii@gmail.com",
		Currency:      "NGN",
		POSCharge:     15000,
		ReceiptFooter: "Thank you for your business! Please keep this receipt for your records",
	}
}
