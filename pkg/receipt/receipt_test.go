package receipt_test

import (
	"strings"
	"testing"

	"github.com/TemiKayode/wumikay-ventures/internal/domain/entity"
	"github.com/TemiKayode/wumikay-ventures/internal/domain/enum"
	"github.com/TemiKayode/wumikay-ventures/pkg/receipt"
	"github.com/stretchr/testify/assert"
)

func posReceipt() *entity.Receipt {
	return &entity.Receipt{
		Header: entity.ReceiptHeader{
			StoreName: "WumiKay Ventures",
			Address:   "Kobongbogboe, Osogbo",
			Phone:     "08033683156",
		},
		OrderNumber:  "ORD-1700000000000-ab12",
		CustomerName: "Ade Bello",
		Items: []entity.ReceiptItem{
			{Name: "Coca-Cola PET Bottle", Quantity: 2, UnitPrice: 4450, Subtotal: 8900},
		},
		Subtotal:    8900,
		POSCharge:   150,
		Total:       9050,
		PaymentMode: enum.PaymentModePOS,
		OrderDate:   "2026-08-30 14:30",
		Footer:      "Thank you for your business!",
	}
}

func TestFormatNaira(t *testing.T) {
	assert.Equal(t, "₦4,450", receipt.FormatNaira(4450))
	assert.Equal(t, "₦150", receipt.FormatNaira(150))
	assert.Equal(t, "₦9,050", receipt.FormatNaira(9050))
	assert.Equal(t, "₦1,234,567.89", receipt.FormatNaira(1234567.89))
	assert.Equal(t, "₦0", receipt.FormatNaira(0))
	assert.Equal(t, "₦12.50", receipt.FormatNaira(12.5))
	assert.Equal(t, "₦-150", receipt.FormatNaira(-150))
}

func TestRenderHTML_POSReceipt(t *testing.T) {
	html, err := receipt.RenderHTML(posReceipt())
	assert.NoError(t, err)

	assert.Contains(t, html, "WumiKay Ventures")
	assert.Contains(t, html, "ORD-1700000000000-ab12")
	assert.Contains(t, html, "Ade Bello")
	assert.Equal(t, 1, strings.Count(html, "Coca-Cola PET Bottle"))
	assert.Contains(t, html, "POS Charge")
	assert.Contains(t, html, "₦9,050")
	assert.Contains(t, html, "Payment: POS")
	assert.Contains(t, html, "Thank you for your business!")
}

func TestRenderHTML_CashReceiptHasNoSurchargeRow(t *testing.T) {
	r := posReceipt()
	r.PaymentMode = enum.PaymentModeCash
	r.POSCharge = 0
	r.Total = 8900

	html, err := receipt.RenderHTML(r)
	assert.NoError(t, err)

	assert.NotContains(t, html, "POS Charge")
	assert.Contains(t, html, "Payment: CASH")
	assert.Contains(t, html, "₦8,900")
}

func TestRenderHTML_EscapesCustomerInput(t *testing.T) {
	r := posReceipt()
	r.CustomerName = "<script>alert(1)</script>"

	html, err := receipt.RenderHTML(r)
	assert.NoError(t, err)
	assert.NotContains(t, html, "<script>alert(1)</script>")
}

func TestFormatThermal(t *testing.T) {
	data := receipt.FormatThermal(posReceipt(), 48)
	out := string(data)

	assert.Contains(t, out, "WumiKay Ventures")
	assert.Contains(t, out, "ORD-1700000000000-ab12")
	assert.Contains(t, out, "2x Coca-Cola PET Bottle")
	assert.Contains(t, out, "NGN 9,050")
	assert.Contains(t, out, "POS Charge")
	assert.Contains(t, out, "Payment: POS")
	assert.NotContains(t, out, "₦", "thermal output stays ASCII")
}

func TestFormatThermal_CashOmitsSurcharge(t *testing.T) {
	r := posReceipt()
	r.PaymentMode = enum.PaymentModeCash
	r.POSCharge = 0
	r.Total = 8900

	out := string(receipt.FormatThermal(r, 32))

	assert.NotContains(t, out, "POS Charge")
	assert.Contains(t, out, "Payment: CASH")
}
