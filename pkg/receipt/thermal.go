package receipt

import (
	"github.com/TemiKayode/wumikay-ventures/internal/domain/entity"
	"github.com/TemiKayode/wumikay-ventures/internal/domain/enum"
	"github.com/TemiKayode/wumikay-ventures/pkg/printer"
)

// thermalAmount renders an amount with the ASCII "NGN" prefix. Most ESC/POS
// code pages cannot print the naira sign.
func thermalAmount(amount float64) string {
	return "NGN " + formatGrouped(amount)
}

// FormatThermal builds the ESC/POS byte stream for a receipt at the given
// character width.
func FormatThermal(r *entity.Receipt, charWidth int) []byte {
	doc := printer.NewDocument(charWidth)

	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.StoreName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if r.Header.Address != "" {
		doc.Text(r.Header.Address)
	}
	if r.Header.Phone != "" {
		doc.TextF("Tel: %s", r.Header.Phone)
	}
	if r.Header.Email != "" {
		doc.TextF("Email: %s", r.Header.Email)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-').
		KeyValue("Order #", r.OrderNumber).
		KeyValue("Date", r.OrderDate).
		KeyValue("Customer", r.CustomerName)
	if r.CustomerPhone != "" {
		doc.KeyValue("Phone", r.CustomerPhone)
	}

	doc.Separator('-')
	for _, item := range r.Items {
		doc.ItemLine(item.Quantity, item.Name, thermalAmount(item.Subtotal))
	}

	doc.Separator('-').
		KeyValue("Subtotal", thermalAmount(r.Subtotal))
	if r.PaymentMode == enum.PaymentModePOS {
		doc.KeyValue("POS Charge", thermalAmount(r.POSCharge))
	}
	doc.SetBold(true).
		KeyValue("TOTAL", thermalAmount(r.Total)).
		SetBold(false)

	doc.Separator('-').
		SetAlign(printer.AlignCenter).
		SetBold(true).
		TextF("Payment: %s", paymentLabel(r.PaymentMode)).
		SetBold(false)

	if r.Notes != "" {
		doc.SetAlign(printer.AlignLeft).
			Separator('-').
			TextF("Notes: %s", r.Notes)
	}

	if r.Footer != "" {
		doc.SetAlign(printer.AlignCenter).
			Separator('-').
			Text(r.Footer)
	}

	doc.FeedLines(3).PartialCut()
	return doc.Bytes()
}

func paymentLabel(mode enum.PaymentMode) string {
	if mode == enum.PaymentModePOS {
		return "POS"
	}
	return "CASH"
}
