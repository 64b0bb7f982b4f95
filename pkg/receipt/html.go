// Package receipt renders printable receipts as self-contained HTML
// documents and as ESC/POS byte streams for thermal printers.
package receipt

import (
	"bytes"
	"fmt"
	"html/template"
	"math"
	"strings"

	"github.com/TemiKayode/wumikay-ventures/internal/domain/entity"
	"github.com/TemiKayode/wumikay-ventures/internal/domain/enum"
)

// FormatNaira formats an amount with a naira sign and thousands separators.
func FormatNaira(amount float64) string {
	return "₦" + formatGrouped(amount)
}

func formatGrouped(amount float64) string {
	neg := amount < 0
	amount = math.Abs(amount)

	whole := int64(amount)
	frac := int64(math.Round((amount - float64(whole)) * 100))
	if frac == 100 {
		whole++
		frac = 0
	}

	digits := fmt.Sprintf("%d", whole)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	s := b.String()
	if frac > 0 {
		s += fmt.Sprintf(".%02d", frac)
	}
	if neg {
		s = "-" + s
	}
	return s
}

var htmlTmpl = template.Must(template.New("receipt").Funcs(template.FuncMap{
	"naira": FormatNaira,
	"upper": strings.ToUpper,
}).Parse(`<!DOCTYPE html>
<html>
<head>
  <title>Receipt - {{.OrderNumber}}</title>
  <style>
    body {
      font-family: 'Courier New', monospace;
      font-size: 12px;
      line-height: 1.4;
      margin: 0;
      padding: 10px;
      background: white;
      color: black;
    }
    .receipt { max-width: 300px; margin: 0 auto; }
    .header {
      text-align: center;
      border-bottom: 1px dashed #000;
      padding-bottom: 10px;
      margin-bottom: 10px;
    }
    .logo { font-size: 18px; font-weight: bold; margin-bottom: 5px; }
    .company-info { font-size: 10px; margin-bottom: 10px; }
    .order-info { margin-bottom: 10px; }
    .order-info div { margin-bottom: 3px; }
    .items {
      border-bottom: 1px dashed #000;
      padding-bottom: 10px;
      margin-bottom: 10px;
    }
    .item { display: flex; justify-content: space-between; margin-bottom: 5px; }
    .item-name { flex: 1; }
    .item-qty { margin: 0 10px; }
    .item-price { text-align: right; min-width: 60px; }
    .totals { margin-bottom: 10px; }
    .total-line { display: flex; justify-content: space-between; margin-bottom: 3px; }
    .total-line.total {
      font-weight: bold;
      font-size: 14px;
      border-top: 1px solid #000;
      padding-top: 5px;
      margin-top: 5px;
    }
    .payment-info {
      text-align: center;
      margin-bottom: 10px;
      padding: 5px;
      background: #f0f0f0;
      border-radius: 3px;
    }
    .footer {
      text-align: center;
      font-size: 10px;
      margin-top: 15px;
      border-top: 1px dashed #000;
      padding-top: 10px;
    }
    .pos-charge { color: #d32f2f; }
    @media print {
      body { margin: 0; }
      .receipt { max-width: none; }
    }
  </style>
</head>
<body>
  <div class="receipt">
    <div class="header">
      <div class="logo">{{.Header.StoreName}}</div>
      <div class="company-info">
        {{.Header.Address}}<br>
        Tel: {{.Header.Phone}}<br>
        Email: {{.Header.Email}}
      </div>
    </div>

    <div class="order-info">
      <div><strong>Order #:</strong> {{.OrderNumber}}</div>
      <div><strong>Date:</strong> {{.OrderDate}}</div>
      <div><strong>Customer:</strong> {{.CustomerName}}</div>
      {{if .CustomerPhone}}<div><strong>Phone:</strong> {{.CustomerPhone}}</div>{{end}}
    </div>

    <div class="items">
      {{range .Items}}
      <div class="item">
        <div class="item-name">{{.Name}}</div>
        <div class="item-qty">{{.Quantity}}</div>
        <div class="item-price">{{naira .Subtotal}}</div>
      </div>
      {{end}}
    </div>

    <div class="totals">
      <div class="total-line">
        <span>Subtotal:</span>
        <span>{{naira .Subtotal}}</span>
      </div>
      {{if .IsPOS}}
      <div class="total-line pos-charge">
        <span>POS Charge:</span>
        <span>{{naira .POSCharge}}</span>
      </div>
      {{end}}
      <div class="total-line total">
        <span>TOTAL:</span>
        <span>{{naira .Total}}</span>
      </div>
    </div>

    <div class="payment-info">
      <strong>Payment: {{upper (printf "%s" .PaymentMode)}}</strong>
    </div>

    {{if .Notes}}
    <div style="margin-bottom: 10px; font-size: 10px;">
      <strong>Notes:</strong> {{.Notes}}
    </div>
    {{end}}

    <div class="footer">{{.Footer}}</div>
  </div>
</body>
</html>
`))

// htmlView wraps a receipt with template helpers.
type htmlView struct {
	*entity.Receipt
}

func (v htmlView) IsPOS() bool {
	return v.PaymentMode == enum.PaymentModePOS
}

// RenderHTML renders the receipt as a standalone printable HTML document.
func RenderHTML(r *entity.Receipt) (string, error) {
	var buf bytes.Buffer
	if err := htmlTmpl.Execute(&buf, htmlView{r}); err != nil {
		return "", fmt.Errorf("receipt: failed to render HTML: %w", err)
	}
	return buf.String(), nil
}
