package enum

// PaymentMode is how the customer settles an order. A pos payment carries
// a flat terminal surcharge applied once per order.
type PaymentMode string

const (
	PaymentModeCash PaymentMode = "cash"
	PaymentModePOS  PaymentMode = "pos"
)

// Valid reports whether the mode is one of the known payment modes.
func (m PaymentMode) Valid() bool {
	return m == PaymentModeCash || m == PaymentModePOS
}

// OrDefault returns the mode, falling back to cash when unset or unknown.
func (m PaymentMode) OrDefault() PaymentMode {
	if !m.Valid() {
		return PaymentModeCash
	}
	return m
}
