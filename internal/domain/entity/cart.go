package entity

import "encoding/json"

// CartLine is one product selection in a cart. Lines are unique by
// ProductID and never carry a quantity below 1.
type CartLine struct {
	ProductID uint   `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"-"` // minor units
	Quantity  int    `json:"quantity"`
}

// MarshalJSON converts the unit price to decimal for API responses
func (l CartLine) MarshalJSON() ([]byte, error) {
	type Alias CartLine
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
		Subtotal  float64 `json:"subtotal"`
	}{
		Alias:     Alias(l),
		UnitPrice: float64(l.UnitPrice) / 100,
		Subtotal:  float64(l.UnitPrice*int64(l.Quantity)) / 100,
	})
}

// Cart is the in-progress, unpersisted selection of products for one
// prospective order. Line order is insertion order.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// AddItem merges a product into the cart: an existing line has its
// quantity incremented by one, otherwise a new line with quantity 1 is
// appended. The product catalog is never touched.
func (c *Cart) AddItem(p *Product) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == p.ID {
			c.Lines[i].Quantity++
			return
		}
	}
	c.Lines = append(c.Lines, CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		Quantity:  1,
	})
}

// SetQuantity replaces the quantity of the line for productID. A quantity
// of zero or less removes the line. Unknown product ids are a no-op.
func (c *Cart) SetQuantity(productID uint, quantity int) {
	for i := range c.Lines {
		if c.Lines[i].ProductID != productID {
			continue
		}
		if quantity <= 0 {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
		} else {
			c.Lines[i].Quantity = quantity
		}
		return
	}
}

// Total returns the sum of unit price times quantity over all lines, in
// minor units. An empty cart totals zero.
func (c *Cart) Total() int64 {
	var total int64
	for _, l := range c.Lines {
		total += l.UnitPrice * int64(l.Quantity)
	}
	return total
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Clone returns a deep copy of the cart. Checkout snapshots the cart so
// later mutations cannot alter an in-flight order.
func (c *Cart) Clone() *Cart {
	lines := make([]CartLine, len(c.Lines))
	copy(lines, c.Lines)
	return &Cart{Lines: lines}
}
