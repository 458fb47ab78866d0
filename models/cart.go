package models

// CartItem is one line in a cart. The name and unit price are copied
// from the menu item at add time, never referenced live. Identity is
// positional: adding the same dish twice produces two independent
// lines, and quantity never drops below 1 while the line exists.
type CartItem struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

// LineTotal is the item's contribution to the subtotal.
func (c CartItem) LineTotal() float64 {
	return c.UnitPrice * float64(c.Quantity)
}
