package models

// CartLine is one distinct cart entry. Two lines for the same menu item
// with different notes stay separate; notes is part of the identity key.
type CartLine struct {
	MenuItemID uint    `json:"menu_item_id"`
	Name       string  `json:"name"`
	UnitPrice  float64 `json:"unit_price"`
	VatRate    float64 `json:"vat_rate"`
	Quantity   int     `json:"quantity"`
	Notes      string  `json:"notes"`
}

// Subtotal is unit price times quantity for this line, not rounded.
func (l CartLine) Subtotal() float64 {
	return l.UnitPrice * float64(l.Quantity)
}

// VatAmount is the VAT for this line computed on its own subtotal.
// Lines carry their own rate, so VAT is summed per line, never applied
// to the aggregate subtotal.
func (l CartLine) VatAmount() float64 {
	return l.Subtotal() * l.VatRate / 100
}
