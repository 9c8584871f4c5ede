package cart

// Summary is the cart page's money breakdown. Shipping is a flat charge
// applied only when the subtotal is positive; the discount comes from the
// caller's applied offer and is not recomputed here.
type Summary struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
}

// Summarize derives the summary from the current lines.
func (s *Store) Summarize(shippingFlat, discount float64) Summary {
	subtotal := s.Total()
	var shipping float64
	if subtotal > 0 {
		shipping = shippingFlat
	}
	return Summary{
		Subtotal: subtotal,
		Shipping: shipping,
		Discount: discount,
		Total:    subtotal + shipping - discount,
	}
}
