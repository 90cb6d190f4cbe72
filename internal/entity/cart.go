package domain

import "errors"

var ErrInvalidQuantity = errors.New("quantity must be positive")

// CartLine is one add-to-cart row. AmountCents is the unit price copied at
// add time; TotalCents is computed once at creation and stored, never
// recomputed against the catalog.
type CartLine struct {
	Name        string
	AmountCents int64
	Quantity    int
	TotalCents  int64
}

// NewCartLine builds a line from a product, enforcing total == amount * quantity.
func NewCartLine(p Product, quantity int) (CartLine, error) {
	if quantity <= 0 {
		return CartLine{}, ErrInvalidQuantity
	}
	return CartLine{
		Name:        p.Name,
		AmountCents: p.PriceCents,
		Quantity:    quantity,
		TotalCents:  p.PriceCents * int64(quantity),
	}, nil
}

// LineTotal returns the stored line total, falling back to the unit amount
// for legacy documents that were written without one.
func (l CartLine) LineTotal() int64 {
	if l.TotalCents != 0 {
		return l.TotalCents
	}
	return l.AmountCents
}

// CartTotal sums line totals over a cart snapshot.
func CartTotal(lines []CartLine) int64 {
	var sum int64
	for _, l := range lines {
		sum += l.LineTotal()
	}
	return sum
}
