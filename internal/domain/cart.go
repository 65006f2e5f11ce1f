package domain

import (
	"slices"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Cart is an ordered list of products. The zero value is an empty cart.
// A Cart is not safe for concurrent use.
type Cart struct {
	items []Product
}

// NewCart returns a cart holding items in the given order.
func NewCart(items ...Product) *Cart {
	return &Cart{items: slices.Clone(items)}
}

func (c *Cart) Add(p Product) {
	c.items = append(c.items, p)
}

// Remove deletes the first item equal to p. It does nothing if there is none.
func (c *Cart) Remove(p Product) {
	if i := slices.Index(c.items, p); i >= 0 {
		c.items = slices.Delete(c.items, i, i+1)
	}
}

func (c *Cart) Clear() {
	c.items = nil
}

func (c *Cart) Contains(p Product) bool {
	return slices.Contains(c.items, p)
}

func (c *Cart) ItemCount() int {
	return len(c.items)
}

// TotalPrice sums item prices in insertion order.
func (c *Cart) TotalPrice() float64 {
	var total float64
	for _, item := range c.items {
		total += item.Price
	}
	return total
}

// Total is TotalPrice computed in decimal arithmetic. It reports false, with a
// zero amount, when a price is infinite or NaN and has no decimal form.
func (c *Cart) Total(cur currency.Unit) (Money, bool) {
	amount := decimal.Zero
	for _, item := range c.items {
		if !IsFinite(item.Price) {
			return Money{Amount: decimal.Zero, Currency: cur}, false
		}
		amount = amount.Add(decimal.NewFromFloat(item.Price))
	}

	return Money{Amount: amount, Currency: cur}, true
}

// Items returns a copy of the cart contents.
func (c *Cart) Items() []Product {
	return slices.Clone(c.items)
}
