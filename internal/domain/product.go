package domain

import "math"

// Product is compared by value: two products with the same name and price are equal.
type Product struct {
	Name  string
	Price float64
}

// IsFinite reports whether price can be stored or summed as a decimal.
func IsFinite(price float64) bool {
	return !math.IsInf(price, 0) && !math.IsNaN(price)
}
