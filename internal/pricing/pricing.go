// Package pricing holds the marketplace price arithmetic: discount
// application for listings and the platform commission taken on each sale.
package pricing

import "math"

// DefaultCommissionRate is the fixed platform fee retained on each sale.
const DefaultCommissionRate = 0.05

// DiscountedPrice applies a percentage discount to a price. A discount of
// zero or less leaves the price unchanged. The result is rounded to the
// nearest whole unit, halves away from zero.
func DiscountedPrice(price float64, discount int) float64 {
	if discount <= 0 {
		return price
	}
	return math.Round(price * (1 - float64(discount)/100))
}

// Commission returns the platform fee for a sale total at the given rate,
// rounded to two decimal places.
func Commission(total, rate float64) float64 {
	return RoundCents(total * rate)
}

// RoundCents rounds a currency amount to two decimal places.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
