package khata

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// this file is the boundary between user-typed text and the book's numbers.
// Nothing reaches a mutation as a number without going through here first.

// ParseAmount parses a user-typed transaction amount. The amount must be a
// finite, strictly positive number.
func ParseAmount(s string) (Money, error) {
	d, err := parseNumber(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount: %w", err)
	}
	if !d.IsPositive() {
		return Money{}, fmt.Errorf("amount must be positive, got %s", d)
	}
	return Rupees(d), nil
}

// ParsePrice parses a user-typed product price. The price must be a finite
// number, zero or more.
func ParsePrice(s string) (Money, error) {
	d, err := parseNumber(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid price: %w", err)
	}
	if d.IsNegative() {
		return Money{}, fmt.Errorf("price must not be negative, got %s", d)
	}
	return Rupees(d), nil
}

func parseNumber(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("empty number")
	}
	// decimal.NewFromString rejects NaN and infinities by construction.
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("not a number: %q", s)
	}
	return d, nil
}
