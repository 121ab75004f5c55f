package khata

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency used for every amount the store handles.
const DefaultCurrency = "INR"

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// Rupees returns an INR money value, the store's working currency.
func Rupees[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Money {
	return M(value, DefaultCurrency)
}

func newDecimal(value any) decimal.Decimal {
	switch v := value.(type) {
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case decimal.Decimal:
		return v
	}
	return decimal.Zero
}

// currency returns the full currency definition for formatting.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the string representation of the money value, formatted
// according to its currency (e.g. "₹120.00").
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// Simple wrappers around decimal.Decimal.

func (m Money) Currency() string         { return m.cur }
func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsPositive() bool         { return m.value.IsPositive() }
func (m Money) IsNegative() bool         { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool    { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool { return m.value.GreaterThan(n.value) }
func (m Money) Neg() Money               { return Money{value: m.value.Neg(), cur: m.cur} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// ClampZero returns the money value floored at zero, keeping the currency.
func (m Money) ClampZero() Money {
	if m.value.IsNegative() {
		return Money{value: decimal.Zero, cur: m.cur}
	}
	return m
}

// makes the "" currency totally weak.
func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + "!=" + b.cur)
	}
	return a.cur
}

func (m Money) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("currency", m.cur)
	w.Append("amount", m.value.Round(int32(m.currency().Fraction)))
	return w.MarshalJSON()
}

// moneyCmd is a specialized struct to read an amount persisted in two fields.
type moneyCmd struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

func (a moneyCmd) Money() Money {
	c := a.Currency
	if c == "" {
		c = DefaultCurrency
	}
	return M(a.Amount, c)
}
