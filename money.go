package fxconvert

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in a given currency.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M returns a Money for the given value and currency code.
func M(value decimal.Decimal, currency string) Money {
	return Money{value: value, cur: currency}
}

// currency returns the money's full currency description.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the string representation of the money value, formatted
// with the currency's own symbol, grouping and fraction digits.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// Simple wrappers around the underlying decimal value.

func (m Money) Currency() string        { return m.cur }
func (m Money) Amount() decimal.Decimal { return m.value }
func (m Money) Equal(n Money) bool      { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool            { return m.value.IsZero() }
func (m Money) IsNegative() bool        { return m.value.IsNegative() }

// Convert returns the money converted into another currency at the given
// rate, where rate is the price of one unit of m's currency in cur.
func (m Money) Convert(cur string, rate decimal.Decimal) Money {
	return Money{value: m.value.Mul(rate), cur: cur}
}
