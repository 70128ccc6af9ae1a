package fxconvert

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// IsNumber reports whether text looks like a (possibly signed) decimal
// number: an optional leading + or -, at most one decimal point, at least
// one digit, and nothing but digits on either side of the point.
//
// This is a deliberate hand-rolled lexer so that the accepted grammar stays
// fixed and small, instead of whatever a general number parser admits
// (hex, exponents, underscores...).
func IsNumber(text string) bool {
	s := strings.TrimSpace(text)
	if s == "" {
		return false
	}

	// Optional sign
	if s[0] == '+' || s[0] == '-' {
		s = s[1:]
		if s == "" {
			return false
		}
	}

	// At most one decimal point
	if strings.Count(s, ".") > 1 {
		return false
	}

	if !strings.ContainsAny(s, "0123456789") {
		return false
	}

	left, right, dotted := strings.Cut(s, ".")
	if !dotted {
		return allDigits(s)
	}
	leftOK := left == "" || allDigits(left)
	rightOK := right == "" || allDigits(right)
	return leftOK && rightOK
}

// ParseAmount converts a numeric string into a decimal value. It must only
// be called on text accepted by IsNumber.
func ParseAmount(text string) (decimal.Decimal, error) {
	s := strings.TrimSpace(text)
	// IsNumber admits a trailing point ("5."), decimal does not.
	if strings.HasSuffix(s, ".") {
		s += "0"
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", text, err)
	}
	return v, nil
}
