package fxconvert

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoneyString(t *testing.T) {
	tests := []struct {
		value    string
		currency string
		contains string
	}{
		{"100", "USD", "100.00"},
		{"3500", "THB", "3,500.00"},
		{"1234567.89", "EUR", "1,234,567.89"},
		{"100", "JPY", "100"}, // yen has no minor unit
	}
	for _, tt := range tests {
		v, _ := decimal.NewFromString(tt.value)
		got := M(v, tt.currency).String()
		if !strings.Contains(got, tt.contains) {
			t.Errorf("M(%s, %s).String() = %q, want it to contain %q", tt.value, tt.currency, got, tt.contains)
		}
	}
}

func TestMoneyConvert(t *testing.T) {
	hundred := decimal.NewFromInt(100)
	rate := decimal.NewFromFloat(35.0)

	got := M(hundred, "USD").Convert("THB", rate)
	if got.Currency() != "THB" {
		t.Errorf("converted currency = %s, want THB", got.Currency())
	}
	if !got.Amount().Equal(decimal.NewFromInt(3500)) {
		t.Errorf("converted amount = %s, want 3500", got.Amount())
	}
	if !got.Equal(M(decimal.NewFromInt(3500), "THB")) {
		t.Errorf("Equal mismatch for %s", got)
	}
}

func TestMoneyZeroAndSign(t *testing.T) {
	if !M(decimal.Zero, "USD").IsZero() {
		t.Error("zero money is not zero")
	}
	if !M(decimal.NewFromInt(-1), "USD").IsNegative() {
		t.Error("-1 is not negative")
	}
}
