package fxconvert

import (
	"slices"
	"testing"
)

func TestRegistryHas(t *testing.T) {
	r := NewRegistry(map[string]string{"USD": "US Dollar", "THB": "Thai Baht"})

	tests := []struct {
		code string
		want bool
	}{
		{"USD", true},
		{"usd", true}, // case insensitive
		{" usd ", true},
		{"THB", true},
		{"US", false},   // wrong length
		{"USDX", false}, // wrong length
		{"EUR", false},  // not registered
		{"US1", false},  // not alphabetic
		{"", false},
	}
	for _, tt := range tests {
		if got := r.Has(tt.code); got != tt.want {
			t.Errorf("Has(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestRegistryAllOrdered(t *testing.T) {
	r := NewRegistry(map[string]string{
		"THB": "Thai Baht",
		"EUR": "Euro",
		"USD": "US Dollar",
	})

	var codes []string
	for code, name := range r.All() {
		codes = append(codes, code)
		if name == "" {
			t.Errorf("missing name for %s", code)
		}
	}
	want := []string{"EUR", "THB", "USD"}
	if !slices.Equal(codes, want) {
		t.Errorf("All() order = %v, want %v", codes, want)
	}

	// The iterator is restartable: a second pass sees the same snapshot.
	var again []string
	for code := range r.All() {
		again = append(again, code)
	}
	if !slices.Equal(again, want) {
		t.Errorf("second All() pass = %v, want %v", again, want)
	}
}

func TestFallbackRegistry(t *testing.T) {
	r := FallbackRegistry()
	if r.Len() != 5 {
		t.Fatalf("fallback registry has %d codes, want 5", r.Len())
	}
	for _, code := range []string{"USD", "EUR", "THB", "JPY", "GBP"} {
		if !r.Has(code) {
			t.Errorf("fallback registry is missing %s", code)
		}
	}
}

func TestNormalizeCode(t *testing.T) {
	if got := NormalizeCode("  usd "); got != "USD" {
		t.Errorf("NormalizeCode = %q, want USD", got)
	}
}
