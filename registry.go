package fxconvert

import (
	"iter"
	"maps"
	"slices"
	"strings"
)

// Registry holds the set of known currencies: code to display name.
//
// A Registry is read-only once built. Reloading currencies replaces the
// whole Registry, it never mutates one in place, so an action in flight
// always observes a consistent snapshot.
type Registry struct {
	names map[string]string
}

// NewRegistry returns a Registry over the given code to display-name mapping.
func NewRegistry(names map[string]string) *Registry {
	return &Registry{names: maps.Clone(names)}
}

// FallbackRegistry returns the built-in currency set used when the provider
// cannot supply one.
func FallbackRegistry() *Registry {
	return NewRegistry(map[string]string{
		"USD": "US Dollar",
		"EUR": "Euro",
		"THB": "Thai Baht",
		"JPY": "Japanese Yen",
		"GBP": "British Pound",
	})
}

// Len returns the number of known currencies.
func (r *Registry) Len() int { return len(r.names) }

// Name returns the display name for a code, or "" if unknown.
func (r *Registry) Name(code string) string { return r.names[NormalizeCode(code)] }

// NormalizeCode trims and upper-cases a currency code candidate.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// isAlpha reports whether s is made of ASCII letters only.
func isAlpha(s string) bool {
	for _, r := range s {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return s != ""
}

// Has reports whether code names a known currency: 3 letters, case
// insensitive, and present in the registry.
func (r *Registry) Has(code string) bool {
	c := NormalizeCode(code)
	if len(c) != 3 || !isAlpha(c) {
		return false
	}
	_, ok := r.names[c]
	return ok
}

// All returns an iterator over all (code, name) pairs ordered by code.
// The iteration runs over a snapshot taken at call time, so it is finite
// and restartable.
func (r *Registry) All() iter.Seq2[string, string] {
	codes := slices.Sorted(maps.Keys(r.names))
	return func(yield func(string, string) bool) {
		for _, code := range codes {
			if !yield(code, r.names[code]) {
				return
			}
		}
	}
}
