package fxconvert

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
)

// newTestProvider returns a Frankfurter against a local server, bypassing
// the disk cache.
func newTestProvider(srv *httptest.Server) *Frankfurter {
	return &Frankfurter{baseURL: srv.URL, client: srv.Client()}
}

func TestFrankfurterFetchLatest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/latest" {
			t.Errorf("path = %q, want /latest", r.URL.Path)
		}
		if got := r.URL.Query().Get("base"); got != "USD" {
			t.Errorf("base = %q, want USD", got)
		}
		if got := r.URL.Query().Get("symbols"); got != "THB" {
			t.Errorf("symbols = %q, want THB", got)
		}
		w.Write([]byte(`{"amount":1.0,"base":"USD","date":"2025-01-02","rates":{"THB":35.0}}`))
	}))
	defer srv.Close()

	pt, err := newTestProvider(srv).FetchLatest(context.Background(), "USD", "THB")
	if err != nil {
		t.Fatalf("FetchLatest: %v", err)
	}
	if !pt.Rate.Equal(decimal.NewFromFloat(35.0)) {
		t.Errorf("rate = %s, want 35", pt.Rate)
	}
	if pt.On != MustParseDate("2025-01-02") {
		t.Errorf("date = %s, want 2025-01-02", pt.On)
	}
}

func TestFrankfurterFetchOnDate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/2025-01-04" {
			t.Errorf("path = %q, want /2025-01-04", r.URL.Path)
		}
		// Saturday snapped back to Friday.
		w.Write([]byte(`{"amount":1.0,"base":"USD","date":"2025-01-03","rates":{"EUR":0.96}}`))
	}))
	defer srv.Close()

	pt, err := newTestProvider(srv).FetchOnDate(context.Background(), "USD", "EUR", MustParseDate("2025-01-04"))
	if err != nil {
		t.Fatalf("FetchOnDate: %v", err)
	}
	if pt.On != MustParseDate("2025-01-03") {
		t.Errorf("date = %s, want the provider's snapped 2025-01-03", pt.On)
	}
}

func TestFrankfurterUnavailable(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"missing symbol", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"date":"2025-01-02","rates":{"EUR":0.96}}`))
		}},
		{"no rates", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"date":"2025-01-02"}`))
		}},
		{"bad status", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "not found", http.StatusNotFound)
		}},
		{"malformed body", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"date": `))
		}},
		{"rate not a number", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"date":"2025-01-02","rates":{"THB":"a lot"}}`))
		}},
		{"bad date", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"date":"someday","rates":{"THB":35.0}}`))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			_, err := newTestProvider(srv).FetchLatest(context.Background(), "USD", "THB")
			if !errors.Is(err, ErrUnavailable) {
				t.Errorf("FetchLatest error = %v, want ErrUnavailable", err)
			}
		})
	}
}

func TestFrankfurterUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from now on

	f := &Frankfurter{baseURL: srv.URL, client: http.DefaultClient}
	if _, err := f.FetchLatest(context.Background(), "USD", "THB"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("FetchLatest error = %v, want ErrUnavailable", err)
	}
	if _, err := f.FetchCurrencies(context.Background()); !errors.Is(err, ErrUnavailable) {
		t.Errorf("FetchCurrencies error = %v, want ErrUnavailable", err)
	}
}

func TestFrankfurterFetchCurrencies(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/currencies" {
			t.Errorf("path = %q, want /currencies", r.URL.Path)
		}
		w.Write([]byte(`{"USD":"US Dollar","THB":"Thai Baht"}`))
	}))
	defer srv.Close()

	names, err := newTestProvider(srv).FetchCurrencies(context.Background())
	if err != nil {
		t.Fatalf("FetchCurrencies: %v", err)
	}
	if len(names) != 2 || names["THB"] != "Thai Baht" {
		t.Errorf("currencies = %v", names)
	}
}
