package fxconvert

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// ErrUnavailable is reported by a RateProvider when a rate or the currency
// list cannot be retrieved, whatever the underlying cause: timeout,
// transport error, bad status, undecodable body, or a missing key in the
// response. Implementations wrap it so callers can test with errors.Is
// while logs keep the detail.
var ErrUnavailable = errors.New("rate provider unavailable")

// RatePoint is the resolved price of one unit of a base currency in terms
// of a target currency on a specific business day.
type RatePoint struct {
	Rate decimal.Decimal // price of 1 base unit, in target currency
	On   Date            // the provider's effective date for that rate
}

// RateProvider supplies exchange rates and the set of supported currencies.
//
// The On date in a returned RatePoint is the provider's own: when the
// requested day has no published rate (weekend, holiday) providers snap to
// the nearest business day, and that snapped date is what comes back.
type RateProvider interface {
	// FetchLatest returns the most recent rate for base->target.
	FetchLatest(ctx context.Context, base, target string) (RatePoint, error)

	// FetchOnDate returns the rate for base->target on a given day.
	FetchOnDate(ctx context.Context, base, target string, on Date) (RatePoint, error)

	// FetchCurrencies returns the supported currencies as code->display name.
	FetchCurrencies(ctx context.Context) (map[string]string, error)
}
