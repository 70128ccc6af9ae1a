package fxconvert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Outcome is the result of one user-facing action. The caller (the CLI
// layer) decides what an outcome means for exit status and logging; the
// action itself never panics and never kills the process.
type Outcome int

const (
	// Done means the action ran to completion (including informational
	// no-ops like converting a currency to itself).
	Done Outcome = iota
	// Cancelled means the user backed out, or a field exhausted its
	// attempts. No success audit event is recorded.
	Cancelled
	// Unavailable means the rate provider could not serve the request.
	Unavailable
	// Interrupted means the user aborted a blocking read (Ctrl+C).
	Interrupted
)

func (o Outcome) String() string {
	switch o {
	case Done:
		return "done"
	case Cancelled:
		return "cancelled"
	case Unavailable:
		return "unavailable"
	case Interrupted:
		return "interrupted"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// DateSpec selects which rate to resolve: a specific calendar day, or the
// latest business day when no date is given.
type DateSpec struct {
	On Date
}

// Latest reports whether the most recent business-day rate was requested.
func (d DateSpec) Latest() bool { return d.On.IsZero() }

// Session drives the interactive actions: it owns the base currency, the
// currency registry, and the collaborators every action needs.
//
// A Session is single-threaded: one action runs at a time, and the registry
// is only ever replaced wholesale between actions.
type Session struct {
	w        io.Writer
	in       Prompter
	provider RateProvider
	rec      Recorder

	registry *Registry
	base     string
}

// NewSession returns a Session writing user-facing text to w and reading
// input from in. The base currency starts as USD.
func NewSession(w io.Writer, in Prompter, provider RateProvider, rec Recorder) *Session {
	return &Session{w: w, in: in, provider: provider, rec: rec, base: "USD"}
}

// Base returns the session's current base currency.
func (s *Session) Base() string { return s.base }

// Writer returns the session's user-facing output writer.
func (s *Session) Writer() io.Writer { return s.w }

// Record appends one line to the session audit log.
func (s *Session) Record(message string) { s.rec.Record(message) }

// SetBaseTo changes the base currency without prompting. The code must name
// a known currency.
func (s *Session) SetBaseTo(ctx context.Context, code string) error {
	s.ensureRegistry(ctx)
	c := NormalizeCode(code)
	if !s.registry.Has(c) {
		return fmt.Errorf("unknown currency code %q", code)
	}
	s.base = c
	return nil
}

// Registry returns the current currency registry snapshot.
func (s *Session) Registry(ctx context.Context) *Registry {
	s.ensureRegistry(ctx)
	return s.registry
}

// ensureRegistry loads the supported currencies once. When the provider is
// unavailable the built-in fallback set is used instead, so every action can
// rely on a non-empty registry.
func (s *Session) ensureRegistry(ctx context.Context) {
	if s.registry != nil && s.registry.Len() > 0 {
		return
	}
	names, err := s.provider.FetchCurrencies(ctx)
	if err != nil {
		fmt.Fprintln(s.w, "[i] Cannot fetch currencies from API, using fallback list.")
		s.registry = FallbackRegistry()
		return
	}
	s.registry = NewRegistry(names)
}

// ReloadCurrencies discards the registry and loads it again.
func (s *Session) ReloadCurrencies(ctx context.Context) {
	s.registry = nil
	s.ensureRegistry(ctx)
}

// abandoned maps a prompt-level error to the action outcome, recording the
// single interruption audit line when the user aborted a blocking read.
func (s *Session) abandoned(action string, err error) Outcome {
	switch {
	case errors.Is(err, ErrCancelled), errors.Is(err, ErrTooManyAttempts):
		return Cancelled
	default:
		fmt.Fprintln(s.w, "\n[i] Operation cancelled by user.")
		s.rec.Record("User interrupted " + action + ".")
		return Interrupted
	}
}

// frame prints a result line between two '=' borders sized to the text.
func (s *Session) frame(result string) {
	border := strings.Repeat("=", utf8.RuneCountInString(result)+2)
	fmt.Fprintln(s.w)
	fmt.Fprintln(s.w, border)
	fmt.Fprintln(s.w, "", result)
	fmt.Fprintln(s.w, border)
	fmt.Fprintln(s.w)
}

// Field constructors. The three interactive field kinds share the same
// bounded-retry protocol and differ only in parser and empty-input policy.

// currencyField accepts a known currency code. onEmpty may be nil (empty is
// invalid), a default, or a cancel.
func (s *Session) currencyField(prompt string, onEmpty func() (string, error)) Field[string] {
	return Field[string]{
		Prompt: prompt,
		Parse: func(text string) (string, error) {
			code := NormalizeCode(text)
			if !s.registry.Has(code) {
				return "", errors.New("Invalid currency code.")
			}
			return code, nil
		},
		OnEmpty: onEmpty,
	}
}

// amountField accepts a non-negative decimal amount. Empty is invalid.
func (s *Session) amountField(prompt string) Field[decimal.Decimal] {
	return Field[decimal.Decimal]{
		Prompt: prompt,
		Parse: func(text string) (decimal.Decimal, error) {
			if !IsNumber(text) {
				return decimal.Zero, errors.New("Please enter a valid numeric amount (e.g., 100 or 123.45).")
			}
			v, err := ParseAmount(text)
			if err != nil {
				return decimal.Zero, errors.New("Please enter a valid numeric amount (e.g., 100 or 123.45).")
			}
			if v.IsNegative() {
				return decimal.Zero, errors.New("Amount must be non-negative.")
			}
			return v, nil
		},
	}
}

// dateField accepts a YYYY-MM-DD date; empty means the latest rate.
func (s *Session) dateField(prompt string) Field[DateSpec] {
	return Field[DateSpec]{
		Prompt: prompt,
		Parse: func(text string) (DateSpec, error) {
			on, err := ParseDate(text)
			if err != nil {
				return DateSpec{}, errors.New("Invalid date format. Please use YYYY-MM-DD (e.g., 2025-11-05).")
			}
			return DateSpec{On: on}, nil
		},
		OnEmpty: func() (DateSpec, error) { return DateSpec{}, nil },
	}
}

// resolveRate calls the provider for the requested date spec.
func (s *Session) resolveRate(ctx context.Context, base, target string, spec DateSpec) (RatePoint, error) {
	if spec.Latest() {
		return s.provider.FetchLatest(ctx, base, target)
	}
	return s.provider.FetchOnDate(ctx, base, target, spec.On)
}

// ListCurrencies prints every supported currency, ordered by code.
func (s *Session) ListCurrencies(ctx context.Context) Outcome {
	s.ensureRegistry(ctx)
	if s.registry.Len() == 0 {
		fmt.Fprintln(s.w, "\n[!] No currencies loaded.")
		return Unavailable
	}

	fmt.Fprintf(s.w, "\n[Supported Currencies] (%d codes)\n", s.registry.Len())
	s.rec.Record("User listed supported currencies.")

	for code, name := range s.registry.All() {
		fmt.Fprintf(s.w, "- %s: %s\n", code, name)
	}
	fmt.Fprintln(s.w)
	return Done
}

// SetBase lets the user change the session base currency. Pressing Enter
// cancels.
func (s *Session) SetBase(ctx context.Context) Outcome {
	s.ensureRegistry(ctx)
	fmt.Fprintf(s.w, "\nCurrent base currency: %s\n", s.base)

	code, err := Ask(s.w, s.in, s.currencyField(
		"Enter new base currency code (3 letters, e.g., USD) or press Enter to cancel: ",
		func() (string, error) {
			fmt.Fprintln(s.w, "[i] Cancelled. Returning to main menu.")
			return "", ErrCancelled
		},
	))
	if err != nil {
		return s.abandoned("base currency change", err)
	}

	s.base = code
	fmt.Fprintf(s.w, "[✓] Base currency set to %s\n\n", s.base)
	s.rec.Record("Base currency changed to " + s.base)
	return Done
}

// ShowRate asks for a currency pair and an optional date, then displays the
// resolved rate together with the provider's effective date.
func (s *Session) ShowRate(ctx context.Context) Outcome {
	s.ensureRegistry(ctx)
	fmt.Fprintf(s.w, "\nCurrent base currency: %s\n", s.base)

	base, err := Ask(s.w, s.in, s.currencyField(
		"Enter base currency (3 letters) or press Enter to use current base: ",
		func() (string, error) { return s.base, nil },
	))
	if err != nil {
		return s.abandoned("rate lookup", err)
	}

	target, err := Ask(s.w, s.in, s.currencyField(
		"Enter target currency (3 letters, e.g., THB): ", nil))
	if err != nil {
		return s.abandoned("rate lookup", err)
	}

	spec, err := Ask(s.w, s.in, s.dateField(
		"\nEnter date [YYYY-MM-DD] for historical rate, or press Enter for latest: "))
	if err != nil {
		return s.abandoned("rate lookup", err)
	}

	pt, err := s.resolveRate(ctx, base, target, spec)
	if err != nil {
		fmt.Fprintln(s.w, "[!] Failed to retrieve rate.")
		return Unavailable
	}

	s.rec.Record(fmt.Sprintf("Rate checked: %s->%s (date=%s, rate=%s)",
		base, target, pt.On, pt.Rate))

	s.frame(fmt.Sprintf("[Rate] %s → %s = %s  (date=%s)",
		base, target, pt.Rate.StringFixed(6), pt.On))
	return Done
}

// Convert asks for a currency pair, an amount and an optional date, resolves
// the rate and displays the converted amount.
func (s *Session) Convert(ctx context.Context) Outcome {
	s.ensureRegistry(ctx)
	fmt.Fprintf(s.w, "\nCurrent base currency: %s\n", s.base)

	source, err := Ask(s.w, s.in, s.currencyField(
		"Enter source currency (3 letters) or press Enter to use base: ",
		func() (string, error) { return s.base, nil },
	))
	if err != nil {
		return s.abandoned("conversion", err)
	}

	target, err := Ask(s.w, s.in, s.currencyField(
		"Enter target currency (3 letters): ", nil))
	if err != nil {
		return s.abandoned("conversion", err)
	}

	if source == target {
		fmt.Fprintln(s.w, "[i] Same currency → amount unchanged.")
		return Done
	}

	amount, err := Ask(s.w, s.in, s.amountField(
		"Amount (non-negative number, e.g., 100 or 123.45): "))
	if err != nil {
		return s.abandoned("conversion", err)
	}

	spec, err := Ask(s.w, s.in, s.dateField(
		"Enter date [YYYY-MM-DD] for historical rate, or press Enter for latest: "))
	if err != nil {
		return s.abandoned("conversion", err)
	}

	pt, err := s.resolveRate(ctx, source, target, spec)
	if err != nil {
		fmt.Fprintln(s.w, "[!] Failed to retrieve rate.")
		return Unavailable
	}

	from := M(amount, source)
	to := from.Convert(target, pt.Rate)

	s.rec.Record(fmt.Sprintf("Converted %s %s to %s %s (rate=%s, date=%s)",
		amount, source, to.Amount(), target, pt.Rate, pt.On))

	s.frame(fmt.Sprintf("[Result] %s %s → %s %s  (rate=%s, date=%s)",
		from, source, to, target, pt.Rate.StringFixed(6), pt.On))
	return Done
}
