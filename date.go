package fxconvert

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DateFormat is the format used to represent dates as strings, ISO-8601.
const DateFormat = "2006-01-02"

// Date represents a calendar date with day-level granularity.
//
// The zero Date is meaningful: it stands for "no date", i.e. the most recent
// business day known to the rate provider.
type Date struct {
	y int // year
	m int // month
	d int // day
}

// NewDate returns the Date for the given year, month, and day.
// The caller is expected to pass an existing calendar day.
func NewDate(year, month, day int) Date { return Date{year, month, day} }

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() int { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// String formats the date as YYYY-MM-DD.
func (d Date) String() string { return fmt.Sprintf("%04d-%02d-%02d", d.y, d.m, d.d) }

// isLeap reports whether a year is a leap year in the Gregorian calendar:
// divisible by 400, or by 4 but not by 100.
func isLeap(year int) bool {
	return year%400 == 0 || (year%4 == 0 && year%100 != 0)
}

// daysIn returns the number of days in a month, accounting for leap years.
// month must be in [1,12].
func daysIn(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	default: // February
		if isLeap(year) {
			return 29
		}
		return 28
	}
}

// allDigits reports whether s is non-empty and made of ASCII digits only.
func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// atoi converts a digits-only string. Only call after allDigits.
func atoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}

// ParseDate parses a strict YYYY-MM-DD calendar date. It trims surrounding
// whitespace and verifies the date actually exists: fixed 4/2/2 widths,
// month in [1,12], and day within the month length for that year.
func ParseDate(str string) (Date, error) {
	str = strings.TrimSpace(str)
	parts := strings.Split(str, "-")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("invalid date %q: want format %q", str, DateFormat)
	}
	ys, ms, ds := parts[0], parts[1], parts[2]
	if len(ys) != 4 || len(ms) != 2 || len(ds) != 2 {
		return Date{}, fmt.Errorf("invalid date %q: want format %q", str, DateFormat)
	}
	if !allDigits(ys) || !allDigits(ms) || !allDigits(ds) {
		return Date{}, fmt.Errorf("invalid date %q: want format %q", str, DateFormat)
	}
	y, m, d := atoi(ys), atoi(ms), atoi(ds)
	if m < 1 || m > 12 {
		return Date{}, fmt.Errorf("invalid date %q: month %d out of range", str, m)
	}
	if d < 1 || d > daysIn(y, m) {
		return Date{}, fmt.Errorf("invalid date %q: day %d out of range for %04d-%02d", str, d, y, m)
	}
	return Date{y, m, d}, nil
}

// IsValidDate reports whether str is a valid calendar date in YYYY-MM-DD form.
func IsValidDate(str string) bool {
	_, err := ParseDate(str)
	return err == nil
}

// MustParseDate is like ParseDate but panics on error. For tests.
func MustParseDate(str string) Date {
	d, err := ParseDate(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON implements the json specific way to unmarshal a date from a
// json string, as the rate provider reports its effective dates.
func (d *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	on, err := ParseDate(str)
	if err != nil {
		return err
	}
	*d = on
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	str := d.String()
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json marshal/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
