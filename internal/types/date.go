// Package types implements special types for the backend.
package types

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidDate       = errors.New("the value is not a real calendar date")
	ErrInvalidDateFormat = errors.New("the date must be in dd/mm/yyyy format")
)

// Date is a point in time with day granularity. The zero value is the
// zero time.
type Date struct {
	t time.Time
}

// NewDate returns the Date for a year, month and day.
//
// The components are re-checked after construction so that overflowing
// values like day 32 are rejected instead of rolling over into the
// next month, which is what time.Date does on its own.
func NewDate(year int, month time.Month, day int) (Date, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Date{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, month, day)
	}

	return Date{t: t}, nil
}

// DateOf returns the Date a time instant falls on, in UTC.
func DateOf(t time.Time) Date {
	t = t.In(time.UTC)
	return Date{t: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// Today returns the current date.
func Today() Date {
	return DateOf(time.Now())
}

// ParseDate parses a date in the dd/mm/yyyy format used by the es-ES
// locale.
func ParseDate(s string) (Date, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
	}

	var numbers [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return Date{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
		}
		numbers[i] = n
	}

	return NewDate(numbers[2], time.Month(numbers[1]), numbers[0])
}

// Format renders the date as dd/mm/yyyy. It is the inverse of ParseDate.
func (d Date) Format() string {
	return fmt.Sprintf("%02d/%02d/%04d", d.t.Day(), int(d.t.Month()), d.t.Year())
}

// String returns the date in RFC 3339 full-date format.
func (d Date) String() string {
	return d.t.Format("2006-01-02")
}

// Time returns the underlying time instant, midnight UTC.
func (d Date) Time() time.Time {
	return d.t
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) Year() int {
	return d.t.Year()
}

func (d Date) Month() time.Month {
	return d.t.Month()
}

func (d Date) Day() int {
	return d.t.Day()
}

func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// SameDay reports whether both dates fall on the same calendar day.
func (d Date) SameDay(other Date) bool {
	return d.t.Equal(other.t)
}

// InMonth reports whether the date is in the given calendar month.
// month is 1-based.
func (d Date) InMonth(year, month int) bool {
	return d.t.Year() == year && int(d.t.Month()) == month
}

// InRange reports whether the date is within [from, to], inclusive.
func (d Date) InRange(from, to Date) bool {
	return !d.Before(from) && !d.After(to)
}

// AddDays returns the date the given number of days later. Negative
// values move backwards.
func (d Date) AddDays(days int) Date {
	return Date{t: d.t.AddDate(0, 0, days)}
}

// AddMonths returns the date the given number of months later,
// normalized following time.AddDate semantics.
func (d Date) AddMonths(months int) Date {
	return Date{t: d.t.AddDate(0, months, 0)}
}

// AddYears returns the date the given number of years later,
// normalized following time.AddDate semantics.
func (d Date) AddYears(years int) Date {
	return Date{t: d.t.AddDate(years, 0, 0)}
}

// StartOfMonth returns the first day of the date's month.
func (d Date) StartOfMonth() Date {
	return Date{t: time.Date(d.t.Year(), d.t.Month(), 1, 0, 0, 0, 0, time.UTC)}
}

// EndOfMonth returns the last day of the date's month.
func (d Date) EndOfMonth() Date {
	return Date{t: time.Date(d.t.Year(), d.t.Month()+1, 0, 0, 0, 0, 0, time.UTC)}
}

// StartOfYear returns January 1 of the date's year.
func (d Date) StartOfYear() Date {
	return Date{t: time.Date(d.t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)}
}

// EndOfYear returns December 31 of the date's year.
func (d Date) EndOfYear() Date {
	return Date{t: time.Date(d.t.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)}
}

// MarshalJSON implements the json.Marshaler interface.
// Dates are serialized as ISO-8601 strings.
func (d Date) MarshalJSON() ([]byte, error) {
	return d.t.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// Both RFC 3339 timestamps and plain "2006-01-02" dates are accepted.
func (d *Date) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		*d = Date{}
		return nil
	}

	pattern := time.RFC3339
	if len(value) == len("2006-01-02") {
		pattern = "2006-01-02"
	}

	t, err := time.Parse(pattern, value)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}

	*d = DateOf(t)
	return nil
}

// Scan reads the value from the database.
func (d *Date) Scan(value any) error {
	nullTime := &sql.NullTime{}
	if err := nullTime.Scan(value); err != nil {
		return err
	}

	*d = DateOf(nullTime.Time)
	return nil
}

// Value returns the value for the SQL driver to write to the database.
func (d Date) Value() (driver.Value, error) {
	return d.t, nil
}

// GormDataType defines the data type used by gorm for the type.
func (Date) GormDataType() string {
	return "date"
}
