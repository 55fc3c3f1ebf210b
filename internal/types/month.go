package types

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Month is a month in a specific year.
type Month time.Time

// NewMonth returns a new Month.
func NewMonth(year int, month time.Month) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// MonthOf returns the Month a date falls in.
func MonthOf(d Date) Month {
	return NewMonth(d.Year(), d.Month())
}

// ParseMonth parses a "YYYY-MM" string and returns the Month value it
// represents.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, err
	}

	return NewMonth(t.Year(), t.Month()), nil
}

// String returns the month formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", time.Time(m).Year(), time.Time(m).Month())
}

// Year returns the calendar year of the month.
func (m Month) Year() int {
	return time.Time(m).Year()
}

// MonthNumber returns the 1-based month number.
func (m Month) MonthNumber() int {
	return int(time.Time(m).Month())
}

// IsZero reports if the month is the zero value.
func (m Month) IsZero() bool {
	return time.Time(m).IsZero()
}

// AddDate adds a specified amount of years and months.
func (m Month) AddDate(years, months int) Month {
	return Month(time.Time(m).AddDate(years, months, 0))
}

// Before reports whether the month instant m is before n.
func (m Month) Before(n Month) bool {
	return time.Time(m).Before(time.Time(n))
}

// After reports whether the month instant m is after n.
func (m Month) After(n Month) bool {
	return time.Time(m).After(time.Time(n))
}

// Equal reports whether m and n represent the same month.
func (m Month) Equal(n Month) bool {
	return time.Time(m).Equal(time.Time(n))
}

// Contains reports whether the date is in the month.
func (m Month) Contains(d Date) bool {
	return d.InMonth(m.Year(), m.MonthNumber())
}

// MarshalJSON implements the json.Marshaler interface.
func (m Month) MarshalJSON() ([]byte, error) {
	return time.Time(m).MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// "YYYY-MM" strings, full dates and RFC 3339 timestamps are accepted;
// everything except the year and the month is ignored.
func (m *Month) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	pattern := time.RFC3339
	switch len(value) {
	case len("2006-01"):
		pattern = "2006-01"
	case len("2006-01-02"):
		pattern = "2006-01-02"
	}

	t, err := time.Parse(pattern, value)
	if err != nil {
		return err
	}

	*m = NewMonth(t.Year(), t.Month())
	return nil
}

// Scan reads the value from the database.
func (m *Month) Scan(value any) error {
	nullTime := &sql.NullTime{}
	if err := nullTime.Scan(value); err != nil {
		return err
	}

	*m = NewMonth(nullTime.Time.Year(), nullTime.Time.Month())
	return nil
}

// Value returns the value for the SQL driver to write to the database.
func (m Month) Value() (driver.Value, error) {
	year, month, _ := time.Time(m).Date()
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC), nil
}

// GormDataType defines the data type used by gorm for the type.
func (Month) GormDataType() string {
	return "date"
}
