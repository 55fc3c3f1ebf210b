// Package money implements the monetary amount used throughout the backend.
//
// Amounts are EUR denominated and always rounded to two decimal places,
// half away from zero.
package money

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount       = errors.New("the amount must be a finite number")
	ErrDivisionByZero      = errors.New("the amount cannot be divided by zero")
	ErrInvalidAmountFormat = errors.New("the amount could not be parsed")
)

// epsilon is the tolerance used for equality and zero checks.
var epsilon = decimal.New(1, -2)

// Amount is an immutable EUR amount with two decimal places.
type Amount struct {
	value decimal.Decimal
}

// New creates an Amount from a float, rounded to two decimal places.
func New(value float64) (Amount, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Amount{}, ErrInvalidAmount
	}

	return FromDecimal(decimal.NewFromFloat(value)), nil
}

// FromDecimal creates an Amount from a decimal, rounded to two decimal places.
func FromDecimal(d decimal.Decimal) Amount {
	return Amount{value: d.Round(2)}
}

// Zero returns the zero amount.
func Zero() Amount {
	return Amount{}
}

// Decimal returns the underlying decimal value.
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// Float64 returns the amount as a float. The value is exact for all
// amounts with two decimal places that occur in practice.
func (a Amount) Float64() float64 {
	f, _ := a.value.Float64()
	return f
}

func (a Amount) Add(other Amount) Amount {
	return FromDecimal(a.value.Add(other.value))
}

func (a Amount) Sub(other Amount) Amount {
	return FromDecimal(a.value.Sub(other.value))
}

// Mul multiplies the amount, failing on a non-finite factor.
func (a Amount) Mul(factor float64) (Amount, error) {
	if math.IsNaN(factor) || math.IsInf(factor, 0) {
		return Amount{}, ErrInvalidAmount
	}

	return FromDecimal(a.value.Mul(decimal.NewFromFloat(factor))), nil
}

// Div divides the amount, failing on a zero divisor instead of
// producing an infinite value.
func (a Amount) Div(divisor float64) (Amount, error) {
	if divisor == 0 {
		return Amount{}, ErrDivisionByZero
	}
	if math.IsNaN(divisor) || math.IsInf(divisor, 0) {
		return Amount{}, ErrInvalidAmount
	}

	return FromDecimal(a.value.Div(decimal.NewFromFloat(divisor))), nil
}

func (a Amount) Abs() Amount {
	return Amount{value: a.value.Abs()}
}

func (a Amount) Neg() Amount {
	return Amount{value: a.value.Neg()}
}

// Equal reports whether two amounts are equal within a tolerance of 0.01.
func (a Amount) Equal(other Amount) bool {
	return a.value.Sub(other.value).Abs().LessThan(epsilon)
}

func (a Amount) IsPositive() bool {
	return a.value.IsPositive()
}

func (a Amount) IsNegative() bool {
	return a.value.IsNegative()
}

// IsZero reports whether the amount is zero within the equality tolerance.
func (a Amount) IsZero() bool {
	return a.value.Abs().LessThan(epsilon)
}

func (a Amount) GreaterThan(other Amount) bool {
	return a.value.GreaterThan(other.value)
}

func (a Amount) LessThan(other Amount) bool {
	return a.value.LessThan(other.value)
}

// String returns the plain decimal representation with two decimal
// places, e.g. "-1234.56".
func (a Amount) String() string {
	return a.value.StringFixed(2)
}

// Format renders the amount in the es-ES locale with a currency
// suffix, e.g. "1.234,56 €".
func (a Amount) Format() string {
	s := a.value.Abs().StringFixed(2)

	whole := s[:len(s)-3]
	fraction := s[len(s)-2:]

	// Group the integer digits in threes, separated by dots
	var groups []string
	for len(whole) > 3 {
		groups = append([]string{whole[len(whole)-3:]}, groups...)
		whole = whole[:len(whole)-3]
	}
	groups = append([]string{whole}, groups...)

	sign := ""
	if a.value.IsNegative() {
		sign = "-"
	}

	return fmt.Sprintf("%s%s,%s €", sign, strings.Join(groups, "."), fraction)
}

// Parse reads an amount in the es-ES locale: comma as the decimal
// separator, optional dots as thousands separators and an optional
// currency symbol, e.g. "1.234,56 €" or "-45,50".
func Parse(input string) (Amount, error) {
	clean := strings.NewReplacer("€", "", " ", "", "\t", "", ".", "").Replace(input)
	clean = strings.ReplaceAll(clean, ",", ".")

	if clean == "" {
		return Amount{}, fmt.Errorf("%w: %q", ErrInvalidAmountFormat, input)
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %q", ErrInvalidAmountFormat, input)
	}

	return FromDecimal(d), nil
}

// MarshalJSON implements the json.Marshaler interface.
// Amounts are serialized as raw numbers, not formatted strings.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.value.StringFixed(2)), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (a *Amount) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		*a = Amount{}
		return nil
	}

	d, err := decimal.NewFromString(value)
	if err != nil {
		return ErrInvalidAmount
	}

	*a = FromDecimal(d)
	return nil
}

// Value returns the value for the SQL driver to write to the database.
func (a Amount) Value() (driver.Value, error) {
	return a.value.Value()
}

// Scan reads the value from the database.
func (a *Amount) Scan(value any) error {
	var d decimal.Decimal
	if err := d.Scan(value); err != nil {
		return err
	}

	*a = FromDecimal(d)
	return nil
}

// GormDataType defines the data type used by gorm for the type.
func (Amount) GormDataType() string {
	return "DECIMAL(20,8)"
}
