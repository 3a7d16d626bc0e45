/**
 * @description
 * Monetary value types shared by the Akahu models.
 *
 * Amounts are arbitrary-precision decimals decoded directly from the JSON
 * literal, never through a float64 intermediate, so financial values survive
 * decode/encode cycles without rounding drift. Currency codes are validated
 * against the ISO 4217 set at decode time.
 *
 * @dependencies
 * - github.com/shopspring/decimal: arbitrary-precision decimal arithmetic.
 * - golang.org/x/text/currency: ISO 4217 currency code validation.
 */
package money

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Amount is an arbitrary-precision decimal amount.
//
// It unmarshals from either a JSON number or a JSON string holding a decimal
// literal, and marshals back to a bare JSON number with the original scale
// intact (an input of 123.456789 re-encodes as exactly 123.456789).
type Amount struct {
	dec decimal.Decimal
}

// NewAmount wraps a decimal value in an Amount.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{dec: d}
}

// ParseAmount parses a decimal literal such as "-105.25".
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return Amount{dec: d}, nil
}

// MustAmount is ParseAmount for literals known to be valid. It panics on a
// malformed literal and is intended for tests and constants.
func MustAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Decimal returns the underlying decimal value.
func (a Amount) Decimal() decimal.Decimal {
	return a.dec
}

func (a Amount) String() string {
	return a.dec.String()
}

// IsNegative reports whether the amount is below zero.
func (a Amount) IsNegative() bool {
	return a.dec.IsNegative()
}

// Equal reports numeric equality regardless of scale, so 1.5 equals 1.50.
func (a Amount) Equal(b Amount) bool {
	return a.dec.Equal(b.dec)
}

// MarshalJSON encodes the amount as a bare JSON number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.dec.String()), nil
}

// UnmarshalJSON decodes a JSON number or a string-wrapped decimal literal.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) > 1 && s[0] == '"' {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("amount: malformed string literal %s: %w", s, err)
		}
		s = unquoted
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("amount: %q is not a decimal number: %w", s, err)
	}
	a.dec = d
	return nil
}

// Currency is a validated ISO 4217 currency code, e.g. "NZD".
type Currency struct {
	unit currency.Unit
}

// ParseCurrency validates a 3-letter ISO 4217 code. An unrecognised code is
// an error; monetary values are never accepted with an unknown currency.
func ParseCurrency(code string) (Currency, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return Currency{}, fmt.Errorf("currency %q is not a known ISO 4217 code: %w", code, err)
	}
	return Currency{unit: unit}, nil
}

// MustCurrency is ParseCurrency for codes known to be valid.
func MustCurrency(code string) Currency {
	c, err := ParseCurrency(code)
	if err != nil {
		panic(err)
	}
	return c
}

// Code returns the 3-letter ISO 4217 code.
func (c Currency) Code() string {
	return c.unit.String()
}

func (c Currency) String() string {
	return c.unit.String()
}

// MarshalJSON encodes the currency as its 3-letter code.
func (c Currency) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(c.unit.String())), nil
}

// UnmarshalJSON decodes and validates a currency code string.
func (c *Currency) UnmarshalJSON(data []byte) error {
	code, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("currency: expected a string, got %s", string(data))
	}
	parsed, err := ParseCurrency(code)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Money pairs an amount with the currency it is denominated in.
type Money struct {
	Amount   Amount   `json:"amount"`
	Currency Currency `json:"currency"`
}
