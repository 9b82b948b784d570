package types

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Amount is a monetary value with decimal semantics. The upstream API is
// inconsistent about how it serializes money: requests take JSON numbers
// while several response shapes return the same fields as strings
// ("149.99"). Amount accepts both forms on the way in and always marshals
// as a plain JSON number, so the rest of the SDK deals with exactly one
// representation.
type Amount struct {
	decimal.Decimal
}

// NewAmount creates an Amount from a float value
func NewAmount(v float64) Amount {
	return Amount{decimal.NewFromFloat(v)}
}

// AmountFromString creates an Amount from its decimal string form
func AmountFromString(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Amount{d}, nil
}

// AmountFromDecimal wraps an existing decimal value
func AmountFromDecimal(d decimal.Decimal) Amount {
	return Amount{d}
}

// Float64 returns the nearest float64 representation
func (a Amount) Float64() float64 {
	f, _ := a.Decimal.Float64()
	return f
}

// MarshalJSON emits the amount as a bare JSON number
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}

// UnmarshalJSON accepts a JSON number, a numeric string, null, or an empty
// string. Empty and null decode to zero.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		a.Decimal = decimal.Zero
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("invalid amount: %w", err)
		}
		if s == "" {
			a.Decimal = decimal.Zero
			return nil
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", s, err)
		}
		a.Decimal = d
		return nil
	}

	d, err := decimal.NewFromString(string(data))
	if err != nil {
		return fmt.Errorf("invalid amount %s: %w", string(data), err)
	}
	a.Decimal = d
	return nil
}
