package domain

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is a fixed-point monetary amount. It marshals as a bare JSON
// number; binary floats are never used, so totals do not drift.
type Money struct {
	decimal.Decimal
}

// MoneyFromString parses a decimal string such as "12.99".
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("parse money: %w", err)
	}
	return Money{d}, nil
}

// MustMoney is MoneyFromString that panics on malformed input.
// Intended for constants and tests.
func MustMoney(s string) Money {
	m, err := MoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

// MoneyFromFloat converts a float64 amount.
func MoneyFromFloat(f float64) Money {
	return Money{decimal.NewFromFloat(f)}
}

// MoneyFromInt converts a whole-unit amount.
func MoneyFromInt(n int64) Money {
	return Money{decimal.NewFromInt(n)}
}

func (m Money) Add(o Money) Money {
	return Money{m.Decimal.Add(o.Decimal)}
}

func (m Money) Sub(o Money) Money {
	return Money{m.Decimal.Sub(o.Decimal)}
}

// MulInt scales the amount by a whole quantity.
func (m Money) MulInt(n int64) Money {
	return Money{m.Decimal.Mul(decimal.NewFromInt(n))}
}

// Equal reports exact numeric equality (1.5 == 1.50).
func (m Money) Equal(o Money) bool {
	return m.Decimal.Equal(o.Decimal)
}

// MarshalJSON emits the amount as a bare JSON number.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.Decimal.String()), nil
}

// UnmarshalJSON accepts a JSON number or a numeric string.
func (m *Money) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	if string(b) == "null" {
		return nil
	}
	d, err := decimal.NewFromString(string(b))
	if err != nil {
		return fmt.Errorf("parse money: %w", err)
	}
	m.Decimal = d
	return nil
}
