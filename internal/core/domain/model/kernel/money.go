package kernel

import (
	"strings"

	"tableside/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of decimal places every Money value is held at.
const MoneyScale = 2

// Money is an immutable currency amount rounded half away from zero to two decimals.
// The zero value is a valid zero amount.
//
// Example:
//
//	price, _ := kernel.ParseMoney("80")
//	subtotal := price.MulInt(2) // 160.00
type Money struct {
	amount decimal.Decimal
}

// NewMoney builds Money from a decimal, rounding it to MoneyScale places.
func NewMoney(amount decimal.Decimal) Money {
	return Money{amount: amount.Round(MoneyScale)}
}

// MoneyFromFloat is a convenience constructor for literals and tests.
func MoneyFromFloat(amount float64) Money {
	return NewMoney(decimal.NewFromFloat(amount))
}

// MoneyFromCents builds Money from an integer number of hundredths.
func MoneyFromCents(cents int64) Money {
	return Money{amount: decimal.New(cents, -MoneyScale)}
}

// ParseMoney parses a decimal string such as "80", "80.5" or "80.50".
func ParseMoney(raw string) (Money, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Money{}, errs.NewValueIsRequiredError("price")
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("price", err)
	}
	return NewMoney(amount), nil
}

func ZeroMoney() Money {
	return Money{}
}

// Decimal exposes the underlying amount for persistence mappers.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) Add(other Money) Money {
	return NewMoney(m.amount.Add(other.amount))
}

// MulInt multiplies by an integer quantity and rounds the product to two decimals.
func (m Money) MulInt(quantity int) Money {
	return NewMoney(m.amount.Mul(decimal.NewFromInt(int64(quantity))))
}

func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Float64 returns the amount as a float for presentation. Do not compute with it.
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// String renders the amount with exactly two decimals, e.g. "160.00".
func (m Money) String() string {
	return m.amount.StringFixed(MoneyScale)
}
