package kernel

import (
	"fmt"

	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed indicates that a Money value was not created
// through one of the constructor functions. It is returned when validating
// a zero-value Money.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("Money must be created via NewMoney, NewMoneyFromString, or ZeroMoney")

// Money is a value object representing a monetary amount with a fixed
// two-digit fractional scale. Every constructor and arithmetic operation
// normalizes the amount with banker's rounding (round half to even), so two
// Money values that denote the same amount always compare equal regardless
// of the scale their inputs carried.
//
// Money is immutable: arithmetic returns a new value and never mutates the
// receiver. The zero value is invalid and must be constructed through
// NewMoney, NewMoneyFromString, or ZeroMoney.
//
// Example usage:
//
//	price := kernel.NewMoney(decimal.NewFromFloat(50.00))
//	total := price.Multiply(decimal.NewFromInt(3))
//	if !total.IsGreaterThanZero() {
//	    // reject
//	}
type Money struct {
	amount decimal.Decimal

	isConstructed bool
}

// NewMoney creates a Money value from a decimal amount, normalizing it to
// two fractional digits with banker's rounding.
func NewMoney(amount decimal.Decimal) Money {
	return Money{
		amount:        amount.RoundBank(2),
		isConstructed: true,
	}
}

// NewMoneyFromString parses a decimal string such as "199.99" into a Money
// value. Returns an error if the string is not a valid decimal number.
func NewMoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money amount", err)
	}
	return NewMoney(amount), nil
}

// ZeroMoney returns a valid Money value of 0.00. It is the identity element
// for Add and the usual seed for summing item subtotals.
func ZeroMoney() Money {
	return NewMoney(decimal.Zero)
}

// Amount returns the underlying normalized decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns the sum of two Money values.
func (m Money) Add(other Money) Money {
	return NewMoney(m.amount.Add(other.amount))
}

// Subtract returns the difference of two Money values.
func (m Money) Subtract(other Money) Money {
	return NewMoney(m.amount.Sub(other.amount))
}

// Multiply returns the Money value scaled by the given factor, normalized
// back to two fractional digits.
func (m Money) Multiply(factor decimal.Decimal) Money {
	return NewMoney(m.amount.Mul(factor))
}

// IsGreaterThan reports whether m is strictly greater than other.
func (m Money) IsGreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

// IsGreaterThanZero reports whether the amount is strictly positive.
func (m Money) IsGreaterThanZero() bool {
	return m.amount.IsPositive()
}

// IsEqual compares two Money values by normalized amount.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders the amount with exactly two fractional digits, e.g.
// "200.00". This is the format used in validation error messages.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// Validate checks that the Money value was properly constructed.
// Returns ErrMoneyIsNotConstructed for a zero value.
func (m Money) Validate() error {
	if !m.isConstructed {
		return ErrMoneyIsNotConstructed
	}
	return nil
}

var _ fmt.Stringer = Money{}
