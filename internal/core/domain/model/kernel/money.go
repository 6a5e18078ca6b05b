package kernel

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"checkout/internal/pkg/errs"
	"checkout/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// MoneyDecimalPlaces is the number of fractional digits used when money is displayed.
const MoneyDecimalPlaces = 2

// MoneyMaxIntegerDigits and MoneyMaxScale bound the magnitude and precision an
// amount may carry, so formatting stays proportional to the input.
const (
	MoneyMaxIntegerDigits = 15
	MoneyMaxScale         = 18
)

const moneySymbol = "$"

var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney, MoneyFromString, MoneyFromFloat or ZeroMoney")

// Money is a non-negative monetary amount. Arithmetic is exact; rounding only
// happens when the amount is formatted.
type Money struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney wraps amount as Money.
//
// Parameters:
//   - amount: A non-negative decimal with at most MoneyMaxIntegerDigits integer
//     digits and at most MoneyMaxScale fractional digits
//
// Returns:
//   - Money: A constructed amount
//   - error: errs.ValueIsInvalidError if amount is negative or out of range
//
// Example:
//
//	price, err := NewMoney(decimal.RequireFromString("12.50"))
//	if err != nil {
//	    return err
//	}
func NewMoney(amount decimal.Decimal) (Money, error) {
	m := Money{
		guard: guard.NewConstructorGuard(),
	}

	if err := m.setAmount(amount); err != nil {
		return Money{}, err
	}

	return m, nil
}

// MoneyFromString parses a decimal literal such as "2.50" or "3000".
// Surrounding whitespace is ignored. Exponent notation is accepted as long as
// the resulting amount stays within the NewMoney bounds.
//
// Returns:
//   - Money: A constructed amount
//   - error: errs.ValueIsInvalidError if s is not a number, is negative or is out of range
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%q is not a valid number", s),
		)
	}

	return NewMoney(amount)
}

// MoneyFromFloat converts f, rejecting NaN and infinities.
func MoneyFromFloat(f float64) (Money, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%v is not a finite number", f),
		)
	}

	return NewMoney(decimal.NewFromFloat(f))
}

// ZeroMoney returns a constructed zero amount.
func ZeroMoney() Money {
	return Money{
		amount: decimal.Zero,
		guard:  guard.NewConstructorGuard(),
	}
}

// MustMoney parses s and panics on error. Intended for constants and tests.
func MustMoney(s string) Money {
	m, err := MoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns m + other. Both operands are non-negative, so the sum is too.
// The sum is only constructed when both operands are.
func (m Money) Add(other Money) Money {
	sum := Money{
		amount: m.amount.Add(other.amount),
	}
	if m.Validate() == nil && other.Validate() == nil {
		sum.guard = guard.NewConstructorGuard()
	}

	return sum
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares amounts numerically, so 2.5 equals 2.50.
func (m Money) IsEqual(other Money) (bool, error) {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return m.amount.Equal(other.amount), nil
}

// Fixed formats the amount with two decimal places and no symbol.
func (m Money) Fixed() string {
	return m.amount.StringFixed(MoneyDecimalPlaces)
}

// String formats the amount for display, e.g. "$12.50".
func (m Money) String() string {
	return moneySymbol + m.Fixed()
}

func (m *Money) setAmount(amount decimal.Decimal) error {
	// the range check comes first; formatting an unbounded amount is not cheap
	if err := checkMoneyRange(amount); err != nil {
		return err
	}
	if amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%s is less than 0", amount.String()),
		)
	}

	m.amount = amount
	return nil
}

func checkMoneyRange(amount decimal.Decimal) error {
	exp := int(amount.Exponent())
	if exp < -MoneyMaxScale {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("more than %d fractional digits", MoneyMaxScale),
		)
	}
	if exp > MoneyMaxIntegerDigits || amount.NumDigits()+exp > MoneyMaxIntegerDigits {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("more than %d integer digits", MoneyMaxIntegerDigits),
		)
	}
	return nil
}
