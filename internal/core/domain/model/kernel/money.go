package kernel

import (
	"fmt"

	"catering/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fraction digits every stored amount carries.
const MoneyScale int32 = 2

// Round2 quantizes d to two fraction digits, rounding halves away from zero.
// For the non-negative amounts handled here that is round-half-up.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyScale)
}

// Money is a non-negative amount with exactly two fraction digits.
// The zero value is a valid amount of 0.00.
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns 0.00.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoney rounds d once with Round2 and rejects negative results.
func NewMoney(d decimal.Decimal) (Money, error) {
	rounded := Round2(d)
	if rounded.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money",
			fmt.Errorf("%s is negative", rounded.StringFixed(MoneyScale)),
		)
	}
	return Money{amount: rounded}, nil
}

// MoneyFromString parses a decimal literal such as "50.00".
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", err)
	}
	return NewMoney(d)
}

// MustMoney is NewMoney for literals known to be valid.
func MustMoney(s string) Money {
	m, err := MoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Amount exposes the decimal for arithmetic that must stay unrounded until the end.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String always renders two fraction digits.
func (m Money) String() string {
	return m.amount.StringFixed(MoneyScale)
}
