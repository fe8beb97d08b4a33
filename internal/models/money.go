package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// UnitPrice is the price of a single line.
const UnitPrice = 1000

var unitPrice = decimal.NewFromInt(UnitPrice)

// Money is a non-negative amount paid by a customer.
type Money struct {
	amount decimal.Decimal
}

// NewMoney validates the amount and wraps it.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, fmt.Errorf("%w: amount %s is negative", ErrInvalidMoney, amount)
	}
	return Money{amount: amount}, nil
}

// ParseMoney builds Money from user input such as "5000" or "5000.5".
func ParseMoney(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q is not a number", ErrInvalidMoney, s)
	}
	return NewMoney(amount)
}

// Amount returns the paid amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// TicketCount returns how many lines the amount buys. The remainder is dropped.
func (m Money) TicketCount() int {
	q, _ := m.amount.QuoRem(unitPrice, 0)
	return int(q.IntPart())
}

// Remainder returns the change that TicketCount leaves unused.
func (m Money) Remainder() decimal.Decimal {
	_, r := m.amount.QuoRem(unitPrice, 0)
	return r
}

func (m Money) String() string {
	return m.amount.String()
}
