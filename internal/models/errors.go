package models

import "errors"

var (
	// ErrInvalidMoney is returned when a payment amount is negative, unparsable,
	// or cannot cover the requested lines.
	ErrInvalidMoney = errors.New("invalid money")
	// ErrInvalidTicket is returned when a set of numbers or a bonus number
	// breaks the size, range or uniqueness rules.
	ErrInvalidTicket = errors.New("invalid ticket")
)
