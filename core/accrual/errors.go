package accrual

import "errors"

var (
	// errors
	ErrArithmeticOverflow = errors.New("arithmetic overflow while computing balance")
)
