// SPDX-License-Identifier: MIT
// Package exact: sentinel error set.
//
// Every failing operation returns exactly one of these sentinels, wrapped
// with the operation name ("Multiply: exact: overflow"). Callers MUST match
// with errors.Is; the message text is not part of the contract.

package exact

import (
	"errors"
	"fmt"
)

var (
	// ErrOverflow indicates that the true arithmetic result lies outside the
	// range of the result type.
	ErrOverflow = errors.New("exact: overflow")

	// ErrTruncation indicates that a narrowing conversion would discard
	// significant bits or flip the sign.
	ErrTruncation = errors.New("exact: truncation")

	// ErrDivisionByZero indicates a zero divisor in any division or modulo.
	ErrDivisionByZero = errors.New("exact: division by zero")

	// ErrInvalidInput indicates malformed input outside the arithmetic
	// itself: bad digits, unsupported radix, nil big.Int.
	ErrInvalidInput = errors.New("exact: invalid input")
)

// opErrorf tags a sentinel with the operation that produced it.
func opErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
