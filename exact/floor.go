// SPDX-License-Identifier: MIT

package exact

// FloorDiv returns the largest integer q with q <= a/b (rounding toward
// negative infinity), unlike Go's / operator which truncates toward zero.
//
//	FloorDiv(-222, 14) == -16   // -222/14 == -15
//
// Errors:
//   - ErrDivisionByZero if b == 0.
//   - ErrOverflow for MinValue / -1 on signed types (the quotient is
//     MaxValue+1; Go's operator silently returns MinValue).
func FloorDiv[T Integer](a, b T) (T, error) {
	if b == 0 {
		return 0, opErrorf("FloorDiv", ErrDivisionByZero)
	}
	if IsSigned[T]() && a == MinValue[T]() && b == ^T(0) { // ^T(0) == -1
		return 0, opErrorf("FloorDiv", ErrOverflow)
	}
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q-- // truncation rounded toward zero, i.e. up; step down once
	}

	return q, nil
}

// FloorMod returns a - FloorDiv(a, b)*b. The result is zero or has the
// sign of b, and satisfies FloorDiv(a,b)*b + FloorMod(a,b) == a.
//
//	FloorMod(-222, 14) == 2     // -222%14 == -12
//
// Errors:
//   - ErrDivisionByZero if b == 0.
//
// FloorMod(MinValue, -1) is 0 and does not fail.
func FloorMod[T Integer](a, b T) (T, error) {
	if b == 0 {
		return 0, opErrorf("FloorMod", ErrDivisionByZero)
	}
	m := a % b // Go defines MinValue % -1 == 0
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}

	return m, nil
}
