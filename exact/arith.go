// SPDX-License-Identifier: MIT

package exact

import "math/bits"

// Add returns a+b, or ErrOverflow if the true sum does not fit in T.
//
// Signed overflow happens only when both operands share a sign and the
// wrapped sum has the other one; unsigned overflow only when the wrapped
// sum is smaller than an operand.
//
// Complexity: O(1).
func Add[T Integer](a, b T) (T, error) {
	sum := a + b
	if IsSigned[T]() {
		if (a >= 0) == (b >= 0) && (sum >= 0) != (a >= 0) {
			return 0, opErrorf("Add", ErrOverflow)
		}

		return sum, nil
	}
	if sum < a {
		return 0, opErrorf("Add", ErrOverflow)
	}

	return sum, nil
}

// Subtract returns a-b, or ErrOverflow if the true difference does not fit in T.
//
// Complexity: O(1).
func Subtract[T Integer](a, b T) (T, error) {
	diff := a - b
	if IsSigned[T]() {
		if (a >= 0) != (b >= 0) && (diff >= 0) != (a >= 0) {
			return 0, opErrorf("Subtract", ErrOverflow)
		}

		return diff, nil
	}
	if b > a {
		return 0, opErrorf("Subtract", ErrOverflow)
	}

	return diff, nil
}

// Multiply returns a*b, or ErrOverflow if the true product does not fit in T.
//
// Implementation:
//   - Stage 1: take the magnitudes of both operands as uint64.
//   - Stage 2: form the full 128-bit product with bits.Mul64, so nothing
//     can wrap before the range check.
//   - Stage 3: the product fits iff the high word is zero and the low word
//     is within MaxValue (MaxValue+1 for a negative signed result).
//
// Complexity: O(1).
func Multiply[T Integer](a, b T) (T, error) {
	hi, lo := bits.Mul64(magnitude(a), magnitude(b))
	limit := uint64(MaxValue[T]())
	negative := IsSigned[T]() && (a < 0) != (b < 0)
	if negative {
		limit++ // |MinValue| is one larger than MaxValue
	}
	if hi != 0 || lo > limit {
		return 0, opErrorf("Multiply", ErrOverflow)
	}
	if negative {
		return T(-int64(lo)), nil
	}

	return T(lo), nil
}

// Negate returns -a. It fails with ErrOverflow for MinValue of a signed
// type and for every non-zero value of an unsigned type.
func Negate[T Integer](a T) (T, error) {
	if IsSigned[T]() {
		if a == MinValue[T]() {
			return 0, opErrorf("Negate", ErrOverflow)
		}

		return -a, nil
	}
	if a != 0 {
		return 0, opErrorf("Negate", ErrOverflow)
	}

	return 0, nil
}

// Abs returns |a|. It fails with ErrOverflow only for MinValue of a signed type.
func Abs[T Integer](a T) (T, error) {
	if a >= 0 {
		return a, nil
	}
	if a == MinValue[T]() {
		return 0, opErrorf("Abs", ErrOverflow)
	}

	return -a, nil
}
