// SPDX-License-Identifier: MIT

package exact

// ToUnsigned returns the bit pattern of a, zero-extended to 64 bits.
// For int32(-1) it returns 0xFFFFFFFF, not 0xFFFFFFFFFFFFFFFF.
func ToUnsigned[T Integer](a T) uint64 {
	u := uint64(a) // sign-extends for negative signed values
	if n := Bits[T](); n < 64 {
		u &= uint64(1)<<n - 1 // keep only the bits that belong to T
	}

	return u
}

// CompareUnsigned compares a and b as if their bit patterns were unsigned.
// It returns -1 if a < b, 0 if a == b and +1 if a > b.
//
// For signed types this places every negative value above every
// non-negative one: CompareUnsigned[int32](math.MinInt32, math.MaxInt32) == 1.
func CompareUnsigned[T Integer](a, b T) int {
	ua, ub := ToUnsigned(a), ToUnsigned(b)
	switch {
	case ua < ub:
		return -1
	case ua > ub:
		return 1
	default:
		return 0
	}
}

// DivideUnsigned returns the unsigned quotient a/b, reinterpreting both bit
// patterns as unsigned. The result is returned in T (same bit pattern).
// Fails with ErrDivisionByZero when b == 0.
func DivideUnsigned[T Integer](a, b T) (T, error) {
	if b == 0 {
		return 0, opErrorf("DivideUnsigned", ErrDivisionByZero)
	}

	return T(ToUnsigned(a) / ToUnsigned(b)), nil
}

// RemainderUnsigned returns the unsigned remainder a%b, reinterpreting both
// bit patterns as unsigned. Fails with ErrDivisionByZero when b == 0.
func RemainderUnsigned[T Integer](a, b T) (T, error) {
	if b == 0 {
		return 0, opErrorf("RemainderUnsigned", ErrDivisionByZero)
	}

	return T(ToUnsigned(a) % ToUnsigned(b)), nil
}
