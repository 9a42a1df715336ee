// SPDX-License-Identifier: MIT

package exact

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Integer is the set of types every operation in this package accepts:
// int, int8..int64, uint, uint8..uint64 and uintptr, plus named types
// derived from them.
type Integer = constraints.Integer

// Bits reports the width of T in bits (8, 16, 32 or 64).
func Bits[T Integer]() int {
	var zero T

	return int(unsafe.Sizeof(zero)) * 8
}

// IsSigned reports whether T is a signed integer type.
func IsSigned[T Integer]() bool {
	var zero T

	return zero-1 < zero // wraps to the maximum for unsigned types
}

// MaxValue returns the largest value representable in T.
func MaxValue[T Integer]() T {
	n := Bits[T]()
	if IsSigned[T]() {
		return T(uint64(1)<<(n-1) - 1)
	}

	return T(^uint64(0) >> (64 - n))
}

// MinValue returns the smallest value representable in T
// (zero for unsigned types).
func MinValue[T Integer]() T {
	if !IsSigned[T]() {
		return 0
	}

	return -MaxValue[T]() - 1
}

// magnitude returns |v| as an unsigned 64-bit value.
// It is exact for every input, including MinValue of a signed type.
func magnitude[T Integer](v T) uint64 {
	if v < 0 {
		return uint64(-int64(v)) // -MinInt64 wraps to itself; as uint64 it is 1<<63
	}

	return uint64(v)
}
