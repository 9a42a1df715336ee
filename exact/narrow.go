// SPDX-License-Identifier: MIT

package exact

// Narrow converts v to the type To and fails with ErrTruncation if the
// conversion is not value-preserving: either bits beyond the width of To
// would be discarded, or the sign of the result differs from the sign of v
// (e.g. int8(-1) to uint8, or uint64(1<<63) to int64).
//
// Widening conversions always succeed, so Narrow is also a safe general
// integer conversion.
//
// Example:
//
//	n, err := Narrow[int32](int64(math.MaxInt32))     // MaxInt32, nil
//	_, err = Narrow[int32](int64(math.MaxInt32) + 1)  // ErrTruncation
func Narrow[To, From Integer](v From) (To, error) {
	out := To(v)
	if From(out) != v || (out < 0) != (v < 0) {
		return 0, opErrorf("Narrow", ErrTruncation)
	}

	return out, nil
}

// NarrowLossy converts v to To with Go's two's-complement conversion rules:
// the low-order bits are kept and the rest discarded. It never fails.
// Prefer Narrow unless wraparound is the intent.
func NarrowLossy[To, From Integer](v From) To {
	return To(v)
}
