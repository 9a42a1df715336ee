// SPDX-License-Identifier: MIT

package exact

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
)

// Radix bounds accepted by ParseUnsigned.
const (
	MinRadix = 2
	MaxRadix = 36
)

// ParseUnsigned parses s as an unsigned integer in the given radix and
// stores its bit pattern in T. For a signed T the result is the two's
// complement reinterpretation, so ParseUnsigned[int32]("ffffffff", 16)
// is -1 (the same bit pattern as uint32 0xFFFFFFFF).
//
// Digits beyond 9 are the letters a..z in either case. Signs, prefixes
// ("0x") and underscores are rejected.
//
// Errors:
//   - ErrInvalidInput for an empty string, a bad digit, or a radix
//     outside [MinRadix, MaxRadix].
//   - ErrOverflow if the value needs more than Bits[T]() bits.
func ParseUnsigned[T Integer](s string, radix int) (T, error) {
	if radix < MinRadix || radix > MaxRadix {
		return 0, opErrorf("ParseUnsigned", fmt.Errorf("radix %d: %w", radix, ErrInvalidInput))
	}
	u, err := strconv.ParseUint(s, radix, Bits[T]())
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, opErrorf("ParseUnsigned", fmt.Errorf("%q: %w", s, ErrOverflow))
		}

		return 0, opErrorf("ParseUnsigned", fmt.Errorf("%q: %w", s, ErrInvalidInput))
	}

	return T(u), nil
}

// FromBig converts an arbitrary-precision integer to T, failing with
// ErrTruncation if x lies outside T's range and ErrInvalidInput if x is nil.
// x is not modified.
func FromBig[T Integer](x *big.Int) (T, error) {
	if x == nil {
		return 0, opErrorf("FromBig", ErrInvalidInput)
	}
	if IsSigned[T]() {
		if !x.IsInt64() {
			return 0, opErrorf("FromBig", ErrTruncation)
		}
		out, err := Narrow[T](x.Int64())
		if err != nil {
			return 0, opErrorf("FromBig", ErrTruncation)
		}

		return out, nil
	}
	if !x.IsUint64() { // also false for negative values
		return 0, opErrorf("FromBig", ErrTruncation)
	}
	out, err := Narrow[T](x.Uint64())
	if err != nil {
		return 0, opErrorf("FromBig", ErrTruncation)
	}

	return out, nil
}
