// SPDX-License-Identifier: MIT

// Package exact performs arithmetic on fixed-width integers and either
// returns the mathematically correct result or fails with an explicit error.
// Nothing in this package wraps around silently or truncates without telling.
//
// 🚀 What is exact?
//
//	Go integer arithmetic is defined to wrap on overflow: int32(MaxInt32)+1
//	is MinInt32, and int32(int64(1<<40)) quietly keeps the low 32 bits.
//	That is fine for hashing and checksums, and a bug everywhere else.
//	exact gives the same operations with a (value, error) contract:
//	  • Add, Subtract, Multiply, Negate, Abs    → ErrOverflow
//	  • Narrow (vs NarrowLossy)                 → ErrTruncation
//	  • DivideUnsigned, RemainderUnsigned       → ErrDivisionByZero
//	  • FloorDiv, FloorMod                      → ErrDivisionByZero, ErrOverflow
//	  • CompareUnsigned, ToUnsigned             → total, never fail
//	  • ParseUnsigned, FromBig                  → parse / narrow from outside
//	  • Accumulator                             → chained ops, first error wins
//
// ✨ Key properties:
//   - generic over every Go integer type (constraints.Integer)
//   - total: every input yields a value or one of the sentinel errors
//   - on failure the returned value is always the zero value
//   - no allocation, no global state; safe for concurrent use
//
// ⚙️ Usage:
//
//	sum, err := exact.Add[int32](math.MaxInt32, 1)
//	if errors.Is(err, exact.ErrOverflow) {
//		// handle overflow
//	}
//
//	n, err := exact.Narrow[int32](int64(1) << 40) // ErrTruncation
//	lossy := exact.NarrowLossy[int32](int64(1) << 40) // 0
//
// Complexity:
//
//   - every operation is O(1) except ParseUnsigned (O(len(s))) and
//     FromBig (O(words)).
package exact
