// SPDX-License-Identifier: MIT

// Package permute enumerates the distinct arrangements of the code points
// of a string.
//
// Construction fixes one position at a time, choosing each remaining code
// point for it. A code point already tried at the current position is
// skipped, so repeated characters never produce duplicate output and no
// post-hoc set is needed. For "ABC" the order is:
//
//	ABC ACB BAC BCA CAB CBA
//
// Output size is factorial in the input length. All materialises every
// arrangement and is guarded by WithMaxLength (DefaultMaxLength code
// points). Each and Seq stream the same sequence one string at a time and
// honour WithContext between emissions. Count returns the number of
// arrangements without producing them.
//
// Complexity:
//
//   - All, Each, Seq: Time O(n·P), Memory O(n) beyond the output, where n is
//     the number of code points and P the number of distinct arrangements.
//   - Count: Time O(n) big-integer multiplications.
package permute
