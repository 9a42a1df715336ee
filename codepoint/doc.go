// SPDX-License-Identifier: MIT

// Package codepoint turns text into sequences of Unicode scalar values and
// back, without ever splitting a character.
//
// What:
//
//   - Decode: UTF-8 string → Sequence, failing on malformed bytes instead of
//     substituting U+FFFD.
//   - DecodeUTF16: UTF-16 code units → Sequence, joining surrogate pairs into
//     one scalar and failing on unpaired surrogates.
//   - EncodeUTF16, Sequence.String: the reverse directions.
//   - Count, Each, Reverse, IsPalindrome, Remove, Single: small helpers
//     built on the above.
//
// Why:
//
//	Counting or reversing bytes (or UTF-16 units) treats "💕" as two or four
//	separate things. Every text package in this module goes through Decode
//	so that one element always means one character.
//
// Errors:
//
//   - ErrInvalidEncoding  malformed UTF-8 or an unpaired surrogate.
//   - ErrNotSingle        Single got zero or several code points.
package codepoint
