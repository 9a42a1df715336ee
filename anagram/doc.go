// SPDX-License-Identifier: MIT

// Package anagram decides whether two strings are anagrams: the same
// multiset of code points, possibly in a different order.
//
// What counts as "the same" is the caller's decision, made explicit with
// options. By default nothing is normalised, so "Listen" and "silent" are
// not anagrams. Available steps, applied in this order:
//
//   - WithNFC:             canonical composition (golang.org/x/text/unicode/norm),
//     so "e\u0301" and "\u00e9" compare equal.
//   - WithCaseFold:        Unicode case folding (golang.org/x/text/cases),
//     so "H" == "h" and "ß" == "ss".
//   - WithStripWhitespace: drop every unicode.IsSpace code point.
//   - WithNormalizer:      any custom string → string step, run last.
//
// IsAnagram is symmetric and runs in O(n) time with O(k) memory.
package anagram
