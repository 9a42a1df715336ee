// SPDX-License-Identifier: MIT

// Package freq counts code points in text and answers the questions built
// on those counts: which characters repeat, which one appears most, and
// which is the first one that appears exactly once.
//
// Every function decodes its input with codepoint.Decode, so a
// supplementary character such as "💕" is counted once, never as two
// halves, and malformed UTF-8 fails with codepoint.ErrInvalidEncoding.
//
// Key Types:
//
//   - Table: code point → count, iterated in first-appearance order.
//   - Entry: one (code point, count) pair.
//   - Option: WithSkipWhitespace.
//
// Complexity:
//
//   - Frequencies, FirstUnique, Duplicates, MostFrequent, RemoveDuplicates,
//     Occurrences:
//     Time O(n), Memory O(k), where n is the number of code points and k the
//     number of distinct ones.
package freq
