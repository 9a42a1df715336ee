// SPDX-License-Identifier: MIT

// Package lcp computes the longest common prefix of a list of strings.
//
// What:
//
//	Five interchangeable strategies share one contract: for a non-empty
//	list, return the longest string that is a prefix of every element.
//	They exist side by side because they trade work differently, and they
//	must always agree.
//
//	  • Horizontal      : fold a shrinking prefix across the list.
//	  • Vertical        : compare column by column across all strings.
//	  • DivideAndConquer: LCP of each half, then LCP of the two results.
//	  • BinarySearch    : binary-search the prefix length up to the
//	                       shortest string, testing all strings each step.
//	  • Sorted          : sort; the answer is the common prefix of the
//	                       first and last strings.
//
// Contract:
//
//   - Comparison is by code point: a prefix never ends inside a multi-byte
//     character.
//   - Any empty element makes the answer "".
//   - An empty list fails with ErrEmptyInput.
//   - Malformed UTF-8 fails with codepoint.ErrInvalidEncoding.
//   - The caller's slice is never reordered.
//
// Complexity (n strings, S code points in total, m the shortest length):
//
//   - Horizontal:       Time O(S),          Memory O(S) for decoding
//   - Vertical:         Time O(S),          stops at the first bad column
//   - DivideAndConquer: Time O(S),          Memory O(S + log n) recursion
//   - BinarySearch:     Time O(S·log m)
//   - Sorted:           Time O(n·log n·m)
package lcp
