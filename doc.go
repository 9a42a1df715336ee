// SPDX-License-Identifier: MIT

// Package strnum is a set of small, correctness-first primitives for exact
// integer arithmetic and Unicode-aware text analysis.
//
// 🚀 What is strnum?
//
//	Two families of pure functions that fail loudly instead of guessing:
//		• Exact arithmetic: overflow-checked add/sub/mul, lossless narrowing,
//		  unsigned reinterpretation, floor division and floor modulus
//		• Text analysis on code points: frequencies, first unique character,
//		  anagram check, longest common prefix, distinct permutations
//
// ✨ Guarantees
//
//   - No silent wraparound: every arithmetic failure is a typed error
//   - No split characters: "💕" is one code point, never two halves
//   - No hidden state: every function is pure and safe for concurrent use
//
// Packages:
//
//	exact/        generic overflow-checked arithmetic, Narrow, FloorDiv/FloorMod
//	codepoint/    UTF-8/UTF-16 decoding into code point sequences
//	freq/         frequency tables, FirstUnique, Duplicates, MostFrequent
//	anagram/      IsAnagram with optional NFC, case folding, whitespace stripping
//	lcp/          longest common prefix with five interchangeable strategies
//	permute/      distinct permutations: All, Each, Seq, Count
//	cmd/strnum/   command-line front end
//
// Quick example:
//
//	sum, err := exact.Add[int8](127, 1)             // 0, exact.ErrOverflow
//	q, _ := exact.FloorDiv(-222, 14)                // -16
//	r, ok, _ := freq.FirstUnique("swiss")           // 'w', true
//	p, _ := lcp.Find([]string{"flower", "flow"})    // "flow"
//
//	go install github.com/katalvlaran/strnum/cmd/strnum@latest
package strnum
