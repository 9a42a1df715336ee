// SPDX-License-Identifier: MIT

package lcp

import (
	"slices"

	"github.com/katalvlaran/strnum/codepoint"
)

// Find returns the longest common prefix of strs using the configured
// strategy (DefaultStrategy unless WithStrategy is given).
//
//	Find([]string{"abc", "abcd", "abcde", "ab", "abcd", "abcdef"}) // "ab"
func Find(strs []string, opts ...Option) (string, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	switch o.Strategy {
	case Horizontal:
		return FindHorizontal(strs)
	case Vertical:
		return FindVertical(strs)
	case DivideAndConquer:
		return FindDivideAndConquer(strs)
	case BinarySearch:
		return FindBinarySearch(strs)
	case Sorted:
		return FindSorted(strs)
	default:
		return "", ErrUnknownStrategy
	}
}

// FindHorizontal takes the first string as the candidate and, for every
// other string, cuts the candidate back to the part both share. It stops
// as soon as the candidate is empty.
//
// Complexity: Time O(S), Memory O(S), where S is the total number of code
// points across strs.
func FindHorizontal(strs []string) (string, error) {
	seqs, err := decodeAll(strs)
	if err != nil {
		return "", err
	}
	prefix := seqs[0]
	for _, s := range seqs[1:] {
		prefix = prefix[:commonLen(prefix, s)] // only ever shrinks
		if len(prefix) == 0 {
			break
		}
	}

	return prefix.String(), nil
}

// FindVertical walks the columns of the first string and, for each column,
// checks every other string. The first column where some string is too
// short or differs ends the prefix.
//
// Complexity: Time O(S) to decode plus O(n·p) comparisons, where n is the
// number of strings and p the prefix length, Memory O(S).
func FindVertical(strs []string) (string, error) {
	seqs, err := decodeAll(strs)
	if err != nil {
		return "", err
	}
	first := seqs[0]
	for col, c := range first {
		for _, s := range seqs[1:] {
			if col >= len(s) || s[col] != c {
				return first[:col].String(), nil
			}
		}
	}

	return first.String(), nil
}

// FindDivideAndConquer splits the list in halves, solves each half, and
// returns the common prefix of the two half results.
//
// Complexity: Time O(S), Memory O(S) plus O(log n) recursion depth, where
// S is the total number of code points and n the number of strings.
func FindDivideAndConquer(strs []string) (string, error) {
	seqs, err := decodeAll(strs)
	if err != nil {
		return "", err
	}

	return divide(seqs, 0, len(seqs)-1).String(), nil
}

func divide(seqs []codepoint.Sequence, lo, hi int) codepoint.Sequence {
	if lo == hi {
		return seqs[lo]
	}
	mid := lo + (hi-lo)/2
	left := divide(seqs, lo, mid)
	right := divide(seqs, mid+1, hi)

	return left[:commonLen(left, right)]
}

// FindBinarySearch searches for the largest k such that every string starts
// with the first k code points of the first string. k ranges over
// [0, shortest length]; the predicate is monotone, so binary search applies.
//
// Complexity: Time O(S·log m), Memory O(S), where S is the total number of
// code points and m the length of the shortest string.
func FindBinarySearch(strs []string) (string, error) {
	seqs, err := decodeAll(strs)
	if err != nil {
		return "", err
	}
	minLen := len(seqs[0])
	for _, s := range seqs[1:] {
		minLen = min(minLen, len(s))
	}

	lo, hi := 0, minLen
	for lo < hi {
		mid := lo + (hi-lo+1)/2 // upper middle, so lo always advances
		if allHavePrefix(seqs, seqs[0][:mid]) {
			lo = mid
		} else {
			hi = mid - 1
		}
	}

	return seqs[0][:lo].String(), nil
}

func allHavePrefix(seqs []codepoint.Sequence, prefix codepoint.Sequence) bool {
	for _, s := range seqs {
		if commonLen(s, prefix) < len(prefix) {
			return false
		}
	}

	return true
}

// FindSorted sorts the decoded strings and returns the common prefix of
// the smallest and largest. Any prefix shared by those two is shared by
// everything sorted between them. The caller's slice is not reordered.
//
// Complexity: Time O(S + n·m·log n) for the comparison sort, Memory O(S),
// where S is the total number of code points, n the number of strings and
// m the length of the longest one.
func FindSorted(strs []string) (string, error) {
	seqs, err := decodeAll(strs)
	if err != nil {
		return "", err
	}
	slices.SortFunc(seqs, slices.Compare[codepoint.Sequence])
	first, last := seqs[0], seqs[len(seqs)-1]

	return first[:commonLen(first, last)].String(), nil
}

// decodeAll validates the list and decodes every element.
func decodeAll(strs []string) ([]codepoint.Sequence, error) {
	if len(strs) == 0 {
		return nil, ErrEmptyInput
	}
	seqs := make([]codepoint.Sequence, len(strs))
	for i, s := range strs {
		seq, err := codepoint.Decode(s)
		if err != nil {
			return nil, err
		}
		seqs[i] = seq
	}

	return seqs, nil
}

// commonLen returns the length of the common prefix of a and b.
func commonLen(a, b codepoint.Sequence) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}

	return n
}
