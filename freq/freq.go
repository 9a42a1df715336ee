// SPDX-License-Identifier: MIT

package freq

import (
	"strings"

	"github.com/katalvlaran/strnum/codepoint"
)

// Frequencies counts the occurrences of each code point in s.
//
// The table keeps first-appearance order, which is what FirstUnique and
// Duplicates rely on. Options may exclude whitespace.
//
// Errors:
//   - codepoint.ErrInvalidEncoding if s is not valid UTF-8.
//
// Complexity: Time O(n), Memory O(k).
func Frequencies(s string, opts ...Option) (*Table, error) {
	seq, err := codepoint.Decode(s)
	if err != nil {
		return nil, err
	}

	return Count(seq, opts...), nil
}

// Count builds a Table from an already decoded sequence.
func Count(seq codepoint.Sequence, opts ...Option) *Table {
	o := gatherOptions(opts)
	t := newTable(min(len(seq), 64))
	for _, r := range seq {
		if o.skip(r) {
			continue
		}
		t.add(r)
	}

	return t
}

// FirstUnique returns the first code point, in left-to-right order, that
// occurs exactly once in s. ok is false when there is none (empty input,
// or every code point repeats).
//
//	FirstUnique("dsadssre") // 'a', true
//	FirstUnique("aabb")     // 0, false
//
// One counting pass plus one pass over the distinct code points in
// first-appearance order: the first key with count 1 is also the first
// such character in the text.
//
// Complexity: Time O(n), Memory O(k).
func FirstUnique(s string, opts ...Option) (r rune, ok bool, err error) {
	t, err := Frequencies(s, opts...)
	if err != nil {
		return 0, false, err
	}
	for _, k := range t.order {
		if t.counts[k] == 1 {
			return k, true, nil
		}
	}

	return 0, false, nil
}

// Duplicates returns the code points that occur more than once, with their
// counts, in first-appearance order.
func Duplicates(s string, opts ...Option) ([]Entry, error) {
	t, err := Frequencies(s, opts...)
	if err != nil {
		return nil, err
	}
	var out []Entry
	t.Each(func(e Entry) bool {
		if e.Count > 1 {
			out = append(out, e)
		}
		return true
	})

	return out, nil
}

// MostFrequent returns the code point with the highest count. Ties go to
// the code point that appeared first. ok is false when nothing was counted.
//
//	MostFrequent("HELLO LOLLIPOP!!!", WithSkipWhitespace()) // {'L', 5}, true
func MostFrequent(s string, opts ...Option) (best Entry, ok bool, err error) {
	t, err := Frequencies(s, opts...)
	if err != nil {
		return Entry{}, false, err
	}
	t.Each(func(e Entry) bool {
		if e.Count > best.Count {
			best, ok = e, true
		}
		return true
	})

	return best, ok, nil
}

// Occurrences counts how many times needle occurs in s. needle must be
// exactly one code point, so a supplementary character such as "💕" is
// counted as one match, never as two halves.
//
// Errors:
//   - codepoint.ErrNotSingle if needle is empty or longer than one code point.
//   - codepoint.ErrInvalidEncoding if either input is not valid UTF-8.
//
// Complexity: Time O(n), Memory O(1).
func Occurrences(s, needle string) (int, error) {
	r, err := codepoint.Single(needle)
	if err != nil {
		return 0, err
	}
	n := 0
	err = codepoint.Each(s, func(_ int, c rune) bool {
		if c == r {
			n++
		}
		return true
	})
	if err != nil {
		return 0, err
	}

	return n, nil
}

// RemoveDuplicates keeps the first occurrence of every code point and
// drops the rest: "💕ab💕ba" becomes "💕ab".
func RemoveDuplicates(s string) (string, error) {
	t, err := Frequencies(s)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range t.order {
		sb.WriteRune(r)
	}

	return sb.String(), nil
}
