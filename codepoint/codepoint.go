// SPDX-License-Identifier: MIT

package codepoint

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

var (
	// ErrInvalidEncoding indicates malformed UTF-8, an unpaired UTF-16
	// surrogate, or a rune that is not a Unicode scalar value.
	ErrInvalidEncoding = errors.New("codepoint: invalid encoding")

	// ErrNotSingle indicates text that was expected to hold exactly one
	// code point but holds none or several.
	ErrNotSingle = errors.New("codepoint: not exactly one code point")
)

// Sequence is an ordered list of Unicode scalar values. Values produced by
// this package never contain surrogates or values above utf8.MaxRune.
type Sequence []rune

// Len returns the number of code points.
func (s Sequence) Len() int { return len(s) }

// String encodes the sequence as UTF-8.
func (s Sequence) String() string { return string(s) }

// Decode splits a UTF-8 string into code points.
// Time Complexity: O(len(s)).
func Decode(s string) (Sequence, error) {
	if !utf8.ValidString(s) {
		return nil, fmt.Errorf("%w: bad UTF-8 at byte %d", ErrInvalidEncoding, invalidOffset(s))
	}

	return Sequence([]rune(s)), nil
}

// DecodeUTF16 joins UTF-16 code units into code points. A high surrogate
// must be followed by a low surrogate; any other surrogate is an error.
// Time Complexity: O(len(units)).
func DecodeUTF16(units []uint16) (Sequence, error) {
	out := make(Sequence, 0, len(units))
	for i := 0; i < len(units); i++ {
		r := rune(units[i])
		if !utf16.IsSurrogate(r) {
			out = append(out, r)
			continue
		}
		if i+1 < len(units) {
			if pair := utf16.DecodeRune(r, rune(units[i+1])); pair != utf8.RuneError {
				out = append(out, pair)
				i++ // consumed the low surrogate
				continue
			}
		}

		return nil, fmt.Errorf("%w: unpaired surrogate %#04x at unit %d", ErrInvalidEncoding, units[i], i)
	}

	return out, nil
}

// EncodeUTF16 returns the UTF-16 code units of s; supplementary
// characters take two units.
func EncodeUTF16(s Sequence) []uint16 {
	return utf16.Encode(s)
}

// Count returns the number of code points in s.
func Count(s string) (int, error) {
	if !utf8.ValidString(s) {
		return 0, fmt.Errorf("%w: bad UTF-8 at byte %d", ErrInvalidEncoding, invalidOffset(s))
	}

	return utf8.RuneCountInString(s), nil
}

// Reverse returns s with its code points in reverse order.
func Reverse(s string) (string, error) {
	seq, err := Decode(s)
	if err != nil {
		return "", err
	}
	for i, j := 0, len(seq)-1; i < j; i, j = i+1, j-1 {
		seq[i], seq[j] = seq[j], seq[i]
	}

	return seq.String(), nil
}

// IsPalindrome reports whether s reads the same forwards and backwards,
// comparing code points exactly (no case folding, spaces count).
func IsPalindrome(s string) (bool, error) {
	seq, err := Decode(s)
	if err != nil {
		return false, err
	}
	for i, j := 0, len(seq)-1; i < j; i, j = i+1, j-1 {
		if seq[i] != seq[j] {
			return false, nil
		}
	}

	return true, nil
}

// Each calls fn with the index and value of every code point in s, in
// order, until fn returns false. Indexes count code points, not bytes.
// s is validated before fn is called for the first time.
func Each(s string, fn func(i int, r rune) bool) error {
	if !utf8.ValidString(s) {
		return fmt.Errorf("%w: bad UTF-8 at byte %d", ErrInvalidEncoding, invalidOffset(s))
	}
	i := 0
	for _, r := range s {
		if !fn(i, r) {
			return nil
		}
		i++
	}

	return nil
}

// Single returns the only code point of s. "💕" is one code point, so it
// passes; "ab" and "" fail with ErrNotSingle.
func Single(s string) (rune, error) {
	if !utf8.ValidString(s) {
		return 0, fmt.Errorf("%w: bad UTF-8 at byte %d", ErrInvalidEncoding, invalidOffset(s))
	}
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) {
		return 0, fmt.Errorf("%w: %q", ErrNotSingle, s)
	}

	return r, nil
}

// Remove returns s without any occurrence of r. A supplementary character
// is removed whole:
//
//	Remove("a💕b💕", '💕') // "ab"
//
// Fails with ErrInvalidEncoding if s is not valid UTF-8 or r is not a
// scalar value (a surrogate or above utf8.MaxRune).
// Time Complexity: O(len(s)).
func Remove(s string, r rune) (string, error) {
	if !utf8.ValidRune(r) {
		return "", fmt.Errorf("%w: %U is not a scalar value", ErrInvalidEncoding, r)
	}
	if !utf8.ValidString(s) {
		return "", fmt.Errorf("%w: bad UTF-8 at byte %d", ErrInvalidEncoding, invalidOffset(s))
	}

	return strings.Map(func(c rune) rune {
		if c == r {
			return -1
		}
		return c
	}, s), nil
}

// invalidOffset returns the byte offset of the first malformed sequence in s,
// or -1 if s is valid.
func invalidOffset(s string) int {
	for i, r := range s {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(s[i:]); size <= 1 {
				return i
			}
		}
	}

	return -1
}
