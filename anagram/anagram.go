// SPDX-License-Identifier: MIT

package anagram

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/katalvlaran/strnum/codepoint"
)

// IsAnagram reports whether a and b contain the same code points with the
// same multiplicities after normalisation.
//
// Implementation:
//   - Stage 1: reject malformed UTF-8 in either input.
//   - Stage 2: normalise both inputs with the same pipeline.
//   - Stage 3: different code-point counts short-circuit to false.
//   - Stage 4: one map, incremented for a and decremented for b; all
//     counters must return to zero.
//
// Errors:
//   - codepoint.ErrInvalidEncoding if either input is not valid UTF-8.
//
// Complexity: Time O(n), Memory O(k).
func IsAnagram(a, b string, opts ...Option) (bool, error) {
	o := gatherOptions(opts)
	na, err := normalize(a, o)
	if err != nil {
		return false, err
	}
	nb, err := normalize(b, o)
	if err != nil {
		return false, err
	}
	if len(na) != len(nb) {
		return false, nil
	}

	balance := make(map[rune]int, min(len(na), 64))
	for i := range na {
		balance[na[i]]++
		balance[nb[i]]--
	}
	for _, c := range balance {
		if c != 0 {
			return false, nil
		}
	}

	return true, nil
}

// Normalize applies the option pipeline to s and returns the result. It is
// the exact transformation IsAnagram compares.
func Normalize(s string, opts ...Option) (string, error) {
	seq, err := normalize(s, gatherOptions(opts))
	if err != nil {
		return "", err
	}

	return seq.String(), nil
}

func normalize(s string, o Options) (codepoint.Sequence, error) {
	if _, err := codepoint.Decode(s); err != nil {
		return nil, err
	}
	if o.NFC {
		s = norm.NFC.String(s)
	}
	if o.CaseFold {
		s = cases.Fold().String(s) // a Caser is stateful; one per call
	}
	if o.StripWhitespace {
		s = strings.Map(dropSpace, s)
	}
	for _, fn := range o.Custom {
		s = fn(s)
	}

	return codepoint.Decode(s) // custom steps may produce anything
}

func dropSpace(r rune) rune {
	if unicode.IsSpace(r) {
		return -1
	}

	return r
}
