package lcp_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/strnum/codepoint"
	"github.com/katalvlaran/strnum/lcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var finders = map[lcp.Strategy]func([]string) (string, error){
	lcp.Horizontal:       lcp.FindHorizontal,
	lcp.Vertical:         lcp.FindVertical,
	lcp.DivideAndConquer: lcp.FindDivideAndConquer,
	lcp.BinarySearch:     lcp.FindBinarySearch,
	lcp.Sorted:           lcp.FindSorted,
}

// assertAllAgree runs every strategy, directly and through Find, and
// expects the same answer from each.
func assertAllAgree(t *testing.T, strs []string, want string) {
	t.Helper()
	for _, s := range lcp.Strategies() {
		got, err := finders[s](strs)
		require.NoError(t, err, "%s on %q", s, strs)
		require.Equal(t, want, got, "%s on %q", s, strs)

		got, err = lcp.Find(strs, lcp.WithStrategy(s))
		require.NoError(t, err)
		require.Equal(t, want, got, "Find(%s) on %q", s, strs)
	}
}

// TestFind_DocumentedExample checks the six-string example.
func TestFind_DocumentedExample(t *testing.T) {
	assertAllAgree(t, []string{"abc", "abcd", "abcde", "ab", "abcd", "abcdef"}, "ab")
}

// TestFind_EdgeCases covers single elements, empty elements and no overlap.
func TestFind_EdgeCases(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want string
	}{
		{"single", []string{"alone"}, "alone"},
		{"contains empty", []string{"abc", "", "abd"}, ""},
		{"only empty", []string{""}, ""},
		{"no overlap", []string{"dog", "racecar", "car"}, ""},
		{"identical", []string{"same", "same", "same"}, "same"},
		{"prefix is whole first", []string{"ab", "abc"}, "ab"},
		{"prefix is whole last", []string{"abc", "ab"}, "ab"},
		{"supplementary", []string{"💕💕a", "💕💕b", "💕💕"}, "💕💕"},
		{"shared lead byte", []string{"aé", "aè"}, "a"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assertAllAgree(t, tc.in, tc.want)
		})
	}
}

// TestFind_EmptyList fails with ErrEmptyInput for every strategy.
func TestFind_EmptyList(t *testing.T) {
	for _, s := range lcp.Strategies() {
		_, err := finders[s](nil)
		assert.ErrorIs(t, err, lcp.ErrEmptyInput, s.String())
		assert.ErrorIs(t, err, lcp.ErrInvalidInput, s.String())
	}
	_, err := lcp.Find([]string{})
	assert.ErrorIs(t, err, lcp.ErrEmptyInput)
}

// TestFind_InvalidUTF8 rejects malformed elements.
func TestFind_InvalidUTF8(t *testing.T) {
	for _, s := range lcp.Strategies() {
		_, err := finders[s]([]string{"ab", "a\xff"})
		assert.ErrorIs(t, err, codepoint.ErrInvalidEncoding, s.String())
	}
}

// TestFindSorted_DoesNotReorderInput guards the caller's slice.
func TestFindSorted_DoesNotReorderInput(t *testing.T) {
	in := []string{"b", "a", "c"}
	_, err := lcp.FindSorted(in)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "c"}, in)
}

// TestFind_RandomAgreement compares every strategy with a brute-force
// reference on random lists over a small alphabet.
func TestFind_RandomAgreement(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	alphabet := []rune("ab💕é")
	for iter := 0; iter < 500; iter++ {
		n := 1 + rng.Intn(6)
		strs := make([]string, n)
		for i := range strs {
			var sb strings.Builder
			for l := rng.Intn(6); l > 0; l-- {
				sb.WriteRune(alphabet[rng.Intn(len(alphabet))])
			}
			strs[i] = sb.String()
		}
		assertAllAgree(t, strs, bruteForce(strs))
	}
}

// bruteForce tries every prefix of the first string, longest first.
func bruteForce(strs []string) string {
	first := []rune(strs[0])
	for k := len(first); k > 0; k-- {
		p := string(first[:k])
		ok := true
		for _, s := range strs {
			if !strings.HasPrefix(s, p) {
				ok = false
				break
			}
		}
		if ok {
			return p
		}
	}
	return ""
}

// TestParseStrategy round-trips every name.
func TestParseStrategy(t *testing.T) {
	for _, s := range lcp.Strategies() {
		got, err := lcp.ParseStrategy(strings.ToUpper(s.String()))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	_, err := lcp.ParseStrategy("trie")
	assert.ErrorIs(t, err, lcp.ErrUnknownStrategy)

	assert.Equal(t, "Strategy(99)", lcp.Strategy(99).String())
	assert.Panics(t, func() { lcp.WithStrategy(lcp.Strategy(99)) })
}

// TestFindSorted_CodePointOrder sorts decoded sequences, so characters on
// either side of the surrogate range still bracket the list correctly.
func TestFindSorted_CodePointOrder(t *testing.T) {
	in := []string{"💕ac", "￮ab", "💕ab", "💕a"}
	got, err := lcp.FindSorted(in)
	require.NoError(t, err)
	assert.Equal(t, "", got)
	assert.Equal(t, []string{"💕ac", "￮ab", "💕ab", "💕a"}, in)

	got, err = lcp.FindSorted([]string{"💕ac", "💕ab", "💕a"})
	require.NoError(t, err)
	assert.Equal(t, "💕a", got)

	_, err = lcp.FindSorted([]string{"ok", "\xc3"})
	assert.ErrorIs(t, err, codepoint.ErrInvalidEncoding)
}
