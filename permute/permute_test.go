package permute_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/strnum/codepoint"
	"github.com/katalvlaran/strnum/exact"
	"github.com/katalvlaran/strnum/permute"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAll_Order checks construction order for distinct code points.
func TestAll_Order(t *testing.T) {
	got, err := permute.All("ABC")
	require.NoError(t, err)
	assert.Equal(t, []string{"ABC", "ACB", "BAC", "BCA", "CAB", "CBA"}, got)
}

// TestAll_Repeats verifies repeated code points yield each arrangement once.
func TestAll_Repeats(t *testing.T) {
	got, err := permute.All("AAB")
	require.NoError(t, err)
	assert.Equal(t, []string{"AAB", "ABA", "BAA"}, got)

	got, err = permute.All("aaaa")
	require.NoError(t, err)
	assert.Equal(t, []string{"aaaa"}, got)
}

// TestAll_Empty returns the single empty arrangement.
func TestAll_Empty(t *testing.T) {
	got, err := permute.All("")
	require.NoError(t, err)
	assert.Equal(t, []string{""}, got)
}

// TestAll_Supplementary never splits a character into halves.
func TestAll_Supplementary(t *testing.T) {
	got, err := permute.All("💕a")
	require.NoError(t, err)
	assert.Equal(t, []string{"💕a", "a💕"}, got)
}

// TestAll_MatchesBruteForce compares against a naive permute-then-dedupe
// reference, ignoring order.
func TestAll_MatchesBruteForce(t *testing.T) {
	for _, s := range []string{"abc", "aabb", "mississ", "💕💕x", "abcdef", "xyzzy"} {
		got, err := permute.All(s)
		require.NoError(t, err)

		want := bruteForce([]rune(s))
		if diff := cmp.Diff(want, got, cmpopts.SortSlices(func(a, b string) bool { return a < b })); diff != "" {
			t.Errorf("All(%q) mismatch (-want +got):\n%s", s, diff)
		}

		n, err := permute.Count(s)
		require.NoError(t, err)
		assert.Equal(t, uint64(len(got)), n, "Count(%q)", s)
	}
}

// bruteForce generates every index permutation and keeps distinct strings.
func bruteForce(rs []rune) []string {
	set := map[string]struct{}{}
	var rec func(k int)
	rec = func(k int) {
		if k == len(rs) {
			set[string(rs)] = struct{}{}
			return
		}
		for i := k; i < len(rs); i++ {
			rs[k], rs[i] = rs[i], rs[k]
			rec(k + 1)
			rs[k], rs[i] = rs[i], rs[k]
		}
	}
	rec(0)

	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}

	return out
}

// TestAll_Errors covers the length guard and invalid text.
func TestAll_Errors(t *testing.T) {
	_, err := permute.All("abcdefghijk")
	require.ErrorIs(t, err, permute.ErrTooLarge)
	assert.ErrorIs(t, err, permute.ErrInvalidInput)

	got, err := permute.All("abc", permute.WithMaxLength(3))
	require.NoError(t, err)
	assert.Len(t, got, 6)

	_, err = permute.All("abcd", permute.WithMaxLength(3))
	assert.ErrorIs(t, err, permute.ErrTooLarge)

	_, err = permute.All("a\xff")
	assert.ErrorIs(t, err, codepoint.ErrInvalidEncoding)

	assert.Panics(t, func() { permute.WithMaxLength(0) })
}

// TestEach_EarlyStop stops after the requested number of emissions.
func TestEach_EarlyStop(t *testing.T) {
	var got []string
	err := permute.Each("ABC", func(p string) bool {
		got = append(got, p)
		return len(got) < 2
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"ABC", "ACB"}, got)
}

// TestEach_Context returns the context error and stops emitting.
func TestEach_Context(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	calls := 0
	err := permute.Each("abc", func(string) bool {
		calls++
		return true
	}, permute.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, calls)

	ctx, cancel = context.WithCancel(context.Background())
	defer cancel()
	calls = 0
	err = permute.Each("abcd", func(string) bool {
		calls++
		if calls == 3 {
			cancel()
		}
		return true
	}, permute.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 3, calls)

	//nolint:staticcheck // a nil context must be ignored
	_, err = permute.All("ab", permute.WithContext(nil))
	assert.NoError(t, err)
}

// TestSeq ranges over the iterator and validates eagerly.
func TestSeq(t *testing.T) {
	seq, err := permute.Seq("AAB")
	require.NoError(t, err)
	var got []string
	for p := range seq {
		got = append(got, p)
	}
	assert.Equal(t, []string{"AAB", "ABA", "BAA"}, got)

	for p := range seq {
		assert.Equal(t, "AAB", p)
		break
	}

	_, err = permute.Seq("abcdefghijk")
	assert.ErrorIs(t, err, permute.ErrTooLarge)
}

// TestCount checks the multinomial and the uint64 bound.
func TestCount(t *testing.T) {
	tests := []struct {
		in   string
		want uint64
	}{
		{"", 1},
		{"a", 1},
		{"ABC", 6},
		{"AAB", 3},
		{"mississippi", 34650},
		{"abcdefghijklmnopqrst", 2432902008176640000}, // 20!
	}
	for _, tc := range tests {
		got, err := permute.Count(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	// 21! exceeds uint64
	_, err := permute.Count("abcdefghijklmnopqrstu")
	assert.ErrorIs(t, err, exact.ErrTruncation)

	// long but highly repetitive input still fits
	got, err := permute.Count("aaaaaaaaaaaaaaaaaaaaaaaaab")
	require.NoError(t, err)
	assert.Equal(t, uint64(26), got)
}

// TestAll_OversizedInputFailsFast rejects a million code points without
// counting or enumerating anything.
func TestAll_OversizedInputFailsFast(t *testing.T) {
	huge := strings.Repeat("ab", 500_000)

	start := time.Now()
	_, err := permute.All(huge)
	require.ErrorIs(t, err, permute.ErrTooLarge)
	_, err = permute.Seq(huge)
	require.ErrorIs(t, err, permute.ErrTooLarge)
	err = permute.Each(huge, func(string) bool { return true })
	require.ErrorIs(t, err, permute.ErrTooLarge)
	assert.Less(t, time.Since(start), 2*time.Second)
}

// TestAll_HighlyRepetitiveAtLimit enumerates the single arrangement of a
// run of one code point at a raised limit.
func TestAll_HighlyRepetitiveAtLimit(t *testing.T) {
	got, err := permute.All(strings.Repeat("z", 30), permute.WithMaxLength(30))
	require.NoError(t, err)
	assert.Equal(t, []string{strings.Repeat("z", 30)}, got)
}

// TestSeq_Context stops the iterator once the context is done.
func TestSeq_Context(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	seq, err := permute.Seq("abcd", permute.WithContext(ctx))
	require.NoError(t, err)

	var got []string
	for p := range seq {
		got = append(got, p)
		if len(got) == 2 {
			cancel()
		}
	}
	assert.Equal(t, []string{"abcd", "abdc"}, got)
	assert.ErrorIs(t, ctx.Err(), context.Canceled)

	// the same iterator can be ranged again and yields the same sequence
	seq, err = permute.Seq("AB")
	require.NoError(t, err)
	var first, second []string
	for p := range seq {
		first = append(first, p)
	}
	for p := range seq {
		second = append(second, p)
	}
	assert.Equal(t, []string{"AB", "BA"}, first)
	assert.Equal(t, first, second)
}
