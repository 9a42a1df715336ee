// SPDX-License-Identifier: MIT

package permute

import (
	"context"
	"fmt"
	"iter"
	"math/big"

	"github.com/katalvlaran/strnum/codepoint"
	"github.com/katalvlaran/strnum/exact"
)

// All returns every distinct arrangement of the code points of s, each
// exactly once, in construction order. The empty string has one
// arrangement, "".
//
// The length limit is checked before any arrangement is produced or
// counted, so oversized input fails with ErrTooLarge in O(n).
func All(s string, opts ...Option) ([]string, error) {
	o := gatherOptions(opts)
	seq, err := prepare(s, o)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, capacity(seq))
	err = enumerate(o.Ctx, seq, func(p string) bool {
		out = append(out, p)
		return true
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Each calls yield with every distinct arrangement of s in the same order
// as All, stopping early when yield returns false. It returns ctx.Err()
// if the context from WithContext is done before an emission.
func Each(s string, yield func(string) bool, opts ...Option) error {
	o := gatherOptions(opts)
	seq, err := prepare(s, o)
	if err != nil {
		return err
	}

	return enumerate(o.Ctx, seq, yield)
}

// Seq validates s and returns an iterator over its distinct arrangements.
// The iterator stops early once the context from WithContext is done;
// check that context's Err afterwards to tell cancellation from
// exhaustion, or use Each to receive the error directly.
func Seq(s string, opts ...Option) (iter.Seq[string], error) {
	o := gatherOptions(opts)
	seq, err := prepare(s, o)
	if err != nil {
		return nil, err
	}

	return func(yield func(string) bool) {
		_ = enumerate(o.Ctx, seq, yield) // the error is o.Ctx.Err(), observable by the caller
	}, nil
}

// Count returns the number of distinct arrangements of s: n!/(k₁!·k₂!·…),
// where kᵢ are the multiplicities of the distinct code points. It fails
// with exact.ErrTruncation when the count does not fit in uint64.
// Count enumerates nothing, so WithMaxLength does not apply.
func Count(s string) (uint64, error) {
	seq, err := codepoint.Decode(s)
	if err != nil {
		return 0, err
	}
	mult := make(map[rune]int64, len(seq))
	for _, r := range seq {
		mult[r]++
	}

	total := new(big.Int).MulRange(1, int64(len(seq)))
	var f big.Int
	for _, k := range mult {
		total.Quo(total, f.MulRange(1, k))
	}

	n, err := exact.FromBig[uint64](total)
	if err != nil {
		return 0, fmt.Errorf("permute: Count: %w", err)
	}

	return n, nil
}

func prepare(s string, o Options) (codepoint.Sequence, error) {
	seq, err := codepoint.Decode(s)
	if err != nil {
		return nil, err
	}
	if len(seq) > o.MaxLength {
		return nil, fmt.Errorf("%w: %d code points, limit %d", ErrTooLarge, len(seq), o.MaxLength)
	}

	return seq, nil
}

// maxCapacity bounds the slice All preallocates; larger outputs grow.
const maxCapacity = 1 << 20

// capacity returns the number of distinct arrangements of seq, capped at
// maxCapacity. seq has already passed the length check. The running value
// is the multinomial of the prefix seen so far, so every step divides
// exactly.
func capacity(seq codepoint.Sequence) int {
	seen := make(map[rune]int, len(seq))
	n := 1
	for i, r := range seq {
		seen[r]++
		n = n * (i + 1) / seen[r]
		if n >= maxCapacity {
			return maxCapacity
		}
	}

	return n
}

// enumerate walks every distinct arrangement of seq.
func enumerate(ctx context.Context, seq codepoint.Sequence, yield func(string) bool) error {
	w := &walker{
		runes: seq,
		used:  make([]bool, len(seq)),
		buf:   make([]rune, len(seq)),
		yield: yield,
		ctx:   ctx,
	}
	w.walk(0)

	return w.err
}

// walker holds the state of one depth-first enumeration.
type walker struct {
	runes codepoint.Sequence
	used  []bool
	buf   []rune
	yield func(string) bool
	ctx   context.Context
	err   error
}

// walk fills buf[depth:] and reports whether enumeration should continue.
func (w *walker) walk(depth int) bool {
	if depth == len(w.runes) {
		if err := w.ctx.Err(); err != nil {
			w.err = err
			return false
		}

		return w.yield(string(w.buf))
	}

	seen := make(map[rune]struct{}, len(w.runes)-depth)
	for i, r := range w.runes {
		if w.used[i] {
			continue
		}
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}

		w.used[i] = true
		w.buf[depth] = r
		more := w.walk(depth + 1)
		w.used[i] = false
		if !more {
			return false
		}
	}

	return true
}
