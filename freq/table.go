// SPDX-License-Identifier: MIT

package freq

// Table maps code points to occurrence counts and remembers the order in
// which each code point first appeared. It is built by Frequencies and is
// read-only afterwards.
type Table struct {
	counts map[rune]int
	order  []rune
	total  int
}

func newTable(hint int) *Table {
	return &Table{
		counts: make(map[rune]int, hint),
		order:  make([]rune, 0, hint),
	}
}

func (t *Table) add(r rune) {
	if t.counts[r] == 0 {
		t.order = append(t.order, r) // first appearance
	}
	t.counts[r]++
	t.total++
}

// Count returns how many times r occurred (0 if never).
func (t *Table) Count(r rune) int {
	return t.counts[r]
}

// Len returns the number of distinct code points.
func (t *Table) Len() int {
	return len(t.order)
}

// Total returns the number of code points counted.
func (t *Table) Total() int {
	return t.total
}

// Keys returns the distinct code points in first-appearance order.
// The returned slice is a copy.
func (t *Table) Keys() []rune {
	out := make([]rune, len(t.order))
	copy(out, t.order)

	return out
}

// Entries returns every (code point, count) pair in first-appearance order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.order))
	for i, r := range t.order {
		out[i] = Entry{Rune: r, Count: t.counts[r]}
	}

	return out
}

// Each calls fn for every entry in first-appearance order until fn
// returns false.
func (t *Table) Each(fn func(Entry) bool) {
	for _, r := range t.order {
		if !fn(Entry{Rune: r, Count: t.counts[r]}) {
			return
		}
	}
}
