// SPDX-License-Identifier: MIT

package lcp

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidInput is the class of every argument error in this package.
	ErrInvalidInput = errors.New("lcp: invalid input")

	// ErrEmptyInput indicates an empty list of strings. An empty string
	// inside the list is valid and yields "".
	ErrEmptyInput = fmt.Errorf("%w: empty list", ErrInvalidInput)

	// ErrUnknownStrategy indicates a strategy name or value not listed by
	// Strategies.
	ErrUnknownStrategy = fmt.Errorf("%w: unknown strategy", ErrInvalidInput)
)

// Strategy selects the algorithm used by Find.
type Strategy int

const (
	// Horizontal folds the prefix across the list, shrinking on mismatch.
	Horizontal Strategy = iota

	// Vertical scans column by column across every string.
	Vertical

	// DivideAndConquer splits the list recursively and merges prefixes.
	DivideAndConquer

	// BinarySearch searches the prefix length against the shortest string.
	BinarySearch

	// Sorted sorts a copy and compares only the first and last strings.
	Sorted
)

// DefaultStrategy is used by Find when no WithStrategy option is given.
const DefaultStrategy = Vertical

var strategyNames = map[Strategy]string{
	Horizontal:       "horizontal",
	Vertical:         "vertical",
	DivideAndConquer: "divide",
	BinarySearch:     "binary",
	Sorted:           "sorted",
}

// String returns the short name used by ParseStrategy.
func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}

	return fmt.Sprintf("Strategy(%d)", int(s))
}

// Strategies returns every strategy in declaration order.
func Strategies() []Strategy {
	return []Strategy{Horizontal, Vertical, DivideAndConquer, BinarySearch, Sorted}
}

// ParseStrategy maps a short name ("horizontal", "vertical", "divide",
// "binary", "sorted"), case-insensitively, to its Strategy.
func ParseStrategy(name string) (Strategy, error) {
	for s, n := range strategyNames {
		if strings.EqualFold(n, name) {
			return s, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Option configures Find.
type Option func(*Options)

// Options holds Find parameters.
type Options struct {
	Strategy Strategy
}

const panicUnknownStrategy = "lcp: WithStrategy: unknown strategy"

// DefaultOptions returns Options using DefaultStrategy.
func DefaultOptions() Options {
	return Options{Strategy: DefaultStrategy}
}

// WithStrategy selects the algorithm. Panics on a value outside Strategies().
func WithStrategy(s Strategy) Option {
	if _, ok := strategyNames[s]; !ok {
		panic(panicUnknownStrategy)
	}

	return func(o *Options) { o.Strategy = s }
}
