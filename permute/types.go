// SPDX-License-Identifier: MIT

package permute

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is the class of every argument error in this package.
	ErrInvalidInput = errors.New("permute: invalid input")

	// ErrTooLarge indicates more code points than the configured maximum.
	ErrTooLarge = fmt.Errorf("%w: input too large", ErrInvalidInput)
)

// DefaultMaxLength is the largest input, in code points, accepted unless
// WithMaxLength says otherwise. 10! is 3 628 800 strings.
const DefaultMaxLength = 10

// Option configures enumeration.
type Option func(*Options)

// Options holds enumeration parameters.
type Options struct {
	// MaxLength bounds the input length in code points.
	MaxLength int

	// Ctx is checked before every emitted arrangement.
	Ctx context.Context
}

const panicMaxLength = "permute: WithMaxLength: n must be > 0"

// DefaultOptions returns Options with DefaultMaxLength and a background context.
func DefaultOptions() Options {
	return Options{
		MaxLength: DefaultMaxLength,
		Ctx:       context.Background(),
	}
}

// WithMaxLength sets the input length bound. Panics if n <= 0.
func WithMaxLength(n int) Option {
	if n <= 0 {
		panic(panicMaxLength)
	}

	return func(o *Options) { o.MaxLength = n }
}

// WithContext makes enumeration stop with ctx.Err() once ctx is done.
// A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
