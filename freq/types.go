// SPDX-License-Identifier: MIT

package freq

import "unicode"

// Entry is a code point together with its number of occurrences.
type Entry struct {
	Rune  rune
	Count int
}

// Option configures how text is counted.
type Option func(*Options)

// Options holds counting parameters.
type Options struct {
	// SkipWhitespace excludes code points for which unicode.IsSpace is true.
	SkipWhitespace bool
}

// DefaultOptions counts every code point.
func DefaultOptions() Options {
	return Options{SkipWhitespace: false}
}

// WithSkipWhitespace returns an Option that ignores whitespace code points.
func WithSkipWhitespace() Option {
	return func(o *Options) {
		o.SkipWhitespace = true
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

func (o Options) skip(r rune) bool {
	return o.SkipWhitespace && unicode.IsSpace(r)
}
