// SPDX-License-Identifier: MIT

package anagram

// Normalizer transforms a string before comparison.
type Normalizer func(string) string

// Option configures normalisation.
type Option func(*Options)

// Options holds the normalisation pipeline. The zero value compares
// code points as they are.
type Options struct {
	NFC             bool
	CaseFold        bool
	StripWhitespace bool
	Custom          []Normalizer
}

const panicNilNormalizer = "anagram: WithNormalizer: normalizer must not be nil"

// DefaultOptions returns the identity normalisation.
func DefaultOptions() Options {
	return Options{}
}

// WithNFC composes both inputs to Unicode Normalization Form C first.
func WithNFC() Option {
	return func(o *Options) { o.NFC = true }
}

// WithCaseFold folds case with full Unicode case folding.
func WithCaseFold() Option {
	return func(o *Options) { o.CaseFold = true }
}

// WithStripWhitespace removes every whitespace code point.
func WithStripWhitespace() Option {
	return func(o *Options) { o.StripWhitespace = true }
}

// WithNormalizer appends a custom step. Panics if fn is nil.
func WithNormalizer(fn Normalizer) Option {
	if fn == nil {
		panic(panicNilNormalizer)
	}

	return func(o *Options) { o.Custom = append(o.Custom, fn) }
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
