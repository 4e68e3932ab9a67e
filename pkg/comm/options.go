// Copyright © 2018 One Concern

package comm

// Option is a functor to build a comparator with some options
type Option func(*Comparator)

// WithFold sets the case folding policy. Defaults to FoldNone.
func WithFold(f Fold) Option {
	return func(c *Comparator) {
		c.fold = f
	}
}

// WithNormalization compares lines after Unicode NFC normalization
func WithNormalization(enabled bool) Option {
	return func(c *Comparator) {
		c.normalize = enabled
	}
}
