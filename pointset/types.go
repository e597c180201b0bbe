// SPDX-License-Identifier: MIT

package pointset

import (
	"errors"
	"fmt"
)

// ErrOptionViolation is returned by New when an Option is out of range.
var ErrOptionViolation = errors.New("pointset: invalid option supplied")

const (
	// DefaultQuantizeBits gives cells of size 1/256.
	DefaultQuantizeBits = 8
	// DefaultEpsilon matches the Möbius coefficient tolerance.
	DefaultEpsilon = 1e-9
	// maxQuantizeBits keeps x·2^bits exactly representable for |x| < 1.
	maxQuantizeBits = 52
)

// Option configures a Set.
type Option func(*Options)

// Options holds Set parameters.
type Options struct {
	QuantizeBits int
	Epsilon      float64

	err error
}

// DefaultOptions returns 8 quantize bits and a 1e-9 tolerance.
func DefaultOptions() Options {
	return Options{
		QuantizeBits: DefaultQuantizeBits,
		Epsilon:      DefaultEpsilon,
	}
}

// WithQuantizeBits sets the cell size to 2^-bits.
func WithQuantizeBits(bits int) Option {
	return func(o *Options) {
		if bits < 0 || bits > maxQuantizeBits {
			o.err = fmt.Errorf("%w: quantize bits %d outside [0, %d]", ErrOptionViolation, bits, maxQuantizeBits)

			return
		}
		o.QuantizeBits = bits
	}
}

// WithEpsilon sets the tolerance under which two points are equal.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if !(eps > 0) {
			o.err = fmt.Errorf("%w: epsilon must be positive, got %v", ErrOptionViolation, eps)

			return
		}
		o.Epsilon = eps
	}
}

// Resolve applies opts over DefaultOptions and reports the first violation.
func Resolve(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o, o.err
}
