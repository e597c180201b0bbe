// SPDX-License-Identifier: MIT

package orbit

import (
	"errors"

	"github.com/katalvlaran/cayley/algebra"
	"github.com/katalvlaran/cayley/pointset"
)

var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = pointset.ErrOptionViolation
	// ErrNoRepresentative is returned when the representative point is not finite.
	ErrNoRepresentative = errors.New("orbit: representative point must be finite")
)

// DefaultQuantizeBits is finer than the pointset default so that small
// tiles far from the origin stay apart.
const DefaultQuantizeBits = 16

// Element is a group element that acts on points of the plane.
type Element[G any] interface {
	algebra.Group[G]
	Apply(z complex128) complex128
}

// Option configures an Orbit.
type Option func(*Options)

// Options holds the visited-index parameters of a walk.
type Options struct {
	QuantizeBits int
	Epsilon      float64
}

// DefaultOptions returns 16 quantize bits and the pointset tolerance.
func DefaultOptions() Options {
	return Options{
		QuantizeBits: DefaultQuantizeBits,
		Epsilon:      pointset.DefaultEpsilon,
	}
}

// WithQuantizeBits sets the visited-index cell size to 2^-bits.
func WithQuantizeBits(bits int) Option {
	return func(o *Options) {
		o.QuantizeBits = bits
	}
}

// WithEpsilon sets the tolerance under which representatives coincide.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		o.Epsilon = eps
	}
}
