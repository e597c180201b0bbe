// SPDX-License-Identifier: MIT

package mobius

import "errors"

// ErrInvalidTransform is returned by every constructor when a coefficient is
// not finite or the determinant ad − bc is not 1 within Epsilon.
var ErrInvalidTransform = errors.New("mobius: invalid transform")

// Epsilon is the absolute tolerance used for determinant validation and for
// coefficient and point comparisons.
const Epsilon = 1e-9

// parabolicNorm is |trace|² of a parabolic map (trace = ±2).
const parabolicNorm = 4.0

// Kind classifies a transform by the behavior of points near its fixed points.
type Kind int

const (
	// Parabolic maps generalize translations: one fixed point acting as both
	// source and sink.
	Parabolic Kind = iota
	// Elliptic maps generalize rotations: points circulate around two
	// stationary fixed points.
	Elliptic
	// Hyperbolic maps generalize scaling: points flow from the source fixed
	// point to the sink along circular arcs.
	Hyperbolic
	// Loxodromic maps combine rotation and scaling: points spiral from source
	// to sink.
	Loxodromic
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case Parabolic:
		return "parabolic"
	case Elliptic:
		return "elliptic"
	case Hyperbolic:
		return "hyperbolic"
	case Loxodromic:
		return "loxodromic"
	default:
		return "unknown"
	}
}

// Mobius is the map z ↦ (az + b) / (cz + d) with ad − bc = 1, i.e. an element
// of SL(2, ℂ):
//
//	[a b]
//	[c d]
//
// The zero value is not a valid transform; use Identity or a constructor.
// Values are immutable and safe to copy.
type Mobius struct {
	a, b, c, d complex128
}
