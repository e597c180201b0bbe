// SPDX-License-Identifier: MIT

// Package isogonal extends Möbius transformations with orientation-reversing
// maps. An Isogonal is either a conformal map M, or an anti-conformal map
// M·conj (complex conjugation first, then M). Together they form the
// semidirect product of SL(2, ℂ) with the two-element group {id, conj}, which
// models mirrors and glide reflections in tilings.
//
// Composition rules:
//
//	M        · N        = M·N                (conformal)
//	M        · (N·conj) = (M·N)·conj         (anti-conformal)
//	(M·conj) · N        = (M·conj(N))·conj   (anti-conformal)
//	(M·conj) · (N·conj) = M·conj(N)          (conformal)
//
// conj distributes over composition because it is a field automorphism of ℂ.
package isogonal

import (
	"fmt"
	"math/cmplx"

	"github.com/katalvlaran/cayley/mobius"
)

// Isogonal is an angle-magnitude-preserving map of the extended plane.
// The zero value is not valid; use Conformal, AntiConformal or Identity.
type Isogonal struct {
	m    mobius.Mobius
	anti bool
}

// Conformal returns the orientation-preserving map m.
func Conformal(m mobius.Mobius) Isogonal {
	return Isogonal{m: m}
}

// AntiConformal returns m·conj: conjugate the point, then apply m.
func AntiConformal(m mobius.Mobius) Isogonal {
	return Isogonal{m: m, anti: true}
}

// FromMobius lifts m into the isogonal group; identical to Conformal.
func FromMobius(m mobius.Mobius) Isogonal {
	return Conformal(m)
}

// Identity returns the identity map.
func Identity() Isogonal {
	return Conformal(mobius.Identity())
}

// Mobius returns the underlying Möbius part.
func (g Isogonal) Mobius() mobius.Mobius {
	return g.m
}

// IsAntiConformal reports whether g reverses orientation.
func (g Isogonal) IsAntiConformal() bool {
	return g.anti
}

// Identity implements algebra.Monoid; the receiver is ignored.
func (Isogonal) Identity() Isogonal {
	return Identity()
}

// Compose returns g·h, the map "apply h, then g".
func (g Isogonal) Compose(h Isogonal) Isogonal {
	rhs := h.m
	if g.anti {
		rhs = rhs.ComplexConjugate()
	}

	return Isogonal{m: g.m.Compose(rhs), anti: g.anti != h.anti}
}

// Inverse returns g⁻¹. For the anti-conformal case
// (M·conj)⁻¹ = conj·M⁻¹ = conj(M)⁻¹·conj.
func (g Isogonal) Inverse() Isogonal {
	if g.anti {
		return AntiConformal(g.m.ComplexConjugate().Inverse())
	}

	return Conformal(g.m.Inverse())
}

// Equal reports whether g and h have the same orientation and equal Möbius parts.
func (g Isogonal) Equal(h Isogonal) bool {
	return g.anti == h.anti && g.m.Equal(h.m)
}

// Apply maps the point z.
func (g Isogonal) Apply(z complex128) complex128 {
	if g.anti {
		z = cmplx.Conj(z)
	}

	return g.m.Apply(z)
}

// String renders the map, suffixing anti-conformal maps with "·conj".
func (g Isogonal) String() string {
	if g.anti {
		return fmt.Sprintf("%v·conj", g.m)
	}

	return g.m.String()
}
