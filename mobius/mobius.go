// SPDX-License-Identifier: MIT

package mobius

import (
	"fmt"
	"math"
	"math/cmplx"
)

// New validates the coefficients and returns the transform [a b; c d].
// It fails with ErrInvalidTransform unless all coefficients are finite and
// ad − bc is 1 within Epsilon.
func New(a, b, c, d complex128) (Mobius, error) {
	for _, z := range [4]complex128{a, b, c, d} {
		if !isFinite(z) {
			return Mobius{}, fmt.Errorf("%w: coefficient %v is not finite", ErrInvalidTransform, z)
		}
	}
	det := a*d - b*c
	if !nearly(det, 1) {
		return Mobius{}, fmt.Errorf("%w: determinant %v, want 1", ErrInvalidTransform, det)
	}

	return Mobius{a: a, b: b, c: c, d: d}, nil
}

// Identity returns I(z) = z.
func Identity() Mobius {
	return Mobius{a: 1, d: 1}
}

// Coefficients returns a, b, c, d.
func (m Mobius) Coefficients() (a, b, c, d complex128) {
	return m.a, m.b, m.c, m.d
}

// Identity implements algebra.Monoid. It ignores the receiver, so the zero
// value may be used to obtain the identity.
func (Mobius) Identity() Mobius {
	return Identity()
}

// Compose returns the matrix product m·n, the map "apply n, then m".
// If rounding has pushed the determinant away from 1, all four coefficients
// are divided by √det.
func (m Mobius) Compose(n Mobius) Mobius {
	p := Mobius{
		a: m.a*n.a + m.b*n.c,
		b: m.a*n.b + m.b*n.d,
		c: m.c*n.a + m.d*n.c,
		d: m.c*n.b + m.d*n.d,
	}

	return p.normalized()
}

func (m Mobius) normalized() Mobius {
	det := m.Det()
	if det == 1 || det == 0 {
		return m
	}
	s := cmplx.Sqrt(det)

	return Mobius{a: m.a / s, b: m.b / s, c: m.c / s, d: m.d / s}
}

// Inverse returns the adjugate [d −b; −c a], exact because det = 1.
func (m Mobius) Inverse() Mobius {
	return Mobius{a: m.d, b: -m.b, c: -m.c, d: m.a}
}

// Equal reports whether m and n are the same map: coefficients equal within
// Epsilon, either directly or after negating all four (±M are the same map).
func (m Mobius) Equal(n Mobius) bool {
	same := nearly(m.a, n.a) && nearly(m.b, n.b) && nearly(m.c, n.c) && nearly(m.d, n.d)
	if same {
		return true
	}

	return nearly(m.a, -n.a) && nearly(m.b, -n.b) && nearly(m.c, -n.c) && nearly(m.d, -n.d)
}

// Det returns ad − bc.
func (m Mobius) Det() complex128 {
	return m.a*m.d - m.b*m.c
}

// Trace returns a + d.
func (m Mobius) Trace() complex128 {
	return m.a + m.d
}

// Classify reports the Kind of m from its trace. A non-real trace is
// loxodromic; otherwise |tr|² ≈ 4 is parabolic, below is elliptic and above
// is hyperbolic. The identity classifies as parabolic.
func (m Mobius) Classify() Kind {
	tr := m.Trace()
	if math.Abs(imag(tr)) >= Epsilon {
		return Loxodromic
	}
	norm := real(tr)*real(tr) + imag(tr)*imag(tr)
	switch {
	case math.Abs(norm-parabolicNorm) < Epsilon:
		return Parabolic
	case norm < parabolicNorm:
		return Elliptic
	default:
		return Hyperbolic
	}
}

// Apply maps the point z. The point at infinity is cmplx.Inf(); it is both a
// valid input and a valid output.
func (m Mobius) Apply(z complex128) complex128 {
	if cmplx.IsInf(z) {
		if m.c == 0 {
			return cmplx.Inf()
		}

		return m.a / m.c
	}
	den := m.c*z + m.d
	if den == 0 {
		return cmplx.Inf()
	}

	return (m.a*z + m.b) / den
}

// ComplexConjugate returns the map whose coefficients are conjugated. Since
// conjugation is a field automorphism, conj(M)·conj(N) == conj(M·N).
func (m Mobius) ComplexConjugate() Mobius {
	return Mobius{a: cmplx.Conj(m.a), b: cmplx.Conj(m.b), c: cmplx.Conj(m.c), d: cmplx.Conj(m.d)}
}

// FixedPoints returns the one or two solutions of m(z) = z. The point at
// infinity (cmplx.Inf()) is reported when c = 0.
//
// With c = 0 the equation is (a − d)z + b = 0, so ∞ is always fixed and a
// second finite point exists unless a = d (a pure translation).
// Otherwise z = ((a − d) ± √(tr² − 4)) / 2c, with a double root when the
// discriminant vanishes.
func (m Mobius) FixedPoints() []complex128 {
	if nearly(m.c, 0) {
		if nearly(m.a, m.d) {
			return []complex128{cmplx.Inf()}
		}

		return []complex128{-m.b / (m.a - m.d), cmplx.Inf()}
	}
	tr := m.Trace()
	disc := tr*tr - 4
	den := 2 * m.c
	mid := (m.a - m.d) / den
	if nearly(disc, 0) {
		return []complex128{mid}
	}
	offset := cmplx.Sqrt(disc) / den

	return []complex128{mid - offset, mid + offset}
}

// String renders the matrix as [a b; c d].
func (m Mobius) String() string {
	return fmt.Sprintf("[%v %v; %v %v]", m.a, m.b, m.c, m.d)
}

func isFinite(z complex128) bool {
	return !cmplx.IsInf(z) && !cmplx.IsNaN(z)
}

func nearly(x, y complex128) bool {
	return cmplx.Abs(x-y) < Epsilon
}

// Nearly reports whether two points are equal within Epsilon. Two points at
// infinity are equal.
func Nearly(x, y complex128) bool {
	if cmplx.IsInf(x) || cmplx.IsInf(y) {
		return cmplx.IsInf(x) && cmplx.IsInf(y)
	}

	return nearly(x, y)
}
