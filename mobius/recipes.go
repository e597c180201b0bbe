// SPDX-License-Identifier: MIT

package mobius

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Translation returns z ↦ z + displacement.
func Translation(displacement complex128) (Mobius, error) {
	if !isFinite(displacement) {
		return Mobius{}, fmt.Errorf("%w: displacement %v is not finite", ErrInvalidTransform, displacement)
	}

	return New(1, displacement, 0, 1)
}

// Rotation returns the rotation about the origin by theta radians,
// z ↦ e^(iθ)z, realized as [e^(iθ/2) 0; 0 e^(−iθ/2)].
func Rotation(theta float64) (Mobius, error) {
	if math.IsNaN(theta) || math.IsInf(theta, 0) {
		return Mobius{}, fmt.Errorf("%w: angle %v is not finite", ErrInvalidTransform, theta)
	}
	rotor := cmplx.Rect(1, theta/2)

	return New(rotor, 0, 0, 1/rotor)
}

// Scale returns z ↦ kz for a real, finite, non-zero k.
func Scale(k float64) (Mobius, error) {
	if k == 0 || math.IsNaN(k) || math.IsInf(k, 0) {
		return Mobius{}, fmt.Errorf("%w: scale factor %v must be finite and non-zero", ErrInvalidTransform, k)
	}

	return Multiply(complex(k, 0))
}

// Multiply returns z ↦ kz for a finite, non-zero complex k (a rotation and
// scaling about the origin).
func Multiply(k complex128) (Mobius, error) {
	if k == 0 || !isFinite(k) {
		return Mobius{}, fmt.Errorf("%w: multiplier %v must be finite and non-zero", ErrInvalidTransform, k)
	}
	root := cmplx.Sqrt(k)

	return New(root, 0, 0, 1/root)
}

// Inversion returns z ↦ 1/z, realized as [0 i; i 0] to keep determinant 1.
func Inversion() Mobius {
	return Mobius{b: 1i, c: 1i}
}

// PointReflection returns the half turn z ↦ −z, realized as [i 0; 0 −i].
func PointReflection() Mobius {
	return Mobius{a: 1i, d: -1i}
}
