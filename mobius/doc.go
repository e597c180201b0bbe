// SPDX-License-Identifier: MIT

// Package mobius implements Möbius transformations z ↦ (az + b)/(cz + d) as
// unit-determinant 2×2 complex matrices (SL(2, ℂ)). Mobius satisfies
// algebra.Group and is the concrete group used by the traversal engines.
//
// What:
//
//   - New validates finiteness and ad − bc = 1; named constructors build
//     translations, rotations, scalings, complex multipliers, inversion and
//     the half turn.
//   - Compose multiplies matrices and renormalizes by √det when rounding drift
//     moves the determinant away from 1, keeping long chains stable.
//   - Inverse is the closed-form adjugate; no division.
//   - Classify returns Parabolic, Elliptic, Hyperbolic or Loxodromic from the trace.
//   - FixedPoints solves m(z) = z; cmplx.Inf() stands for the point at infinity.
//   - Equal compares coefficients within Epsilon, up to global sign.
//
// Errors:
//
//   - ErrInvalidTransform  non-finite coefficient or determinant ≠ 1.
//
// Validation happens only at construction; every other operation is total.
package mobius
