// SPDX-License-Identifier: MIT

package isogonal

import "github.com/katalvlaran/cayley/mobius"

// Conjugation returns z ↦ conj(z), the mirror in the real axis.
func Conjugation() Isogonal {
	return AntiConformal(mobius.Identity())
}

// ReflectY returns z ↦ −conj(z), the mirror in the imaginary axis.
func ReflectY() Isogonal {
	return AntiConformal(mobius.PointReflection())
}
