// SPDX-License-Identifier: MIT

package algebra

import "errors"

// ErrEmpty is returned when a fold is requested over zero values.
var ErrEmpty = errors.New("algebra: empty slice")

// Semigroup is a value type closed under an associative binary operation.
// Compose must not mutate either operand.
type Semigroup[T any] interface {
	// Compose returns the product receiver·other.
	Compose(other T) T
}

// Monoid is a Semigroup with an identity element.
//
// Identity is a method rather than a constant so sized types (e.g. permutations
// of a given degree) can return the identity matching the receiver's shape.
// Fixed-shape types must return the identity even for their zero value.
type Monoid[T any] interface {
	Semigroup[T]

	// Identity returns I such that I·x == x·I == x.
	Identity() T

	// Equal reports whether the receiver and other denote the same element.
	Equal(other T) bool
}

// Group is a Monoid in which every element has an inverse.
type Group[T any] interface {
	Monoid[T]

	// Inverse returns x⁻¹ such that x·x⁻¹ == x⁻¹·x == I.
	Inverse() T
}

// Transformable is implemented by shapes that can be mapped by an element E.
// Transform returns a new value and has no other observable effect.
type Transformable[T, E any] interface {
	Transform(xform E) T
}
