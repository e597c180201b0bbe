// SPDX-License-Identifier: MIT

// Package lawtest provides testify-based assertions for the algebraic laws
// that algebra.Semigroup, algebra.Monoid and algebra.Group implementations
// must satisfy. The laws cannot be enforced by the compiler, so every
// concrete element type runs these checks from its own tests.
package lawtest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/cayley/algebra"
)

// Identity checks I·x == x == x·I and I·I == I.
func Identity[T algebra.Monoid[T]](t *testing.T, x T) {
	t.Helper()
	i := x.Identity()

	assert.Truef(t, i.Compose(i).Equal(i), "identity is not idempotent: %v", i.Compose(i))
	assert.Truef(t, i.Compose(x).Equal(x), "left identity: I·%v = %v", x, i.Compose(x))
	assert.Truef(t, x.Compose(i).Equal(x), "right identity: %v·I = %v", x, x.Compose(i))
}

// Associativity checks (a·b)·c == a·(b·c).
func Associativity[T algebra.Monoid[T]](t *testing.T, a, b, c T) {
	t.Helper()
	left := a.Compose(b).Compose(c)
	right := a.Compose(b.Compose(c))

	assert.Truef(t, left.Equal(right), "associativity: (ab)c = %v, a(bc) = %v", left, right)
}

// Inverse checks a·a⁻¹ == a⁻¹·a == I and (a⁻¹)⁻¹ == a.
func Inverse[T algebra.Group[T]](t *testing.T, a T) {
	t.Helper()
	inv := a.Inverse()
	identity := a.Identity()

	assert.Truef(t, a.Compose(inv).Equal(identity), "a·a⁻¹ = %v, want identity", a.Compose(inv))
	assert.Truef(t, inv.Compose(a).Equal(identity), "a⁻¹·a = %v, want identity", inv.Compose(a))
	assert.Truef(t, inv.Inverse().Equal(a), "double inverse: %v, want %v", inv.Inverse(), a)
}

// GroupOps checks the derived operations Difference, Sandwich and Commutator
// against their definitions for the pair (a, b).
func GroupOps[T algebra.Group[T]](t *testing.T, a, b T) {
	t.Helper()
	identity := a.Identity()

	diff := algebra.Difference(b, a)
	assert.Truef(t, diff.Compose(a).Equal(b), "diff(b, a)·a = %v, want %v", diff.Compose(a), b)

	diffAB := algebra.Difference(a, b)
	assert.Truef(t, diffAB.Inverse().Equal(diff), "diff(a, b)⁻¹ should equal diff(b, a)")

	assert.Truef(t, algebra.Sandwich(a, a).Equal(a), "sandwich(a, a) should be a")
	assert.Truef(t, algebra.Commutator(a, a).Equal(identity), "[a, a] should be identity")

	comm := algebra.Commutator(a, b)
	viaDiff := algebra.Difference(a.Compose(b), b.Compose(a))
	assert.Truef(t, comm.Equal(viaDiff), "[a, b] = %v, diff(ab, ba) = %v", comm, viaDiff)
}

// Group runs Identity, Inverse and Associativity over every element and every
// ordered triple of elems, and GroupOps over every ordered pair.
func Group[T algebra.Group[T]](t *testing.T, elems ...T) {
	t.Helper()
	for _, a := range elems {
		Identity(t, a)
		Inverse(t, a)
		for _, b := range elems {
			GroupOps(t, a, b)
			for _, c := range elems {
				Associativity(t, a, b, c)
			}
		}
	}
}
