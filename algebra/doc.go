// SPDX-License-Identifier: MIT

// Package algebra defines the capability hierarchy used by every traversal
// engine in cayley: Semigroup ⊂ Monoid ⊂ Group, expressed as self-referential
// generic interfaces, plus the operations every such structure gets for free.
//
// What:
//
//   - Semigroup[T]: closed, associative Compose.
//   - Monoid[T]:    Semigroup + Identity + Equal.
//   - Group[T]:     Monoid + Inverse.
//   - Transformable[T, E]: the single consumer-facing contract; a shape T that
//     can be mapped by an element E into a new T.
//
// Derived operations:
//
//   - Power(x, n)           divide-and-conquer exponentiation, O(log n) compositions
//   - Pow(x, e)             signed exponent; negative e uses Inverse(x)
//   - PowerSeq(x)           lazy I, x, x², … stopping before the cycle returns to I
//   - InversePowerSeq(x)    PowerSeq(Inverse(x))
//   - Difference(b, a)      b·a⁻¹
//   - Sandwich(bread, f)    bread·f·bread⁻¹ (conjugation)
//   - Commutator(a, b)      a·b·a⁻¹·b⁻¹
//   - Sconcat(values)       left fold with Compose over a non-empty slice
//
// Composition order:
//
//	x.Compose(y) is the product x·y, i.e. "apply y first, then x", matching
//	2×2 matrix multiplication and function composition x∘y.
//
// Errors:
//
//   - ErrEmpty  Sconcat called with no values.
//
// The algebraic laws (associativity, identity, inverse) cannot be expressed in
// the type system; implementations are responsible for them. The lawtest
// subpackage provides assertions that check them for concrete values.
package algebra
