// SPDX-License-Identifier: MIT

package algebra

import "iter"

// IdentityOf returns the identity of the first sample, or the identity of the
// zero value of T when no sample is given.
func IdentityOf[T Monoid[T]](samples ...T) T {
	if len(samples) > 0 {
		return samples[0].Identity()
	}
	var zero T

	return zero.Identity()
}

// Power raises x to the non-negative power n using O(log n) compositions.
// n <= 0 yields the identity.
func Power[T Monoid[T]](x T, n int) T {
	if n <= 0 {
		return x.Identity()
	}
	half := Power(x, n/2)
	squared := half.Compose(half)
	if n%2 == 0 {
		return squared
	}

	return x.Compose(squared)
}

// Pow raises x to a signed power. Negative exponents use the inverse.
func Pow[T Group[T]](x T, exponent int) T {
	if exponent < 0 {
		return Power(x.Inverse(), -exponent)
	}

	return Power(x, exponent)
}

// PowerSeq yields I, x, x², x³, …
//
// For an element of finite order k exactly k values are produced (I through
// x^(k-1)); the sequence stops as soon as the next power equals I again.
// For elements of infinite order the sequence never ends and the caller must
// stop ranging over it.
func PowerSeq[T Monoid[T]](x T) iter.Seq[T] {
	return func(yield func(T) bool) {
		identity := x.Identity()
		current := identity
		for {
			if !yield(current) {
				return
			}
			current = x.Compose(current)
			if current.Equal(identity) {
				return
			}
		}
	}
}

// InversePowerSeq yields I, x⁻¹, x⁻², … with the same cycle rule as PowerSeq.
func InversePowerSeq[T Group[T]](x T) iter.Seq[T] {
	return PowerSeq(x.Inverse())
}

// Difference returns b·a⁻¹, the element that maps a to b.
func Difference[T Group[T]](b, a T) T {
	return b.Compose(a.Inverse())
}

// Sandwich returns bread·filling·bread⁻¹: filling seen from bread's frame.
func Sandwich[T Group[T]](bread, filling T) T {
	return bread.Compose(filling).Compose(bread.Inverse())
}

// Commutator returns a·b·a⁻¹·b⁻¹, equal to Difference(a·b, b·a).
func Commutator[T Group[T]](a, b T) T {
	return a.Compose(b).Compose(a.Inverse()).Compose(b.Inverse())
}

// Sconcat folds values left to right with Compose.
func Sconcat[T Semigroup[T]](values []T) (T, error) {
	var acc T
	if len(values) == 0 {
		return acc, ErrEmpty
	}
	acc = values[0]
	for _, v := range values[1:] {
		acc = acc.Compose(v)
	}

	return acc, nil
}

// Take yields at most n values of seq.
func Take[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		i := 0
		for v := range seq {
			if !yield(v) {
				return
			}
			i++
			if i >= n {
				return
			}
		}
	}
}
