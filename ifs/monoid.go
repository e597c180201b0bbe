// SPDX-License-Identifier: MIT

package ifs

import (
	"iter"

	"github.com/katalvlaran/cayley/algebra"
)

// Monoid is an iterated function system over a free monoid.
type Monoid[S algebra.Monoid[S]] struct {
	xforms   []S
	identity S
}

// monoidFrame is one pending node: its depth and composed element.
type monoidFrame[S any] struct {
	depth int
	value S
}

// NewMonoid returns an IFS over the given generators. The slice is copied.
func NewMonoid[S algebra.Monoid[S]](generators []S) *Monoid[S] {
	return &Monoid[S]{
		xforms:   append([]S(nil), generators...),
		identity: algebra.IdentityOf(generators...),
	}
}

// Len returns the number of generators.
func (m *Monoid[S]) Len() int {
	return len(m.xforms)
}

// At returns generator i.
func (m *Monoid[S]) At(i int) S {
	return m.xforms[i]
}

// Walk yields (depth, element) pairs in pre-order up to maxDepth. The element
// at depth k is g_{ik}·…·g_{i1}: each step applies the new generator last.
//
// Complexity: O(n^D) nodes, O(n·D) stack.
func (m *Monoid[S]) Walk(maxDepth int) iter.Seq2[int, S] {
	maxDepth = max(maxDepth, 0)

	return func(yield func(int, S) bool) {
		stack := []monoidFrame[S]{{depth: 0, value: m.identity}}
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !yield(top.depth, top.value) {
				return
			}
			if top.depth >= maxDepth {
				continue
			}
			for i := len(m.xforms) - 1; i >= 0; i-- {
				stack = append(stack, monoidFrame[S]{
					depth: top.depth + 1,
					value: m.xforms[i].Compose(top.value),
				})
			}
		}
	}
}

// ApplyMonoid transforms shape by every element of m with depth in
// [minDepth, maxDepth].
func ApplyMonoid[S algebra.Monoid[S], T algebra.Transformable[T, S]](m *Monoid[S], shape T, minDepth, maxDepth int) []T {
	var out []T
	for depth, xform := range m.Walk(maxDepth) {
		if depth >= minDepth {
			out = append(out, shape.Transform(xform))
		}
	}

	return out
}
