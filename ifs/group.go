// SPDX-License-Identifier: MIT

package ifs

import (
	"iter"

	"github.com/katalvlaran/cayley/address"
	"github.com/katalvlaran/cayley/algebra"
)

// Group is an iterated function system over a group, walked without
// backtracking.
type Group[G algebra.Group[G]] struct {
	// xforms is [g0 … gn-1, g0⁻¹ … gn-1⁻¹].
	xforms   []G
	identity G
}

// groupFrame is one pending node: its word and composed element.
type groupFrame[G any] struct {
	word  address.Address
	value G
}

// NewGroup returns an IFS over the given generators and their inverses.
func NewGroup[G algebra.Group[G]](generators []G) *Group[G] {
	n := len(generators)
	xforms := make([]G, 2*n)
	for i, g := range generators {
		xforms[i] = g
		xforms[i+n] = g.Inverse()
	}

	return &Group[G]{xforms: xforms, identity: algebra.IdentityOf(generators...)}
}

// Len returns the number of generators, not counting inverses.
func (g *Group[G]) Len() int {
	return len(g.xforms) / 2
}

// At returns the element at index i of the doubled list.
func (g *Group[G]) At(i int) G {
	return g.xforms[i]
}

// Index maps a symbol to its position in the doubled list.
func (g *Group[G]) Index(s address.Symbol) int {
	if s.Inverse {
		return s.Index + g.Len()
	}

	return s.Index
}

// Symbol maps a position in the doubled list to its symbol.
func (g *Group[G]) Symbol(i int) address.Symbol {
	n := g.Len()
	if i < n {
		return address.Forward(i)
	}

	return address.Backward(i - n)
}

// Successors returns, in visiting order, the doubled-list indices that may
// follow the word w: all 2n indices for the empty word, otherwise the 2n−1
// indices cyclically after the inverse of w's last symbol.
func (g *Group[G]) Successors(w address.Address) []int {
	size := len(g.xforms)
	last, ok := w.Rightmost()
	if !ok {
		out := make([]int, size)
		for i := range out {
			out[i] = i
		}

		return out
	}
	n := g.Len()
	inverseOfLast := (g.Index(last) + n) % size
	out := make([]int, 0, size-1)
	for step := 1; step < size; step++ {
		out = append(out, (inverseOfLast+step)%size)
	}

	return out
}

// Walk yields (word, element) pairs in pre-order up to maxDepth. A child's
// element is L[i]·parent: the most recently appended symbol is outermost.
//
// Complexity: O((2n−1)^D) nodes for n generators and depth D; the stack holds
// at most O(2n·D) frames.
func (g *Group[G]) Walk(maxDepth int) iter.Seq2[address.Address, G] {
	maxDepth = max(maxDepth, 0)

	return func(yield func(address.Address, G) bool) {
		stack := []groupFrame[G]{{word: address.Empty(), value: g.identity}}
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !yield(top.word, top.value) {
				return
			}
			if top.word.Len() >= maxDepth {
				continue
			}
			next := g.Successors(top.word)
			for k := len(next) - 1; k >= 0; k-- {
				i := next[k]
				stack = append(stack, groupFrame[G]{
					word:  top.word.Append(g.Symbol(i)),
					value: g.xforms[i].Compose(top.value),
				})
			}
		}
	}
}

// ApplyGroup transforms shape by every element of g whose word length lies in
// [minDepth, maxDepth].
func ApplyGroup[G algebra.Group[G], T algebra.Transformable[T, G]](g *Group[G], shape T, minDepth, maxDepth int) []T {
	var out []T
	for word, xform := range g.Walk(maxDepth) {
		if word.Len() >= minDepth {
			out = append(out, shape.Transform(xform))
		}
	}

	return out
}

// Flatten folds the results of ApplyGroup into a single shape when shapes
// themselves compose (e.g. collections).
func Flatten[T algebra.Semigroup[T]](shapes []T) (T, error) {
	return algebra.Sconcat(shapes)
}
