// SPDX-License-Identifier: MIT

package lattice

import (
	"errors"
	"fmt"
	"iter"

	"github.com/katalvlaran/cayley/algebra"
)

// Sentinel errors for lattice construction.
var (
	// ErrNoAxes indicates that a lattice was requested with zero axes.
	ErrNoAxes = errors.New("lattice: at least one axis is required")
	// ErrEmptyAxis indicates an axis with End <= Start.
	ErrEmptyAxis = errors.New("lattice: axis end power must exceed start power")
)

// Axis describes one grid direction: Generator raised to every power in
// [Start, End).
type Axis[G any] struct {
	Generator G
	Start     int
	End       int
}

// axis is the normalized form of Axis.
type axis[G any] struct {
	xform G
	start G
	count int
}

// Lattice is an immutable grid of powers.
type Lattice[G algebra.Group[G]] struct {
	axes []axis[G]
}

// New validates and normalizes the axes.
func New[G algebra.Group[G]](axes ...Axis[G]) (*Lattice[G], error) {
	if len(axes) == 0 {
		return nil, ErrNoAxes
	}
	norm := make([]axis[G], len(axes))
	for i, a := range axes {
		if a.End <= a.Start {
			return nil, fmt.Errorf("%w: axis %d covers [%d, %d)", ErrEmptyAxis, i, a.Start, a.End)
		}
		norm[i] = axis[G]{
			xform: a.Generator,
			start: algebra.Pow(a.Generator, a.Start),
			count: a.End - a.Start,
		}
	}

	return &Lattice[G]{axes: norm}, nil
}

// Dimensions returns the number of axes.
func (l *Lattice[G]) Dimensions() int {
	return len(l.axes)
}

// Size returns the number of emitted elements, the product of axis counts.
func (l *Lattice[G]) Size() int {
	n := 1
	for _, a := range l.axes {
		n *= a.count
	}

	return n
}

// All yields (indices, element) for every grid point. indices[i] counts
// from 0 at the axis start power; the slice is fresh for each point.
//
// Complexity: O(Size·dims) compositions and O(dims) memory besides the
// yielded index slices.
func (l *Lattice[G]) All() iter.Seq2[[]int, G] {
	return func(yield func([]int, G) bool) {
		dims := len(l.axes)
		indices := make([]int, dims)
		values := make([]G, dims)
		for i, a := range l.axes {
			values[i] = a.start
		}

		for {
			product := values[0]
			for _, v := range values[1:] {
				product = product.Compose(v)
			}
			if !yield(append([]int(nil), indices...), product) {
				return
			}

			// ripple carry from the last axis
			i := dims - 1
			for ; i >= 0; i-- {
				if indices[i] < l.axes[i].count-1 {
					indices[i]++
					values[i] = values[i].Compose(l.axes[i].xform)
					break
				}
				indices[i] = 0
				values[i] = l.axes[i].start
			}
			if i < 0 {
				return
			}
		}
	}
}

// Conjugate returns the lattice with every generator and start element
// replaced by t·x·t⁻¹.
func (l *Lattice[G]) Conjugate(t G) *Lattice[G] {
	axes := make([]axis[G], len(l.axes))
	for i, a := range l.axes {
		axes[i] = axis[G]{
			xform: algebra.Sandwich(t, a.xform),
			start: algebra.Sandwich(t, a.start),
			count: a.count,
		}
	}

	return &Lattice[G]{axes: axes}
}

// Apply transforms shape by every element of the lattice.
func Apply[G algebra.Group[G], T algebra.Transformable[T, G]](l *Lattice[G], shape T) []T {
	out := make([]T, 0, l.Size())
	for _, xform := range l.All() {
		out = append(out, shape.Transform(xform))
	}

	return out
}
