// SPDX-License-Identifier: MIT

package orbit

import (
	"fmt"
	"iter"
	"math/cmplx"

	"github.com/katalvlaran/cayley/algebra"
	"github.com/katalvlaran/cayley/pointset"
)

// Orbit enumerates the tiles reachable from an initial tile.
type Orbit[G Element[G]] struct {
	initial Tile[G]
	index   []pointset.Option
}

// queueItem pairs a tile with its distance, in edges, from the initial tile.
type queueItem[G Element[G]] struct {
	depth int
	tile  Tile[G]
}

// tileIndex remembers representatives already reached. Finite points live in
// a pointset.Set; all points at infinity are one point.
type tileIndex struct {
	points   *pointset.Set
	infinity bool
}

// mark records z and reports whether it was new. NaN is never new.
func (x *tileIndex) mark(z complex128) bool {
	if cmplx.IsInf(z) {
		if x.infinity {
			return false
		}
		x.infinity = true

		return true
	}

	return x.points.Insert(z)
}

// New validates the initial tile and options.
func New[G Element[G]](initial Tile[G], opts ...Option) (*Orbit[G], error) {
	z := initial.representative
	if cmplx.IsInf(z) || cmplx.IsNaN(z) {
		return nil, fmt.Errorf("%w: got %v", ErrNoRepresentative, z)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	index := []pointset.Option{
		pointset.WithQuantizeBits(o.QuantizeBits),
		pointset.WithEpsilon(o.Epsilon),
	}
	if _, err := pointset.Resolve(index...); err != nil {
		return nil, err
	}

	return &Orbit[G]{initial: initial, index: index}, nil
}

// Walk yields (depth, tile) for every distinct tile within maxDepth steps of
// the initial one, where depth is the fewest edges crossed to reach it.
// Tiles come out breadth-first, neighbors taken in order, so depths never
// decrease. A tile is marked when it is enqueued; a later path to an already
// marked representative is dropped, so each tile appears once. A tile whose
// representative is the point at infinity is yielded like any other (all
// such tiles count as one); a NaN representative is never yielded.
// Negative maxDepth is treated as 0.
//
// Complexity: O(T·k) tile moves and index probes for T tiles of degree k;
// memory O(T) for the queue and the index.
func (o *Orbit[G]) Walk(maxDepth int) iter.Seq2[int, Tile[G]] {
	return func(yield func(int, Tile[G]) bool) {
		points, err := pointset.New(o.index...)
		if err != nil {
			// options were validated by New
			return
		}
		index := &tileIndex{points: points}
		index.mark(o.initial.representative)
		queue := []queueItem[G]{{depth: 0, tile: o.initial}}
		for len(queue) > 0 {
			item := queue[0]
			queue = queue[1:]
			if !yield(item.depth, item.tile) {
				return
			}
			if item.depth >= maxDepth {
				continue
			}
			for _, next := range item.tile.NeighborTiles() {
				if !index.mark(next.representative) {
					continue
				}
				queue = append(queue, queueItem[G]{depth: item.depth + 1, tile: next})
			}
		}
	}
}

// Apply transforms shape by every tile transform within maxDepth.
func Apply[G Element[G], T algebra.Transformable[T, G]](o *Orbit[G], shape T, maxDepth int) []T {
	var out []T
	for _, tile := range o.Walk(maxDepth) {
		out = append(out, shape.Transform(tile.xform))
	}

	return out
}
