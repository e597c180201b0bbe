// SPDX-License-Identifier: MIT

package orbit

import (
	"slices"

	"github.com/katalvlaran/cayley/algebra"
)

// Tile is one copy of the fundamental domain. Tiles are immutable.
type Tile[G Element[G]] struct {
	xform          G
	neighbors      []G
	representative complex128
}

// NewTile returns a tile. neighbors[i] maps this tile onto its i-th
// neighbor; representative must lie strictly inside the tile, never on a
// shared edge.
func NewTile[G Element[G]](xform G, neighbors []G, representative complex128) Tile[G] {
	return Tile[G]{
		xform:          xform,
		neighbors:      slices.Clone(neighbors),
		representative: representative,
	}
}

// Xform returns the accumulated transform from the initial tile.
func (t Tile[G]) Xform() G {
	return t.xform
}

// Representative returns the interior point used to identify the tile.
func (t Tile[G]) Representative() complex128 {
	return t.representative
}

// Neighbors returns a copy of the neighbor transforms in this tile's frame.
func (t Tile[G]) Neighbors() []G {
	return slices.Clone(t.neighbors)
}

// Degree returns the number of adjacent tiles.
func (t Tile[G]) Degree() int {
	return len(t.neighbors)
}

// Neighbor returns the tile across the i-th edge.
func (t Tile[G]) Neighbor(i int) Tile[G] {
	step := t.neighbors[i]
	conjugated := make([]G, len(t.neighbors))
	for j, n := range t.neighbors {
		conjugated[j] = algebra.Sandwich(step, n)
	}

	return Tile[G]{
		xform:          step.Compose(t.xform),
		neighbors:      conjugated,
		representative: step.Apply(t.representative),
	}
}

// NeighborTiles returns every adjacent tile in neighbor order.
func (t Tile[G]) NeighborTiles() []Tile[G] {
	out := make([]Tile[G], len(t.neighbors))
	for i := range t.neighbors {
		out[i] = t.Neighbor(i)
	}

	return out
}
