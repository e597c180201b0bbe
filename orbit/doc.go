// SPDX-License-Identifier: MIT

// Package orbit walks the tiles of a group orbit: copies of one fundamental
// domain, each reached from its neighbors by a fixed set of transforms.
//
// What:
//
//   - A Tile carries its accumulated transform, the transforms to each
//     adjacent tile expressed in its own frame, and a representative point
//     strictly inside it.
//   - Neighbor(i) moves to the i-th adjacent tile: the transform and the
//     representative are pushed through neighbors[i], and every neighbor
//     transform is conjugated by neighbors[i] so it reads in the new frame.
//   - Walk is a breadth-first walk bounded by depth. Because the tile graph
//     is not a tree, reached tiles are remembered in a pointset.Set keyed by
//     representative point; each tile is yielded once, at the fewest edges
//     needed to reach it. A representative at infinity is yielded once; a
//     NaN representative is dropped.
//
// Why:
//
//   - Different words reach the same tile (around a vertex of the tiling,
//     right·up and up·right agree). Keying tiles by a point strictly inside
//     them deduplicates without solving the word problem of the group.
//
// Complexity (T = tiles within maxDepth, k = tile degree):
//
//   - Time:   O(T·k) Neighbor moves, each O(k) conjugations, plus O(T·k)
//     index probes of 9 cells each.
//   - Memory: O(T) for the queue and the index.
//
// Options:
//
//   - WithQuantizeBits(bits) default 16.
//   - WithEpsilon(eps)       default 1e-9.
//
// Errors:
//
//   - ErrOptionViolation  an option is out of range.
//   - ErrNoRepresentative the representative point is not finite.
package orbit
