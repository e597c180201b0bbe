// SPDX-License-Identifier: MIT

// Package dfs implements a depth-first walk over any graph described by a
// Strategy, for graph traversals that are not Cayley-word enumerations.
//
// What:
//
//   - Tree(s, start, opts...): walk the component containing start.
//   - Forest(s, opts...): repeat Tree from s.PickStart(visited) until every
//     one of s.VertexCount() vertices has been visited.
//   - Vertices are identified by s.Hash; a vertex is marked visited when it
//     is popped, so a vertex pushed twice is reported once.
//   - The walk keeps an explicit stack of (vertex, path from root); it never
//     recurses, so depth is bounded by memory only.
//   - s.OrderNeighbors receives the unvisited neighbors and returns them in
//     the order they are explored.
//
// Why:
//   - Walk a Cayley graph whose vertices are computed, not stored (see
//     permutation.CayleyGraph), and collect cosets, trees and depths.
//   - Keep graph shape out of the walker: the caller decides what a vertex
//     is, how it hashes and which neighbor comes first.
//
// Key Types:
//
//   - Strategy[H, I]: VertexCount, PickStart, Hash, Neighbors, OrderNeighbors
//   - Visited[H]: set of hashes passed to PickStart
//   - Options: Ctx, MaxDepth and the two hooks
//   - Result[H, I]: Roots, Paths (pre-order), Order (post-order), Depth,
//     Parent, Visited
//
// Complexity:
//
//   - Time:   O(V + E) strategy calls, plus O(depth) per push for path copies.
//   - Memory: O(E · depth) in the worst case for the stacked paths.
//
// Options:
//
//   - WithContext(ctx)   cancellation, checked before every pop.
//   - WithMaxDepth(d)    do not expand vertices at depth d; d < 0 is invalid.
//   - WithOnVisit(fn)    pre-order hook receiving the path from the root.
//   - WithOnExit(fn)     post-order hook after all descendants.
//
// Errors:
//
//   - ErrStrategyNil      s is nil.
//   - ErrStartVisited     PickStart returned a visited vertex.
//   - ErrOptionViolation  invalid option or hook of the wrong vertex type.
//   - context errors and hook errors, wrapped.
package dfs
