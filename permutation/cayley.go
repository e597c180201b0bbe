// SPDX-License-Identifier: MIT

package permutation

import "github.com/katalvlaran/cayley/dfs"

// CayleyGraph is the Cayley graph of the subgroup of S_Degree generated by
// Generators: an edge p → g·p for every generator g. It implements
// dfs.Strategy so the subgroup and its cosets can be walked with dfs.Forest.
type CayleyGraph struct {
	Degree     int
	Generators []Permutation
}

// VertexCount returns Degree!, the number of vertices across all cosets.
func (c CayleyGraph) VertexCount() int {
	n := 1
	for i := 2; i <= c.Degree; i++ {
		n *= i
	}

	return n
}

// PickStart returns the lexicographically smallest unvisited permutation.
func (c CayleyGraph) PickStart(visited dfs.Visited[string]) Permutation {
	for p := range All(c.Degree) {
		if !visited.Has(p.Key()) {
			return p
		}
	}

	return Identity(c.Degree)
}

// Hash returns p.Key().
func (CayleyGraph) Hash(p Permutation) string {
	return p.Key()
}

// Neighbors returns g·p for each generator in order.
func (c CayleyGraph) Neighbors(p Permutation) []Permutation {
	out := make([]Permutation, len(c.Generators))
	for i, g := range c.Generators {
		out[i] = g.Compose(p)
	}

	return out
}

// OrderNeighbors keeps generator order.
func (CayleyGraph) OrderNeighbors(ns []Permutation) []Permutation {
	return ns
}
