// SPDX-License-Identifier: MIT

// Package cayley enumerates the elements of finitely generated groups and
// monoids of plane transforms, the machinery behind fractal (IFS), Kleinian
// and wallpaper-style pattern generation.
//
// What lives where:
//
//	algebra/     Semigroup, Monoid, Group, Transformable + power, sandwich, commutator
//	mobius/      Möbius transforms in SL(2, ℂ) and their named recipes
//	isogonal/    Möbius transforms extended by complex conjugation (mirrors)
//	address/     words of generator symbols labelling traversal results
//	ifs/         depth-bounded walks of a free monoid and of a group Cayley graph
//	lattice/     grids of generator powers for periodic patterns
//	pointset/    tolerance-aware deduplication of complex points
//	orbit/       tile-by-tile walk of a group orbit, deduplicated by pointset
//	dfs/         strategy-driven depth-first walk for plain graphs
//	permutation/ the symmetric group, cycle notation and Cayley tables
//	recipe/      YAML descriptions of generator sets
//
// The word traversals are explicit-stack depth-first walks and the orbit
// walk is breadth-first; all are exposed as an iter.Seq or iter.Seq2; stop ranging to stop the walk. Only construction
// can fail: every transform is validated when it is built.
//
// Quick example, the reduced words of length ≤ 1 over one translation:
//
//	shift, _ := mobius.Translation(1)
//	for word, m := range ifs.NewGroup([]mobius.Mobius{shift}).Walk(1) {
//		fmt.Println(word, m.Apply(0)) // "" 0, a 1, A -1
//	}
package cayley
